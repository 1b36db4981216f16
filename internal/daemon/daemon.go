package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"langid/internal/api"
	"langid/internal/config"
	"langid/internal/history"
	"langid/internal/identify"
	"langid/internal/logging"
	"langid/internal/profiles"
)

// ErrInvalidRequest marks request validation failures the transport layers
// should report as client errors.
var ErrInvalidRequest = errors.New("invalid request")

// Daemon coordinates the identification service and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	set     *profiles.Set
	service *identify.Service
	store   *history.Store

	sessionID string
	lockPath  string
	lock      *flock.Flock

	running  atomic.Bool
	requests atomic.Int64
	api      *apiServer
	ctx      context.Context
	cancel   context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running        bool
	PID            int
	ProfilesDir    string
	Languages      []string
	HybridReady    bool
	DefaultModel   string
	HistoryDBPath  string
	LockFilePath   string
	HistoryStats   history.Stats
	RequestsServed int64
}

// Outcome bundles a successful identification with its request parameters.
type Outcome struct {
	Result   identify.Result
	Model    identify.Model
	Alpha    float64
	Duration time.Duration
}

// New constructs a daemon with initialized dependencies. The history store
// may be nil when history is disabled.
func New(cfg *config.Config, set *profiles.Set, svc *identify.Service, store *history.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || set == nil || svc == nil || logger == nil {
		return nil, errors.New("daemon requires config, profile set, service, and logger")
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "langidd.lock")
	d := &Daemon{
		cfg:       cfg,
		logger:    logger,
		set:       set,
		service:   svc,
		store:     store,
		sessionID: uuid.NewString(),
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
	}

	apiSrv, err := newAPIServer(cfg, d, logger)
	if err != nil {
		return nil, err
	}
	d.api = apiSrv
	return d, nil
}

// Start acquires the daemon lock and launches the HTTP API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another langid daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.api.start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return err
	}

	d.running.Store(true)
	d.logger.Info("langid daemon started",
		logging.String("session", d.sessionID),
		logging.String("lock", d.lockPath),
		logging.Int("languages", len(d.set.Languages())),
		logging.Bool("hybrid", d.service.HybridAvailable()))
	return nil
}

// Stop shuts down the API server and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("langid daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Identify answers one identification request. Model and alpha validation
// failures wrap ErrInvalidRequest; scoring failures pass through untouched so
// callers can inspect the identify sentinels.
func (d *Daemon) Identify(ctx context.Context, text, modelName string, alpha *float64) (Outcome, error) {
	model := identify.Model(d.cfg.Identify.DefaultModel)
	if trimmed := strings.TrimSpace(modelName); trimmed != "" {
		parsed, err := identify.ParseModel(trimmed)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidRequest, err)
		}
		model = parsed
	}

	weight := d.service.DefaultAlpha()
	if alpha != nil {
		if *alpha < 0 || *alpha > 1 {
			return Outcome{}, fmt.Errorf("%w: alpha must be between 0.0 and 1.0, got %v", ErrInvalidRequest, *alpha)
		}
		weight = *alpha
	}

	started := time.Now()
	result, err := d.service.Identify(text, model, weight)
	duration := time.Since(started)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Result: result, Model: model, Alpha: weight, Duration: duration}
	d.requests.Add(1)
	d.recordHistory(ctx, text, outcome)
	return outcome, nil
}

func (d *Daemon) recordHistory(ctx context.Context, text string, outcome Outcome) {
	if d.store == nil {
		return
	}
	var score float64
	if len(outcome.Result.Distribution) > 0 {
		score = outcome.Result.Distribution[0].Score
	}
	rec := &history.Record{
		Sample:     text,
		Model:      string(outcome.Model),
		Alpha:      outcome.Alpha,
		Prediction: outcome.Result.Prediction,
		Score:      score,
		Duration:   outcome.Duration,
	}
	if err := d.store.Insert(ctx, rec); err != nil {
		d.logger.Warn("failed to record history", logging.Error(err))
	}
}

// Languages lists the trained languages with their hybrid readiness.
func (d *Daemon) Languages() []api.LanguageInfo {
	codes := d.set.Languages()
	hybrid := make(map[string]bool, len(codes))
	for code := range d.set.Subwords() {
		if _, ok := d.set.Chars()[code]; ok {
			hybrid[code] = true
		}
	}
	return api.LanguageInfos(codes, hybrid)
}

// APIAddr reports the bound HTTP API address, empty when the API is disabled
// or the daemon has not started.
func (d *Daemon) APIAddr() string {
	return d.api.addr()
}

// HistoryEnabled reports whether a history store is attached.
func (d *Daemon) HistoryEnabled() bool { return d.store != nil }

// History returns the most recent identification records.
func (d *Daemon) History(ctx context.Context, limit int) ([]history.Record, error) {
	if d.store == nil {
		return nil, errors.New("history store unavailable")
	}
	return d.store.List(ctx, limit)
}

// ClearHistory removes every stored history record.
func (d *Daemon) ClearHistory(ctx context.Context) error {
	if d.store == nil {
		return errors.New("history store unavailable")
	}
	return d.store.Clear(ctx)
}

// Status returns the current daemon status.
func (d *Daemon) Status(ctx context.Context) Status {
	status := Status{
		Running:        d.running.Load(),
		PID:            os.Getpid(),
		ProfilesDir:    d.set.Dir(),
		Languages:      d.set.Languages(),
		HybridReady:    d.service.HybridAvailable(),
		DefaultModel:   d.cfg.Identify.DefaultModel,
		LockFilePath:   d.lockPath,
		RequestsServed: d.requests.Load(),
	}
	if d.store != nil {
		status.HistoryDBPath = d.store.Path()
		if stats, err := d.store.GetStats(ctx); err == nil {
			status.HistoryStats = stats
		}
	}
	return status
}
