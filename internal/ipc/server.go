package ipc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"langid/internal/api"
	"langid/internal/daemon"
	"langid/internal/logging"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logger, ctx: ctx}
	if err := rpcServer.RegisterName("Langid", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) log() *slog.Logger {
	return logging.WithComponent(s.logger, "ipc")
}

func (s *service) Identify(req IdentifyRequest, resp *IdentifyResponse) error {
	outcome, err := s.daemon.Identify(s.ctx, req.Text, req.Model, req.Alpha)
	if err != nil {
		if errors.Is(err, daemon.ErrInvalidRequest) {
			return err
		}
		resp.Error = err.Error()
		return nil
	}
	*resp = api.FromResult(outcome.Result, string(outcome.Model), outcome.Alpha, outcome.Duration)
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.log().Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	s.log().Info("daemon stopped via IPC")
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status(s.ctx)
	resp.Running = status.Running
	resp.PID = status.PID
	resp.ProfilesDir = status.ProfilesDir
	resp.Languages = append(resp.Languages, status.Languages...)
	resp.HybridReady = status.HybridReady
	resp.DefaultModel = status.DefaultModel
	resp.HistoryDBPath = status.HistoryDBPath
	resp.LockPath = status.LockFilePath
	resp.HistoryTotal = status.HistoryStats.Total
	resp.HistoryByLang = status.HistoryStats.ByLanguage
	resp.RequestsServed = status.RequestsServed
	return nil
}

func (s *service) Languages(_ LanguagesRequest, resp *LanguagesResponse) error {
	resp.Languages = s.daemon.Languages()
	return nil
}

func (s *service) History(req HistoryRequest, resp *HistoryResponse) error {
	if !s.daemon.HistoryEnabled() {
		return nil
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	records, err := s.daemon.History(s.ctx, limit)
	if err != nil {
		return err
	}
	resp.Entries = make([]api.HistoryEntry, 0, len(records))
	for _, rec := range records {
		resp.Entries = append(resp.Entries, api.FromRecord(rec))
	}
	return nil
}

func (s *service) HistoryClear(_ HistoryClearRequest, resp *HistoryClearResponse) error {
	s.log().Debug("history clear requested")
	if err := s.daemon.ClearHistory(s.ctx); err != nil {
		return err
	}
	resp.Cleared = true
	s.log().Info("history cleared via IPC")
	return nil
}
