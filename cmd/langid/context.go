package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"langid/internal/config"
	"langid/internal/ipc"
)

// commandContext carries the lazily loaded config and the daemon socket
// path across the CLI commands.
type commandContext struct {
	socketFlag *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(socketFlag, configFlag *string) *commandContext {
	return &commandContext{socketFlag: socketFlag, configFlag: configFlag}
}

// ensureConfig loads the config once per process and creates the configured
// directories. Later callers get the cached result.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// socketPath resolves the daemon socket, preferring the --socket flag and
// falling back to the configured log directory.
func (c *commandContext) socketPath() string {
	if c.socketFlag != nil {
		if socket := strings.TrimSpace(*c.socketFlag); socket != "" {
			return socket
		}
	}
	if cfg, _, _, err := config.Load(""); err == nil {
		return filepath.Join(cfg.Paths.LogDir, "langid.sock")
	}
	if logDir, err := config.ExpandPath("~/.local/share/langid/logs"); err == nil {
		return filepath.Join(logDir, "langid.sock")
	}
	return filepath.Join(os.TempDir(), "langid.sock")
}

func (c *commandContext) dialClient() (*ipc.Client, error) {
	socket := c.socketPath()
	client, err := ipc.Dial(socket)
	if err != nil {
		switch {
		case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
			return nil, fmt.Errorf("connect to daemon: socket %s not found; start the daemon with `langidd`", socket)
		case errors.Is(err, syscall.ECONNREFUSED):
			return nil, fmt.Errorf("connect to daemon: socket %s refused the connection; verify the daemon is running", socket)
		default:
			return nil, fmt.Errorf("connect to daemon: %w", err)
		}
	}
	return client, nil
}

func (c *commandContext) withClient(fn func(*ipc.Client) error) error {
	client, err := c.dialClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
