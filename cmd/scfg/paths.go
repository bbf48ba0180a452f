package main

import (
	"log/slog"
	"os"
	"os/user"
	"path/filepath"

	"github.com/benaskins/scfg/internal/audit"
	"github.com/benaskins/scfg/internal/config"
	"github.com/benaskins/scfg/internal/secrets"
)

// scfgHome returns the path to the scfg home directory (~/.scfg).
func scfgHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scfg"), nil
}

// toolConfig loads ~/.scfg/config.yaml, falling back to defaults when the
// file is missing or unreadable.
func toolConfig() *config.Config {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		slog.Warn("ignoring unreadable tool config", "path", config.DefaultPath(), "error", err)
		return &config.Config{}
	}
	return cfg
}

// defaultAccount resolves the account to use when -a is not given: the
// configured account override, else the current OS user.
func defaultAccount() string {
	if cfg, err := config.Load(config.DefaultPath()); err == nil && cfg.Account != "" {
		return cfg.Account
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// newBackend builds the platform store wrapped with audit logging. When the
// audit log cannot be opened the store degrades to unaudited rather than
// refusing to run.
func newBackend(actor string) (secrets.Backend, func()) {
	inner := secrets.NewSystemBackend()

	home, err := scfgHome()
	if err != nil {
		slog.Warn("audit log unavailable", "error", err)
		return inner, func() {}
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		slog.Warn("audit log unavailable", "path", home, "error", err)
		return inner, func() {}
	}
	logger, err := audit.NewLogger(filepath.Join(home, "audit.log"))
	if err != nil {
		slog.Warn("audit log unavailable", "error", err)
		return inner, func() {}
	}
	return secrets.NewAuditedBackend(inner, logger, actor), func() { logger.Close() }
}
