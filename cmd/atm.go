package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gridline/config"
	"gridline/tui"
)

// newLogger builds a file-backed zap logger, or a no-op one when no path
// is configured. The TUI owns the terminal, so logs never go to stdout.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func runATM() error {
	logger, err := newLogger(logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	cfg, err := config.Load(cfgFile, logger)
	if err != nil {
		return err
	}

	// The --log flag wins; otherwise fall back to the configured path.
	if logFile == "" && cfg.LogFile != "" {
		logger, err = newLogger(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}
	defer logger.Sync()

	vault := cfg.Vault()
	logger.Info("machine ready",
		zap.String("bank", cfg.BankName),
		zap.Int("accounts", len(vault.Accounts())))

	p := tea.NewProgram(tui.New(cfg, vault, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
