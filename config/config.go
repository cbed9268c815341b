// Package config loads the machine's runtime settings. Built-in defaults
// seed the classic two GridLine accounts; an optional YAML file can swap
// in different names, balances, denominations or limits.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gridline/bank"
)

// Seed describes one account created at startup.
type Seed struct {
	Name    string `mapstructure:"name" validate:"required"`
	Balance string `mapstructure:"balance" validate:"required"`
	PIN     int    `mapstructure:"pin" validate:"min=1000,max=999999"`
}

// Config carries all runtime settings for one process run.
type Config struct {
	BankName         string  `mapstructure:"bank_name" validate:"required"`
	Currency         string  `mapstructure:"currency" validate:"required,len=3"`
	WithdrawMultiple int64   `mapstructure:"withdraw_multiple" validate:"min=1"`
	FastCash         []int64 `mapstructure:"fast_cash" validate:"min=1,dive,min=1"`
	PINAttempts      int     `mapstructure:"pin_attempts" validate:"min=1"`
	LogFile          string  `mapstructure:"log_file"`
	Accounts         []Seed  `mapstructure:"accounts" validate:"len=2,dive"`
}

// Load builds the configuration from defaults plus an optional YAML file.
func Load(path string, logger *zap.Logger) (*Config, error) {
	v := viper.New()
	v.SetDefault("bank_name", "GridLine Bank")
	v.SetDefault("currency", "PHP")
	v.SetDefault("withdraw_multiple", 100)
	v.SetDefault("fast_cash", []int64{100, 500, 1000, 2000})
	v.SetDefault("pin_attempts", 3)
	v.SetDefault("accounts", []map[string]any{
		{"name": "Carlo Dingle", "balance": "0.00", "pin": 2007},
		{"name": "Sebastian Vettel", "balance": "130000.00", "pin": 1987},
	})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		logger.Info("config file loaded", zap.String("path", path))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	for _, seed := range cfg.Accounts {
		amt, err := decimal.NewFromString(seed.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %q: bad balance %q: %w", seed.Name, seed.Balance, err)
		}
		if amt.IsNegative() {
			return nil, fmt.Errorf("account %q: balance must not be negative", seed.Name)
		}
	}
	return &cfg, nil
}

// Vault seeds the in-memory accounts. Only valid after Load succeeded,
// since the balance strings were checked there.
func (c *Config) Vault() *bank.Vault {
	accts := make([]*bank.Account, 0, len(c.Accounts))
	for _, seed := range c.Accounts {
		amt, _ := decimal.NewFromString(seed.Balance)
		accts = append(accts, bank.NewAccount(seed.Name, amt, seed.PIN))
	}
	return bank.NewVault(accts[0], accts[1])
}
