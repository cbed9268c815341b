package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("", zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "GridLine Bank", cfg.BankName)
	assert.Equal(t, "PHP", cfg.Currency)
	assert.Equal(t, int64(100), cfg.WithdrawMultiple)
	assert.Equal(t, []int64{100, 500, 1000, 2000}, cfg.FastCash)
	assert.Equal(t, 3, cfg.PINAttempts)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "Carlo Dingle", cfg.Accounts[0].Name)
	assert.Equal(t, "0.00", cfg.Accounts[0].Balance)
	assert.Equal(t, 2007, cfg.Accounts[0].PIN)
	assert.Equal(t, "Sebastian Vettel", cfg.Accounts[1].Name)
	assert.Equal(t, "130000.00", cfg.Accounts[1].Balance)
	assert.Equal(t, 1987, cfg.Accounts[1].PIN)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
bank_name: Testtrack Bank
currency: EUR
withdraw_multiple: 50
accounts:
  - name: Alice
    balance: "10.00"
    pin: 1111
  - name: Bob
    balance: "20.00"
    pin: 2222
`)

	cfg, err := Load(path, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "Testtrack Bank", cfg.BankName)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, int64(50), cfg.WithdrawMultiple)
	assert.Equal(t, 3, cfg.PINAttempts) // untouched default
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "Alice", cfg.Accounts[0].Name)
}

func TestLoad_RejectsWrongAccountCount(t *testing.T) {
	path := writeConfig(t, `
accounts:
  - name: Alice
    balance: "10.00"
    pin: 1111
`)

	_, err := Load(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_RejectsShortPIN(t *testing.T) {
	path := writeConfig(t, `
accounts:
  - name: Alice
    balance: "10.00"
    pin: 123
  - name: Bob
    balance: "20.00"
    pin: 2222
`)

	_, err := Load(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeBalance(t *testing.T) {
	path := writeConfig(t, `
accounts:
  - name: Alice
    balance: "-10.00"
    pin: 1111
  - name: Bob
    balance: "20.00"
    pin: 2222
`)

	_, err := Load(path, zap.NewNop())
	assert.Error(t, err)
}

func TestLoad_RejectsUnparseableBalance(t *testing.T) {
	path := writeConfig(t, `
accounts:
  - name: Alice
    balance: "lots"
    pin: 1111
  - name: Bob
    balance: "20.00"
    pin: 2222
`)

	_, err := Load(path, zap.NewNop())
	assert.Error(t, err)
}

func TestVault_SeedsAccounts(t *testing.T) {
	cfg, err := Load("", zap.NewNop())
	require.NoError(t, err)

	vault := cfg.Vault()
	accts := vault.Accounts()
	require.Len(t, accts, 2)
	assert.Equal(t, "Carlo Dingle", accts[0].Name())
	assert.True(t, accts[0].Balance().IsZero())
	assert.True(t, accts[0].VerifyPIN(2007))
	assert.Equal(t, "Sebastian Vettel", accts[1].Name())
	assert.True(t, accts[1].VerifyPIN(1987))
}
