// Package bank holds the in-memory ledger: accounts, their transaction
// history, and the vault that ties the fixed pair of accounts together.
// Amounts are decimal.Decimal so repeated deposits and withdrawals never
// accumulate binary floating-point drift.
package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	minPIN = 1000
	maxPIN = 999999
)

// Account holds one customer's balance, PIN and transaction history.
// All mutation happens on the single UI goroutine, so there is no lock.
type Account struct {
	name    string
	balance decimal.Decimal
	pin     int
	history []Transaction
}

func NewAccount(name string, balance decimal.Decimal, pin int) *Account {
	return &Account{name: name, balance: balance, pin: pin}
}

func (a *Account) Name() string { return a.name }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// VerifyPIN reports whether pin matches the account's current PIN.
func (a *Account) VerifyPIN(pin int) bool { return pin == a.pin }

// SetPIN replaces the PIN. The 4-6 digit policy is enforced here so a
// session can never leave an account with a PIN the login screen rejects.
func (a *Account) SetPIN(pin int) error {
	if pin < minPIN || pin > maxPIN {
		return ErrBadPIN
	}
	a.pin = pin
	return nil
}

// Deposit adds amount to the balance. Amount must be positive.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw subtracts amount from the balance. On any error the balance is
// left unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficient
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Record appends a transaction stamped with t. History only grows.
func (a *Account) Record(kind Kind, amount decimal.Decimal, counterparty string, t time.Time) Transaction {
	tx := newTransaction(kind, amount, counterparty, t)
	a.history = append(a.history, tx)
	return tx
}

// History returns an independent snapshot; mutating it does not touch the
// account's own log.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) setBalance(balance decimal.Decimal) {
	a.balance = balance
}
