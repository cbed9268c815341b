package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction record.
type Kind int

const (
	KindDeposit Kind = iota
	KindWithdrawal
	KindFastCash
	KindTransferOut
	KindTransferIn
)

// TimeLayout is the display format for record timestamps.
const TimeLayout = "2006-01-02 03:04:05"

// Transaction is one entry in an account's history. Records are append-only
// and never reordered, so insertion order is chronological order.
type Transaction struct {
	ID           string
	Kind         Kind
	Amount       decimal.Decimal
	Counterparty string
	Time         time.Time
}

func newTransaction(kind Kind, amount decimal.Decimal, counterparty string, t time.Time) Transaction {
	return Transaction{
		ID:           uuid.NewString(),
		Kind:         kind,
		Amount:       amount,
		Counterparty: counterparty,
		Time:         t,
	}
}

// Describe renders the record as a single history line in the given currency.
func (tx Transaction) Describe(currency string) string {
	when := tx.Time.Format(TimeLayout)
	amt := tx.Amount.StringFixed(2)
	switch tx.Kind {
	case KindDeposit:
		return fmt.Sprintf("Deposited: +%s %s | Date: %s", currency, amt, when)
	case KindWithdrawal:
		return fmt.Sprintf("Withdrew: -%s %s | Date: %s", currency, amt, when)
	case KindFastCash:
		return fmt.Sprintf("Withdrew (Fast Cash): -%s %s | Date: %s", currency, amt, when)
	case KindTransferOut:
		return fmt.Sprintf("Transferred: -%s %s to %s | Date: %s", currency, amt, tx.Counterparty, when)
	case KindTransferIn:
		return fmt.Sprintf("Received: +%s %s from %s | Date: %s", currency, amt, tx.Counterparty, when)
	}
	return fmt.Sprintf("%s %s | Date: %s", currency, amt, when)
}
