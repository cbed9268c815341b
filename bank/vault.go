package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vault owns the fixed pair of accounts for the life of the process. It is
// the only place allowed to move money between them.
type Vault struct {
	accounts []*Account
	clock    func() time.Time
}

func NewVault(a, b *Account) *Vault {
	return &Vault{accounts: []*Account{a, b}, clock: time.Now}
}

// Accounts returns the accounts in their fixed presentation order.
func (v *Vault) Accounts() []*Account {
	out := make([]*Account, len(v.accounts))
	copy(out, v.accounts)
	return out
}

// Counterparty returns the other of the two accounts.
func (v *Vault) Counterparty(active *Account) *Account {
	if active == v.accounts[0] {
		return v.accounts[1]
	}
	return v.accounts[0]
}

// TransferReceipt summarises a completed transfer.
type TransferReceipt struct {
	From       string
	To         string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	Time       time.Time
}

// Transfer debits from and credits to, appending a matching record on each
// side with a shared timestamp. The amount is validated exactly once here;
// the balance assignments below intentionally bypass Withdraw's own check.
func (v *Vault) Transfer(from, to *Account, amount decimal.Decimal) (TransferReceipt, error) {
	if !amount.IsPositive() {
		return TransferReceipt{}, ErrBadAmount
	}
	if amount.GreaterThan(from.Balance()) {
		return TransferReceipt{}, ErrInsufficient
	}
	now := v.clock()
	from.setBalance(from.Balance().Sub(amount))
	to.setBalance(to.Balance().Add(amount))
	from.Record(KindTransferOut, amount, to.Name(), now)
	to.Record(KindTransferIn, amount, from.Name(), now)
	return TransferReceipt{
		From:       from.Name(),
		To:         to.Name(),
		Amount:     amount,
		NewBalance: from.Balance(),
		Time:       now,
	}, nil
}
