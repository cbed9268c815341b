package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault() (*Vault, *Account, *Account) {
	carlo := NewAccount("Carlo Dingle", dec("0.00"), 2007)
	seb := NewAccount("Sebastian Vettel", dec("130000.00"), 1987)
	return NewVault(carlo, seb), carlo, seb
}

func TestAccounts_FixedOrder(t *testing.T) {
	v, carlo, seb := newTestVault()

	accts := v.Accounts()
	require.Len(t, accts, 2)
	assert.Same(t, carlo, accts[0])
	assert.Same(t, seb, accts[1])
}

func TestCounterparty_ReturnsTheOther(t *testing.T) {
	v, carlo, seb := newTestVault()

	assert.Same(t, seb, v.Counterparty(carlo))
	assert.Same(t, carlo, v.Counterparty(seb))
}

func TestTransfer_MovesFunds(t *testing.T) {
	v, carlo, seb := newTestVault()

	rcpt, err := v.Transfer(seb, carlo, dec("1000.00"))

	require.NoError(t, err)
	assert.True(t, seb.Balance().Equal(dec("129000.00")))
	assert.True(t, carlo.Balance().Equal(dec("1000.00")))
	assert.Equal(t, "Sebastian Vettel", rcpt.From)
	assert.Equal(t, "Carlo Dingle", rcpt.To)
	assert.True(t, rcpt.NewBalance.Equal(dec("129000.00")))
}

func TestTransfer_ConservesTotalBalance(t *testing.T) {
	v, carlo, seb := newTestVault()
	total := carlo.Balance().Add(seb.Balance())

	_, err := v.Transfer(seb, carlo, dec("12345.67"))

	require.NoError(t, err)
	assert.True(t, total.Equal(carlo.Balance().Add(seb.Balance())))
}

func TestTransfer_RecordsBothSidesWithSharedTimestamp(t *testing.T) {
	v, carlo, seb := newTestVault()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	v.clock = func() time.Time { return fixed }

	_, err := v.Transfer(seb, carlo, dec("1000.00"))
	require.NoError(t, err)

	out := seb.History()
	in := carlo.History()
	require.Len(t, out, 1)
	require.Len(t, in, 1)
	assert.Equal(t, KindTransferOut, out[0].Kind)
	assert.Equal(t, KindTransferIn, in[0].Kind)
	assert.Equal(t, "Carlo Dingle", out[0].Counterparty)
	assert.Equal(t, "Sebastian Vettel", in[0].Counterparty)
	assert.True(t, out[0].Time.Equal(in[0].Time))
	assert.True(t, out[0].Time.Equal(fixed))
}

func TestTransfer_RejectsOverdraft(t *testing.T) {
	v, carlo, seb := newTestVault()

	_, err := v.Transfer(carlo, seb, dec("1.00"))

	assert.ErrorIs(t, err, ErrInsufficient)
	assert.True(t, carlo.Balance().IsZero())
	assert.True(t, seb.Balance().Equal(dec("130000.00")))
	assert.Empty(t, carlo.History())
	assert.Empty(t, seb.History())
}

func TestTransfer_RejectsNonPositive(t *testing.T) {
	v, carlo, seb := newTestVault()

	_, err := v.Transfer(seb, carlo, dec("0"))
	assert.ErrorIs(t, err, ErrBadAmount)

	_, err = v.Transfer(seb, carlo, dec("-10"))
	assert.ErrorIs(t, err, ErrBadAmount)
	assert.True(t, seb.Balance().Equal(dec("130000.00")))
}
