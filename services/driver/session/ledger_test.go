package session

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_Credit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		want    int64
		wantErr error
	}{
		{name: "minimum deposit", amount: 50000, want: 50000},
		{name: "large deposit has no upper bound", amount: 1_000_000_000_000, want: 1_000_000_000_000},
		{name: "max int64", amount: math.MaxInt64, want: math.MaxInt64},
		{name: "below minimum", amount: 49999, wantErr: ErrBelowMinimumDeposit},
		{name: "zero", amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative", amount: -50000, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(50000)
			got, err := l.Credit(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, int64(0), l.Amount())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_CreditRejectsOverflow(t *testing.T) {
	l := NewLedger(50000)

	got, err := l.Credit(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)

	got, err = l.Credit(50000)
	assert.ErrorIs(t, err, ErrAmountTooLarge)
	assert.Equal(t, int64(math.MaxInt64), got)
	assert.Equal(t, int64(math.MaxInt64), l.Amount())
	assert.ErrorIs(t, l.ValidateCredit(50000), ErrAmountTooLarge)

	_, err = l.Debit(50000)
	require.NoError(t, err)
	got, err = l.Credit(50000)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got)
}

func TestLedger_DebitFloorsAtZero(t *testing.T) {
	l := NewLedger(50000)
	_, _ = l.Credit(50000)

	taken, err := l.Debit(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), taken)
	assert.Equal(t, int64(49000), l.Amount())

	taken, err = l.Debit(100000)
	require.NoError(t, err)
	assert.Equal(t, int64(49000), taken)
	assert.Equal(t, int64(0), l.Amount())

	taken, err = l.Debit(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), taken)
	assert.Equal(t, int64(0), l.Amount())

	_, err = l.Debit(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedger_NeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := NewLedger(50000)

	for i := 0; i < 10000; i++ {
		amount := rng.Int63n(200000) - 50000
		if rng.Intn(4) == 0 {
			amount = math.MaxInt64 - rng.Int63n(200000)
		}
		if rng.Intn(2) == 0 {
			_, _ = l.Credit(amount)
		} else {
			_, _ = l.Debit(amount)
		}
		require.GreaterOrEqual(t, l.Amount(), int64(0), "step %d", i)
	}
}

func TestLedger_Gates(t *testing.T) {
	l := NewLedger(50000)
	assert.False(t, l.CanGoOnline())
	assert.False(t, l.Covers(1000))
	assert.True(t, l.Covers(0))

	_, _ = l.Credit(50000)
	assert.True(t, l.CanGoOnline())
	assert.True(t, l.Covers(1000))
}
