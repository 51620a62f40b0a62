package session

import "math"

// Ledger holds a driver's balance in rupiah. The balance never goes below zero.
type Ledger struct {
	amount     int64
	minDeposit int64
}

// NewLedger creates a ledger with the given minimum deposit
func NewLedger(minDeposit int64) *Ledger {
	return &Ledger{minDeposit: minDeposit}
}

// Amount returns the current balance
func (l *Ledger) Amount() int64 {
	return l.amount
}

// ValidateCredit checks a deposit amount without applying it
func (l *Ledger) ValidateCredit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount < l.minDeposit {
		return ErrBelowMinimumDeposit
	}
	if amount > math.MaxInt64-l.amount {
		return ErrAmountTooLarge
	}
	return nil
}

// Credit adds a deposit and returns the new balance
func (l *Ledger) Credit(amount int64) (int64, error) {
	if err := l.ValidateCredit(amount); err != nil {
		return l.amount, err
	}
	l.amount += amount
	return l.amount, nil
}

// Debit subtracts amount, flooring at zero, and returns what was actually taken
func (l *Ledger) Debit(amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	taken := amount
	if taken > l.amount {
		taken = l.amount
	}
	l.amount -= taken
	return taken, nil
}

// CanGoOnline is false with a zero balance
func (l *Ledger) CanGoOnline() bool {
	return l.amount > 0
}

// Covers reports whether the balance can pay fee in full
func (l *Ledger) Covers(fee int64) bool {
	return l.amount >= fee
}
