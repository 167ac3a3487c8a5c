package money

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

const DefaultCurrency = "USD"

// Money is an amount in minor units (cents) tagged with a currency code.
// Integer arithmetic avoids the rounding drift of floating point prices.
type Money struct {
	amount   int64
	currency string
}

func New(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustNew panics on a negative amount. Intended for literals in tests and
// for values already validated upstream.
func MustNew(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{currency: currency}
}

func (m Money) Amount() int64    { return m.amount }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m.amount == 0 }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount, currency: m.currency}
}

// SubClamped subtracts other and floors the result at zero. A discount can
// never drive a price negative.
func (m Money) SubClamped(other Money) Money {
	remaining := m.amount - other.amount
	if remaining < 0 {
		remaining = 0
	}
	return Money{amount: remaining, currency: m.currency}
}

func (m Money) Min(other Money) Money {
	if other.amount < m.amount {
		return other
	}
	return m
}

func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}
