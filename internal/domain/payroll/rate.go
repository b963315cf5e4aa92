package payroll

import (
	"github.com/shopspring/decimal"
)

// RateKind enum
type RateKind string

const (
	RateFixed      RateKind = "fixed"
	RatePercentage RateKind = "percentage"
)

var oneHundred = decimal.NewFromInt(100)

// Rate is how a registry component contributes to a salary: either a fixed
// currency amount or a percentage of the employee's base salary. Exactly one
// of the two is representable; construct through NewFixedRate /
// NewPercentageRate so a "neither set" entry cannot exist past the write
// boundary.
type Rate struct {
	kind  RateKind
	value decimal.Decimal
}

func NewFixedRate(amount decimal.Decimal) (Rate, error) {
	if amount.IsNegative() {
		return Rate{}, ErrNegativeAmount
	}
	return Rate{kind: RateFixed, value: amount}, nil
}

func NewPercentageRate(percentage decimal.Decimal) (Rate, error) {
	if percentage.IsNegative() || percentage.GreaterThan(oneHundred) {
		return Rate{}, ErrInvalidPercentage
	}
	return Rate{kind: RatePercentage, value: percentage}, nil
}

// RateFromColumns rebuilds the union from the nullable amount/percentage
// database columns. The schema CHECK guarantees exactly one is set, but the
// refinement is kept so a hand-edited row still fails loudly.
func RateFromColumns(amount, percentage *decimal.Decimal) (Rate, error) {
	switch {
	case amount != nil && percentage == nil:
		return NewFixedRate(*amount)
	case amount == nil && percentage != nil:
		return NewPercentageRate(*percentage)
	default:
		return Rate{}, ErrAmbiguousRate
	}
}

func (r Rate) Kind() RateKind { return r.kind }

// FixedAmount returns the amount column value, nil for percentage rates.
func (r Rate) FixedAmount() *decimal.Decimal {
	if r.kind != RateFixed {
		return nil
	}
	v := r.value
	return &v
}

// Percentage returns the percentage column value, nil for fixed rates.
func (r Rate) Percentage() *decimal.Decimal {
	if r.kind != RatePercentage {
		return nil
	}
	v := r.value
	return &v
}

// ResolveAgainst computes the contributed amount for the given base salary.
func (r Rate) ResolveAgainst(base decimal.Decimal) decimal.Decimal {
	if r.kind == RatePercentage {
		return base.Mul(r.value).Div(oneHundred)
	}
	return r.value
}

// Details is the human-readable derivation string stored on breakdown rows.
func (r Rate) Details() string {
	if r.kind == RatePercentage {
		return r.value.String() + "% of base salary"
	}
	return "fixed amount"
}
