// Package discount implements the pricing policies applied when an order is
// created. Policies are pure: the same member and price always produce the
// same discount, and a policy never fails.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/membership-order/internal/domain/member"
)

var hundred = decimal.NewFromInt(100)

// Policy computes the discount granted to m on an item priced at price.
type Policy interface {
	Discount(m member.Member, price int64) int64
}

// Fixed grants the same amount to every member regardless of price.
type Fixed struct {
	Amount int64
}

var _ Policy = Fixed{}

// NewFixed returns a Fixed policy granting amount.
func NewFixed(amount int64) Fixed {
	return Fixed{Amount: amount}
}

// Discount returns p.Amount.
func (p Fixed) Discount(_ member.Member, _ int64) int64 {
	return p.Amount
}

// Rate grants Percent percent of the price to members of Grade.
// An empty Grade applies the rate to every member.
type Rate struct {
	Percent decimal.Decimal
	Grade   member.Grade
}

var _ Policy = Rate{}

// NewRate returns a Rate policy restricted to VIP members.
func NewRate(percent decimal.Decimal) Rate {
	return Rate{Percent: percent, Grade: member.GradeVIP}
}

// Discount returns price * Percent / 100 truncated toward zero, or 0 when m
// is not eligible.
func (p Rate) Discount(m member.Member, price int64) int64 {
	if p.Grade != "" && m.Grade != p.Grade {
		return 0
	}
	return decimal.NewFromInt(price).Mul(p.Percent).Div(hundred).IntPart()
}
