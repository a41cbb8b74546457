package discount

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/membership-order/internal/domain/member"
)

// Kind selects a Policy implementation.
type Kind string

const (
	// KindFixed selects Fixed.
	KindFixed Kind = "fixed"
	// KindRate selects Rate.
	KindRate Kind = "rate"
)

// Config describes which Policy to build and how.
type Config struct {
	Kind Kind
	// Amount is the Fixed discount.
	Amount int64
	// Percent is the Rate discount, e.g. "10" or "12.5".
	Percent string
	// Grade restricts Rate to one member grade. Empty means every member.
	Grade string
}

// New builds the Policy described by cfg.
func New(cfg Config) (Policy, error) {
	switch Kind(strings.ToLower(string(cfg.Kind))) {
	case KindFixed:
		if cfg.Amount < 0 {
			return nil, errors.Errorf("fixed discount must not be negative: %d", cfg.Amount)
		}
		return NewFixed(cfg.Amount), nil
	case KindRate:
		percent, err := decimal.NewFromString(cfg.Percent)
		if err != nil {
			return nil, errors.Wrapf(err, "parse discount percent %q", cfg.Percent)
		}
		if percent.IsNegative() || percent.GreaterThan(hundred) {
			return nil, errors.Errorf("discount percent out of range [0, 100]: %s", percent)
		}
		p := Rate{Percent: percent}
		if cfg.Grade != "" {
			g, err := member.ParseGrade(cfg.Grade)
			if err != nil {
				return nil, errors.Wrap(err, "rate discount grade")
			}
			p.Grade = g
		}
		return p, nil
	default:
		return nil, errors.Errorf("unsupported discount policy: %q", cfg.Kind)
	}
}
