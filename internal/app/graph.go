package app

import (
	"github.com/go-faster/errors"
	"go.uber.org/dig"

	"github.com/xenking/membership-order/internal/domain/member"
	"github.com/xenking/membership-order/internal/domain/order"
)

// Graph is the composition root built by dig from the same constructors as
// Container. Selected with Config.Wiring = "dig".
type Graph struct {
	members *member.Service
	orders  order.Creator
}

// NewGraph registers the constructors in a dig container and resolves the
// services. dig creates every type once, so all consumers share one instance
// of each component.
func NewGraph(cfg *Config, opts ...Option) (*Graph, error) {
	o := newOptions(opts)
	c := dig.New()

	providers := []any{
		func() *Config { return cfg },
		newPolicy,
		o.memberRepository,
		member.NewService,
		func(s *member.Service) order.MemberFinder { return s },
		order.NewService,
		o.orderCreator,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, errors.Wrap(err, "provide")
		}
	}

	g := &Graph{}
	if err := c.Invoke(func(m *member.Service, oc order.Creator) {
		g.members = m
		g.orders = oc
	}); err != nil {
		return nil, errors.Wrap(err, "resolve graph")
	}
	return g, nil
}

// MemberService returns the member service.
func (g *Graph) MemberService() *member.Service {
	return g.members
}

// OrderService returns the order creator.
func (g *Graph) OrderService() order.Creator {
	return g.orders
}
