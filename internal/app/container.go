package app

import (
	"sync"

	"github.com/xenking/membership-order/internal/domain/discount"
	"github.com/xenking/membership-order/internal/domain/member"
	"github.com/xenking/membership-order/internal/domain/order"
)

// Container is the hand-wired composition root.
//
// Each component is created at most once per Container, on first use, so
// every accessor returns the same instance and both services share a single
// member repository.
type Container struct {
	opts   options
	policy discount.Policy

	memberRepo    func() member.Repository
	memberService func() *member.Service
	orderService  func() order.Creator
}

// NewContainer validates cfg and prepares the component graph.
func NewContainer(cfg *Config, opts ...Option) (*Container, error) {
	policy, err := newPolicy(cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{opts: newOptions(opts), policy: policy}
	c.memberRepo = sync.OnceValue(c.opts.memberRepository)
	c.memberService = sync.OnceValue(func() *member.Service {
		return member.NewService(c.memberRepo())
	})
	c.orderService = sync.OnceValue(func() order.Creator {
		return c.opts.orderCreator(order.NewService(c.MemberService(), c.policy))
	})
	return c, nil
}

// MemberService returns the member service.
func (c *Container) MemberService() *member.Service {
	return c.memberService()
}

// OrderService returns the order creator, instrumented when telemetry was
// configured.
func (c *Container) OrderService() order.Creator {
	return c.orderService()
}

// DiscountPolicy returns the policy injected into the order service.
func (c *Container) DiscountPolicy() discount.Policy {
	return c.policy
}
