package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/membership-order/internal/domain/discount"
	"github.com/xenking/membership-order/internal/domain/member"
	"github.com/xenking/membership-order/internal/domain/order"
	"github.com/xenking/membership-order/internal/storage/memory"
)

func rateConfig() *Config {
	return &Config{
		Discount: DiscountConfig{Kind: "rate", Amount: 1000, Percent: "10", Grade: "VIP"},
		Demo: DemoConfig{
			MemberID:   1,
			MemberName: "memberA",
			Grade:      "VIP",
			ItemName:   "itemA",
			ItemPrice:  10000,
		},
	}
}

func TestContainer_SharedRepository(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(rateConfig())
	require.NoError(t, err)

	require.NoError(t, c.MemberService().Join(ctx, member.Member{ID: 1, Name: "memberA", Grade: member.GradeVIP}))

	o, err := c.OrderService().CreateOrder(ctx, 1, "itemA", 10000)
	require.NoError(t, err)
	assert.Equal(t, order.Order{MemberID: 1, ItemName: "itemA", ItemPrice: 10000, DiscountPrice: 1000}, *o)
}

func TestContainer_Singletons(t *testing.T) {
	c, err := NewContainer(rateConfig())
	require.NoError(t, err)

	assert.Same(t, c.MemberService(), c.MemberService())
	assert.Same(t, c.OrderService().(*order.Service), c.OrderService().(*order.Service))
}

func TestContainer_ConcurrentSingletons(t *testing.T) {
	c, err := NewContainer(rateConfig(),
		WithTelemetry(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider()),
	)
	require.NoError(t, err)

	const n = 32
	var (
		members [n]*member.Service
		orders  [n]order.Creator
		g       errgroup.Group
	)
	for i := range n {
		g.Go(func() error {
			orders[i] = c.OrderService()
			members[i] = c.MemberService()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	first, ok := orders[0].(*order.Instrumented)
	require.True(t, ok, "expected instrumented order service, got %T", orders[0])
	for i := range n {
		assert.Same(t, members[0], members[i])
		got, ok := orders[i].(*order.Instrumented)
		require.True(t, ok)
		assert.Same(t, first, got)
	}
}

func TestContainer_FixedPolicy(t *testing.T) {
	cfg := rateConfig()
	cfg.Discount.Kind = "fixed"

	c, err := NewContainer(cfg)
	require.NoError(t, err)
	assert.Equal(t, discount.Fixed{Amount: 1000}, c.DiscountPolicy())

	ctx := context.Background()
	require.NoError(t, c.MemberService().Join(ctx, member.Member{ID: 2, Name: "memberB", Grade: member.GradeBasic}))

	o, err := c.OrderService().CreateOrder(ctx, 2, "itemB", 20000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), o.DiscountPrice)
}

func TestContainer_InvalidPolicy(t *testing.T) {
	cfg := rateConfig()
	cfg.Discount.Kind = "bogus"

	_, err := NewContainer(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create discount policy")
}

func TestContainer_NotFound(t *testing.T) {
	c, err := NewContainer(rateConfig())
	require.NoError(t, err)

	_, err = c.OrderService().CreateOrder(context.Background(), 42, "itemA", 100)
	require.ErrorIs(t, err, member.ErrNotFound)
}

func TestContainer_WithMemberRepository(t *testing.T) {
	repo := memory.NewMemberRepository()
	c, err := NewContainer(rateConfig(), WithMemberRepository(repo))
	require.NoError(t, err)

	require.NoError(t, c.MemberService().Join(context.Background(), member.Member{ID: 3, Name: "memberC", Grade: member.GradeVIP}))
	assert.Equal(t, 1, repo.Len())
}

func TestContainer_WithTelemetry(t *testing.T) {
	c, err := NewContainer(rateConfig(),
		WithTelemetry(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider()),
	)
	require.NoError(t, err)

	_, ok := c.OrderService().(*order.Instrumented)
	require.True(t, ok, "expected instrumented order service, got %T", c.OrderService())

	ctx := context.Background()
	require.NoError(t, c.MemberService().Join(ctx, member.Member{ID: 1, Name: "memberA", Grade: member.GradeVIP}))

	o, err := c.OrderService().CreateOrder(ctx, 1, "itemA", 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), o.DiscountPrice)
}
