package app

import (
	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/membership-order/internal/domain/discount"
	"github.com/xenking/membership-order/internal/domain/member"
	"github.com/xenking/membership-order/internal/domain/order"
	"github.com/xenking/membership-order/internal/storage/memory"
)

// Root is what a composition root hands to callers.
type Root interface {
	MemberService() *member.Service
	OrderService() order.Creator
}

var (
	_ Root = (*Container)(nil)
	_ Root = (*Graph)(nil)
)

// Option customizes a composition root.
type Option func(*options)

type options struct {
	lg   *zap.Logger
	tp   trace.TracerProvider
	mp   metric.MeterProvider
	repo member.Repository
}

func newOptions(opts []Option) options {
	o := options{lg: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for wiring diagnostics.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) { o.lg = lg }
}

// WithTelemetry wraps the order service with tracing and metrics.
func WithTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) Option {
	return func(o *options) {
		o.tp = tp
		o.mp = mp
	}
}

// WithMemberRepository replaces the default in-memory member storage.
func WithMemberRepository(repo member.Repository) Option {
	return func(o *options) { o.repo = repo }
}

// The constructors below are the only place concrete implementations are
// named. Container and Graph both build from them.

func newPolicy(cfg *Config) (discount.Policy, error) {
	p, err := discount.New(cfg.Discount.policy())
	if err != nil {
		return nil, errors.Wrap(err, "create discount policy")
	}
	return p, nil
}

func (o options) memberRepository() member.Repository {
	if o.repo != nil {
		return o.repo
	}
	return memory.NewMemberRepository()
}

func (o options) orderCreator(svc *order.Service) order.Creator {
	if o.tp == nil || o.mp == nil {
		return svc
	}

	inst, err := order.NewInstrumented(svc, o.tp, o.mp)
	if err != nil {
		o.lg.Warn("Order instrumentation disabled", zap.Error(err))
		return svc
	}
	return inst
}

// NewRoot builds the composition root selected by cfg.Wiring.
func NewRoot(cfg *Config, opts ...Option) (Root, error) {
	switch cfg.Wiring {
	case WiringDig:
		return NewGraph(cfg, opts...)
	case WiringContainer, "":
		return NewContainer(cfg, opts...)
	default:
		return nil, errors.Errorf("unsupported wiring: %q", cfg.Wiring)
	}
}
