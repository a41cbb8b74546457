package order

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/xenking/membership-order/internal/domain/order"

var _ Creator = (*Instrumented)(nil)

// Instrumented wraps a Creator with tracing, metrics and logging. It returns
// exactly what the wrapped Creator returns.
type Instrumented struct {
	next      Creator
	tracer    trace.Tracer
	created   metric.Int64Counter
	discounts metric.Int64Histogram
}

// NewInstrumented decorates next with telemetry from the given providers.
func NewInstrumented(next Creator, tp trace.TracerProvider, mp metric.MeterProvider) (*Instrumented, error) {
	meter := mp.Meter(instrumentationName)

	created, err := meter.Int64Counter("orders.created",
		metric.WithDescription("Number of order creation attempts"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "orders.created counter")
	}
	discounts, err := meter.Int64Histogram("orders.discount",
		metric.WithDescription("Discount granted per order"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "orders.discount histogram")
	}

	return &Instrumented{
		next:      next,
		tracer:    tp.Tracer(instrumentationName),
		created:   created,
		discounts: discounts,
	}, nil
}

// CreateOrder implements Creator.
func (i *Instrumented) CreateOrder(ctx context.Context, memberID int64, itemName string, itemPrice int64) (*Order, error) {
	ctx, span := i.tracer.Start(ctx, "CreateOrder",
		trace.WithAttributes(
			attribute.Int64("member.id", memberID),
			attribute.String("item.name", itemName),
			attribute.Int64("item.price", itemPrice),
		),
	)
	defer span.End()

	lg := zctx.From(ctx).With(
		zap.Int64("member_id", memberID),
		zap.String("item_name", itemName),
	)

	o, err := i.next.CreateOrder(ctx, memberID, itemName, itemPrice)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		i.created.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", false)))
		lg.Warn("Create order failed", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int64("order.discount", o.DiscountPrice))
	i.created.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", true)))
	i.discounts.Record(ctx, o.DiscountPrice)
	lg.Debug("Order created",
		zap.Int64("item_price", o.ItemPrice),
		zap.Int64("discount_price", o.DiscountPrice),
	)
	return o, nil
}
