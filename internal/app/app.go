package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xenking/membership-order/internal/domain/member"
)

// Run builds the composition root and places the configured demo order.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg = lg.With(zap.Stringer("run_id", uuid.New()))
	ctx = zctx.Base(ctx, lg)

	lg.Info("Initializing",
		zap.String("wiring", cfg.Wiring),
		zap.String("discount", cfg.Discount.Kind),
		zap.Int64("member_id", cfg.Demo.MemberID),
	)

	root, err := NewRoot(cfg,
		WithLogger(lg),
		WithTelemetry(m.TracerProvider(), m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create composition root")
	}

	return PlaceDemoOrder(ctx, root, cfg.Demo)
}

// PlaceDemoOrder joins the demo member, looks them up and orders the demo
// item through the root's services.
func PlaceDemoOrder(ctx context.Context, root Root, demo DemoConfig) error {
	lg := zctx.From(ctx)

	grade, err := member.ParseGrade(demo.Grade)
	if err != nil {
		return errors.Wrap(err, "demo member")
	}

	members := root.MemberService()
	if err := members.Join(ctx, member.Member{
		ID:    demo.MemberID,
		Name:  demo.MemberName,
		Grade: grade,
	}); err != nil {
		return errors.Wrap(err, "join")
	}

	found, err := members.FindMember(ctx, demo.MemberID)
	if err != nil {
		return errors.Wrap(err, "find member")
	}
	lg.Info("Member joined",
		zap.Int64("member_id", found.ID),
		zap.String("name", found.Name),
		zap.String("grade", string(found.Grade)),
	)

	o, err := root.OrderService().CreateOrder(ctx, demo.MemberID, demo.ItemName, demo.ItemPrice)
	if err != nil {
		return errors.Wrap(err, "create order")
	}
	lg.Info("Order created",
		zap.Stringer("order", o),
		zap.Int64("price", o.CalculatePrice()),
	)

	return nil
}
