package order

import (
	"context"
	"fmt"
)

// Order is the outcome of buying one item. It is computed on demand and
// never stored.
type Order struct {
	MemberID      int64
	ItemName      string
	ItemPrice     int64
	DiscountPrice int64
}

// CalculatePrice returns the price the member pays after the discount.
func (o Order) CalculatePrice() int64 {
	return o.ItemPrice - o.DiscountPrice
}

func (o Order) String() string {
	return fmt.Sprintf("Order{memberId=%d, itemName=%q, itemPrice=%d, discountPrice=%d}",
		o.MemberID, o.ItemName, o.ItemPrice, o.DiscountPrice)
}

// Creator creates orders. Service implements it; decorators such as
// Instrumented wrap it.
type Creator interface {
	CreateOrder(ctx context.Context, memberID int64, itemName string, itemPrice int64) (*Order, error)
}
