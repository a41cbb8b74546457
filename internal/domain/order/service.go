package order

import (
	"context"

	"github.com/xenking/membership-order/internal/domain/discount"
	"github.com/xenking/membership-order/internal/domain/member"
)

// MemberFinder looks members up by id. *member.Service implements it.
type MemberFinder interface {
	FindMember(ctx context.Context, id int64) (*member.Member, error)
}

var _ Creator = (*Service)(nil)

// Service prices orders for known members using the injected discount policy.
type Service struct {
	members  MemberFinder
	discount discount.Policy
}

// NewService creates an order Service with the required domain dependencies.
func NewService(members MemberFinder, policy discount.Policy) *Service {
	return &Service{
		members:  members,
		discount: policy,
	}
}

// CreateOrder looks up the member, applies the discount policy to itemPrice
// and returns the resulting order. Lookup errors such as member.ErrNotFound
// are returned unchanged.
func (s *Service) CreateOrder(ctx context.Context, memberID int64, itemName string, itemPrice int64) (*Order, error) {
	m, err := s.members.FindMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &Order{
		MemberID:      memberID,
		ItemName:      itemName,
		ItemPrice:     itemPrice,
		DiscountPrice: s.discount.Discount(*m, itemPrice),
	}, nil
}
