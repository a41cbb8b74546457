package member

import "context"

// Service implements member registration and lookup on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a member Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Join registers m.
func (s *Service) Join(ctx context.Context, m Member) error {
	return s.repo.Save(ctx, m)
}

// FindMember returns the member stored under id. Repository errors, including
// ErrNotFound, are returned as is.
func (s *Service) FindMember(ctx context.Context, id int64) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}
