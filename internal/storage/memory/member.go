// Package memory provides in-process implementations of the domain repositories.
package memory

import (
	"context"
	"sync"

	"github.com/xenking/membership-order/internal/domain/member"
)

var _ member.Repository = (*MemberRepository)(nil)

// MemberRepository implements member.Repository on top of a map.
// It is safe for concurrent use.
type MemberRepository struct {
	mu      sync.RWMutex
	members map[int64]member.Member
}

// NewMemberRepository returns an empty MemberRepository.
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{members: make(map[int64]member.Member)}
}

// Save stores m under m.ID, replacing any previous entry. It never fails.
func (r *MemberRepository) Save(_ context.Context, m member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[m.ID] = m
	return nil
}

// FindByID returns a copy of the stored member or member.ErrNotFound.
func (r *MemberRepository) FindByID(_ context.Context, id int64) (*member.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	if !ok {
		return nil, member.ErrNotFound
	}
	return &m, nil
}

// Len returns the number of stored members. Tests use it to check what a
// composition root stored.
func (r *MemberRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
