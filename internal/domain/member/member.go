package member

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// Grade is a membership tier. It decides whether grade-restricted discount
// policies apply to a member.
type Grade string

const (
	// GradeBasic is the default tier.
	GradeBasic Grade = "BASIC"
	// GradeVIP is the premium tier.
	GradeVIP Grade = "VIP"
)

// ErrNotFound is returned when no member is stored under the requested id.
var ErrNotFound = errors.New("member not found")

// ParseGrade converts a case-insensitive grade name into a Grade.
func ParseGrade(s string) (Grade, error) {
	switch g := Grade(strings.ToUpper(strings.TrimSpace(s))); g {
	case GradeBasic, GradeVIP:
		return g, nil
	default:
		return "", errors.Errorf("unknown member grade: %q", s)
	}
}

// Member is a registered customer. Members are values: repositories hand out
// copies, so a stored member never changes after Save.
type Member struct {
	ID    int64
	Name  string
	Grade Grade
}

// Repository stores members keyed by their id.
type Repository interface {
	// Save stores m, replacing any member with the same id.
	Save(ctx context.Context, m Member) error
	// FindByID returns ErrNotFound when id was never saved.
	FindByID(ctx context.Context, id int64) (*Member, error)
}
