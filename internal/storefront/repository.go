package storefront

import (
	"context"
	"errors"

	"github.com/fekuna/shopwave-storefront/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

// Repository stores sessions. Update applies fn to a copy of the stored
// session and replaces it atomically; fn may run more than once on contention.
type Repository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}
