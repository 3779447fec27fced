package storefront

import (
	"context"

	"github.com/fekuna/shopwave-storefront/internal/storefront/dto"
)

type UseCase interface {
	CreateSession(ctx context.Context) (*dto.View, error)
	GetView(ctx context.Context, sessionID string) (*dto.View, error)
	SelectCategory(ctx context.Context, sessionID, category string) (*dto.View, error)
	SetSearch(ctx context.Context, sessionID, searchText string) (*dto.View, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*dto.View, error)
	GetCart(ctx context.Context, sessionID string) (*dto.CartView, error)
	EndSession(ctx context.Context, sessionID string) error

	// Subscribe registers l for views recomputed after state changes of a session.
	Subscribe(sessionID string, l Listener) (unsubscribe func())
}
