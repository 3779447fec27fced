package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/shopwave-storefront/internal/cart"
	"github.com/fekuna/shopwave-storefront/internal/catalog"
	"github.com/fekuna/shopwave-storefront/internal/events"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/fekuna/shopwave-storefront/internal/money"
	"github.com/fekuna/shopwave-storefront/internal/storefront"
	"github.com/fekuna/shopwave-storefront/internal/storefront/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type storefrontUseCase struct {
	catalog   *catalog.Catalog
	repo      storefront.Repository
	notifier  *storefront.Notifier
	publisher events.Publisher
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewStorefrontUseCase(cat *catalog.Catalog, repo storefront.Repository, publisher events.Publisher, log logger.ZapLogger) storefront.UseCase {
	return &storefrontUseCase{
		catalog:   cat,
		repo:      repo,
		notifier:  storefront.NewNotifier(),
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *storefrontUseCase) CreateSession(ctx context.Context) (*dto.View, error) {
	now := uc.now()
	s := &model.Session{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ActiveCategory: catalog.AllCategories,
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	uc.logger.Info("session started", zap.String("session_id", s.ID))
	return uc.view(s), nil
}

func (uc *storefrontUseCase) GetView(ctx context.Context, sessionID string) (*dto.View, error) {
	s, err := uc.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.view(s), nil
}

// SelectCategory stores category as given. An empty or unknown category matches
// no product; only the stateless ListProducts call reads "" as "All".
func (uc *storefrontUseCase) SelectCategory(ctx context.Context, sessionID, category string) (*dto.View, error) {
	return uc.update(ctx, sessionID, func(s *model.Session) error {
		s.ActiveCategory = category
		return nil
	})
}

func (uc *storefrontUseCase) SetSearch(ctx context.Context, sessionID, searchText string) (*dto.View, error) {
	return uc.update(ctx, sessionID, func(s *model.Session) error {
		s.SearchText = searchText
		return nil
	})
}

func (uc *storefrontUseCase) AddToCart(ctx context.Context, sessionID string, productID int64) (*dto.View, error) {
	p, ok := uc.catalog.Lookup(productID)
	if !ok {
		return nil, fmt.Errorf("%w: product %d is not in the catalog", cart.ErrInvalidProduct, productID)
	}

	var line model.LineItem
	view, err := uc.update(ctx, sessionID, func(s *model.Session) error {
		next, err := cart.Add(s.Cart, &p)
		if err != nil {
			return err
		}
		s.Cart = next
		line, _ = next.Line(p.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishCartItemAdded(ctx, sessionID, line); err != nil {
		uc.logger.Warn("failed to publish cart event",
			zap.String("session_id", sessionID),
			zap.Int64("product_id", productID),
			zap.Error(err),
		)
	}
	return view, nil
}

func (uc *storefrontUseCase) GetCart(ctx context.Context, sessionID string) (*dto.CartView, error) {
	s, err := uc.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cv := cartView(s.Cart)
	return &cv, nil
}

func (uc *storefrontUseCase) EndSession(ctx context.Context, sessionID string) error {
	if err := uc.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	uc.notifier.Drop(sessionID)
	uc.logger.Info("session ended", zap.String("session_id", sessionID))
	return nil
}

func (uc *storefrontUseCase) Subscribe(sessionID string, l storefront.Listener) func() {
	return uc.notifier.Subscribe(sessionID, l)
}

// update replaces session state through fn, then recomputes and broadcasts the view.
func (uc *storefrontUseCase) update(ctx context.Context, sessionID string, fn func(s *model.Session) error) (*dto.View, error) {
	s, err := uc.repo.Update(ctx, sessionID, func(s *model.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		s.Version++
		s.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	v := uc.view(s)
	uc.notifier.Notify(sessionID, v)
	return v, nil
}

func (uc *storefrontUseCase) view(s *model.Session) *dto.View {
	products := uc.catalog.Visible(s.ActiveCategory, s.SearchText)
	return &dto.View{
		SessionID:      s.ID,
		Version:        s.Version,
		Categories:     uc.catalog.Categories(),
		ActiveCategory: s.ActiveCategory,
		SearchText:     s.SearchText,
		Products:       products,
		Empty:          len(products) == 0,
		Cart:           cartView(s.Cart),
	}
}

func cartView(c model.Cart) dto.CartView {
	totals := cart.Aggregate(c)
	return dto.CartView{
		Lines:             c.Lines(),
		Count:             totals.Count,
		Subtotal:          totals.Subtotal,
		FormattedSubtotal: money.Format(totals.Subtotal),
	}
}
