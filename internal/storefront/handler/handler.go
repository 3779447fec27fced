package handler

import (
	"context"
	"errors"
	"sync"

	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/internal/cart"
	"github.com/fekuna/shopwave-storefront/internal/catalog"
	catdto "github.com/fekuna/shopwave-storefront/internal/catalog/dto"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/fekuna/shopwave-storefront/internal/middleware"
	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/fekuna/shopwave-storefront/internal/money"
	"github.com/fekuna/shopwave-storefront/internal/storefront"
	"github.com/fekuna/shopwave-storefront/internal/storefront/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ storefrontv1.StorefrontServiceServer = (*StorefrontHandler)(nil)

type StorefrontHandler struct {
	storefrontv1.UnimplementedStorefrontServiceServer
	catalogUC catalog.UseCase
	uc        storefront.UseCase
	logger    logger.ZapLogger
}

func NewStorefrontHandler(catalogUC catalog.UseCase, uc storefront.UseCase, log logger.ZapLogger) *StorefrontHandler {
	return &StorefrontHandler{
		catalogUC: catalogUC,
		uc:        uc,
		logger:    log,
	}
}

// --- Catalog ---

func (h *StorefrontHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*storefrontv1.ListCategoriesResponse, error) {
	return &storefrontv1.ListCategoriesResponse{
		Categories: h.catalogUC.ListCategories(ctx),
	}, nil
}

func (h *StorefrontHandler) ListProducts(ctx context.Context, req *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsResponse, error) {
	// An omitted category means no category filter.
	category := req.Category
	if category == "" {
		category = catalog.AllCategories
	}

	products := h.catalogUC.ListProducts(ctx, &catdto.ProductFilters{
		Category:    category,
		SearchQuery: req.Search,
	})

	return &storefrontv1.ListProductsResponse{
		Products: mapProductsToProto(products),
		Empty:    len(products) == 0,
	}, nil
}

func (h *StorefrontHandler) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.ProductResponse, error) {
	p, err := h.catalogUC.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ProductResponse{Product: mapProductToProto(p)}, nil
}

// --- Sessions ---

func (h *StorefrontHandler) CreateSession(ctx context.Context, _ *emptypb.Empty) (*storefrontv1.ViewResponse, error) {
	v, err := h.uc.CreateSession(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ViewResponse{View: mapViewToProto(v)}, nil
}

func (h *StorefrontHandler) GetView(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.ViewResponse, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	v, err := h.uc.GetView(ctx, sessionID)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ViewResponse{View: mapViewToProto(v)}, nil
}

func (h *StorefrontHandler) SelectCategory(ctx context.Context, req *storefrontv1.SelectCategoryRequest) (*storefrontv1.ViewResponse, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	v, err := h.uc.SelectCategory(ctx, sessionID, req.Category)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ViewResponse{View: mapViewToProto(v)}, nil
}

func (h *StorefrontHandler) SetSearch(ctx context.Context, req *storefrontv1.SetSearchRequest) (*storefrontv1.ViewResponse, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	v, err := h.uc.SetSearch(ctx, sessionID, req.SearchText)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ViewResponse{View: mapViewToProto(v)}, nil
}

func (h *StorefrontHandler) AddToCart(ctx context.Context, req *storefrontv1.AddToCartRequest) (*storefrontv1.ViewResponse, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	v, err := h.uc.AddToCart(ctx, sessionID, req.ProductId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.ViewResponse{View: mapViewToProto(v)}, nil
}

func (h *StorefrontHandler) GetCart(ctx context.Context, req *storefrontv1.SessionRequest) (*storefrontv1.CartResponse, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	c, err := h.uc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &storefrontv1.CartResponse{Cart: mapCartToProto(c)}, nil
}

func (h *StorefrontHandler) EndSession(ctx context.Context, req *storefrontv1.SessionRequest) (*emptypb.Empty, error) {
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}
	if err := h.uc.EndSession(ctx, sessionID); err != nil {
		return nil, h.toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *StorefrontHandler) WatchView(req *storefrontv1.SessionRequest, stream storefrontv1.StorefrontService_WatchViewServer) error {
	ctx := stream.Context()
	sessionID, err := resolveSessionID(ctx, req.SessionId)
	if err != nil {
		return err
	}

	// Subscribe before reading the current view so no change falls in between.
	mailbox := newViewMailbox()
	unsubscribe := h.uc.Subscribe(sessionID, mailbox.put)
	defer unsubscribe()

	current, err := h.uc.GetView(ctx, sessionID)
	if err != nil {
		return h.toStatus(err)
	}
	if err := stream.Send(&storefrontv1.ViewResponse{View: mapViewToProto(current)}); err != nil {
		return err
	}
	last := current.Version

	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case <-mailbox.ready:
			v, ended := mailbox.take()
			if v != nil && v.Version > last {
				last = v.Version
				if err := stream.Send(&storefrontv1.ViewResponse{View: mapViewToProto(v)}); err != nil {
					return err
				}
			}
			if ended {
				return nil
			}
		}
	}
}

// viewMailbox keeps only the newest view for a watcher, so a slow stream never
// blocks the notifier and always catches up to the latest state.
type viewMailbox struct {
	mu    sync.Mutex
	view  *dto.View
	ended bool
	ready chan struct{}
}

func newViewMailbox() *viewMailbox {
	return &viewMailbox{ready: make(chan struct{}, 1)}
}

func (m *viewMailbox) put(v *dto.View) {
	m.mu.Lock()
	switch {
	case v == nil:
		m.ended = true
	case m.view == nil || v.Version > m.view.Version:
		m.view = v
	}
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

func (m *viewMailbox) take() (*dto.View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.view
	m.view = nil
	return v, m.ended
}

// resolveSessionID prefers the id in the request body over the x-session-id metadata.
func resolveSessionID(ctx context.Context, fromRequest string) (string, error) {
	if fromRequest != "" {
		return fromRequest, nil
	}
	if id := middleware.GetSessionID(ctx); id != "" {
		return id, nil
	}
	return "", status.Error(codes.InvalidArgument, "missing session id")
}

func (h *StorefrontHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, storefront.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, cart.ErrInvalidProduct):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		h.logger.Error("storefront request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

// Helpers

func mapProductToProto(p *model.Product) *storefrontv1.Product {
	if p == nil {
		return nil
	}
	return &storefrontv1.Product{
		Id:             p.ID,
		Title:          p.Title,
		Category:       p.Category,
		Price:          p.Price.String(),
		FormattedPrice: money.Format(p.Price),
		Rating:         p.Rating,
		ImageUrl:       p.Image,
		Tag:            p.Tag,
	}
}

func mapProductsToProto(products []model.Product) []*storefrontv1.Product {
	out := make([]*storefrontv1.Product, len(products))
	for i := range products {
		out[i] = mapProductToProto(&products[i])
	}
	return out
}

func mapCartToProto(c *dto.CartView) *storefrontv1.Cart {
	lines := make([]*storefrontv1.LineItem, len(c.Lines))
	for i := range c.Lines {
		lines[i] = &storefrontv1.LineItem{
			Product: mapProductToProto(&c.Lines[i].Product),
			Qty:     int64(c.Lines[i].Qty),
		}
	}
	return &storefrontv1.Cart{
		Lines:             lines,
		Count:             int64(c.Count),
		Subtotal:          c.Subtotal.String(),
		FormattedSubtotal: c.FormattedSubtotal,
	}
}

func mapViewToProto(v *dto.View) *storefrontv1.View {
	return &storefrontv1.View{
		SessionId:      v.SessionID,
		Version:        v.Version,
		Categories:     v.Categories,
		ActiveCategory: v.ActiveCategory,
		SearchText:     v.SearchText,
		Products:       mapProductsToProto(v.Products),
		Empty:          v.Empty,
		Cart:           mapCartToProto(&v.Cart),
	}
}
