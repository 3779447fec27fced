package handler

import (
	"context"
	"io"
	"net"
	"testing"

	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/internal/catalog"
	catUC "github.com/fekuna/shopwave-storefront/internal/catalog/usecase"
	"github.com/fekuna/shopwave-storefront/internal/events"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/fekuna/shopwave-storefront/internal/middleware"
	"github.com/fekuna/shopwave-storefront/internal/storefront/repository"
	sfUC "github.com/fekuna/shopwave-storefront/internal/storefront/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newClient(t *testing.T) storefrontv1.StorefrontServiceClient {
	t.Helper()

	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)
	log := logger.NewNop()
	h := NewStorefrontHandler(
		catUC.NewCatalogUseCase(cat, log),
		sfUC.NewStorefrontUseCase(cat, repository.NewMemoryRepository(), events.NopPublisher{}, log),
		log,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(log),
		),
		grpc.ChainStreamInterceptor(middleware.StreamLoggingInterceptor(log)),
	)
	storefrontv1.RegisterStorefrontServiceServer(srv, h)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
	})
	return storefrontv1.NewStorefrontServiceClient(conn)
}

func productIDs(products []*storefrontv1.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.Id)
	}
	return out
}

func TestCatalogCalls(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	cats, err := client.ListCategories(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Fashion", "Home", "Electronics", "Office"}, cats.Categories)

	all, err := client.ListProducts(ctx, &storefrontv1.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Products, 8)
	assert.False(t, all.Empty)

	home, err := client.ListProducts(ctx, &storefrontv1.ListProductsRequest{Category: "Home", Search: "MUG"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, productIDs(home.Products))

	none, err := client.ListProducts(ctx, &storefrontv1.ListProductsRequest{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, none.Products)
	assert.True(t, none.Empty)

	p, err := client.GetProduct(ctx, &storefrontv1.GetProductRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, "AeroFit Running Shoes", p.Product.Title)
	assert.Equal(t, "89", p.Product.Price)
	assert.Equal(t, "$89", p.Product.FormattedPrice)

	_, err = client.GetProduct(ctx, &storefrontv1.GetProductRequest{Id: 99})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSessionFlow(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.CreateSession(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	id := created.View.SessionId
	require.NotEmpty(t, id)
	assert.Equal(t, "All", created.View.ActiveCategory)
	assert.Equal(t, "$0", created.View.Cart.FormattedSubtotal)

	v, err := client.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{SessionId: id, Category: "Fashion"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, productIDs(v.View.Products))

	v, err = client.SetSearch(ctx, &storefrontv1.SetSearchRequest{SessionId: id, SearchText: "tote"})
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, productIDs(v.View.Products))

	for _, pid := range []int64{1, 1, 2} {
		_, err = client.AddToCart(ctx, &storefrontv1.AddToCartRequest{SessionId: id, ProductId: pid})
		require.NoError(t, err)
	}

	c, err := client.GetCart(ctx, &storefrontv1.SessionRequest{SessionId: id})
	require.NoError(t, err)
	require.Len(t, c.Cart.Lines, 2)
	assert.Equal(t, int64(1), c.Cart.Lines[0].Product.Id)
	assert.Equal(t, int64(2), c.Cart.Lines[0].Qty)
	assert.Equal(t, int64(3), c.Cart.Count)
	assert.Equal(t, "220", c.Cart.Subtotal)
	assert.Equal(t, "$220", c.Cart.FormattedSubtotal)

	_, err = client.EndSession(ctx, &storefrontv1.SessionRequest{SessionId: id})
	require.NoError(t, err)

	_, err = client.GetView(ctx, &storefrontv1.SessionRequest{SessionId: id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestSessionIDFromMetadata(t *testing.T) {
	client := newClient(t)

	created, err := client.CreateSession(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), middleware.SessionMetadataKey, created.View.SessionId)
	v, err := client.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{Category: "Office"})
	require.NoError(t, err)
	assert.Equal(t, created.View.SessionId, v.View.SessionId)
	assert.Equal(t, []int64{4, 8}, productIDs(v.View.Products))
}

func TestRequestSessionIDWinsOverMetadata(t *testing.T) {
	client := newClient(t)

	a, err := client.CreateSession(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	b, err := client.CreateSession(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)

	ctx := metadata.AppendToOutgoingContext(context.Background(), middleware.SessionMetadataKey, b.View.SessionId)
	v, err := client.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{SessionId: a.View.SessionId, Category: "Office"})
	require.NoError(t, err)
	assert.Equal(t, a.View.SessionId, v.View.SessionId)
	assert.Equal(t, "Office", v.View.ActiveCategory)

	other, err := client.GetView(context.Background(), &storefrontv1.SessionRequest{SessionId: b.View.SessionId})
	require.NoError(t, err)
	assert.Equal(t, "All", other.View.ActiveCategory)
}

func TestEmptyCategory(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	// Stateless listing reads an empty category as "All".
	all, err := client.ListProducts(ctx, &storefrontv1.ListProductsRequest{Category: ""})
	require.NoError(t, err)
	assert.Len(t, all.Products, 8)

	// A session stores the selector as sent, and "" names no category.
	created, err := client.CreateSession(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	v, err := client.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{SessionId: created.View.SessionId, Category: ""})
	require.NoError(t, err)
	assert.Empty(t, v.View.Products)
	assert.True(t, v.View.Empty)
}

func TestWatchViewStreamsChangesUntilSessionEnds(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	created, err := client.CreateSession(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	id := created.View.SessionId

	stream, err := client.WatchView(ctx, &storefrontv1.SessionRequest{SessionId: id})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.View.Version)
	assert.Equal(t, int64(0), first.View.Cart.Count)

	_, err = client.AddToCart(ctx, &storefrontv1.AddToCartRequest{SessionId: id, ProductId: 3})
	require.NoError(t, err)

	next, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, int64(1), next.View.Version)
	assert.Equal(t, int64(1), next.View.Cart.Count)
	assert.Equal(t, "$219", next.View.Cart.FormattedSubtotal)

	_, err = client.EndSession(ctx, &storefrontv1.SessionRequest{SessionId: id})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWatchViewUnknownSession(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.WatchView(ctx, &storefrontv1.SessionRequest{SessionId: "nope"})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestErrorCodes(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	created, err := client.CreateSession(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	id := created.View.SessionId

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "missing session id",
			call: func() error {
				_, err := client.GetView(ctx, &storefrontv1.SessionRequest{})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "unknown session",
			call: func() error {
				_, err := client.GetCart(ctx, &storefrontv1.SessionRequest{SessionId: "nope"})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "unknown product",
			call: func() error {
				_, err := client.AddToCart(ctx, &storefrontv1.AddToCartRequest{SessionId: id, ProductId: 42})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "end unknown session",
			call: func() error {
				_, err := client.EndSession(ctx, &storefrontv1.SessionRequest{SessionId: "nope"})
				return err
			},
			want: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(tt.call()))
		})
	}
}
