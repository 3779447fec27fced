package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

type StorefrontServiceClient interface {
	ListCategories(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error)
	CreateSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ViewResponse, error)
	GetView(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ViewResponse, error)
	SelectCategory(ctx context.Context, in *SelectCategoryRequest, opts ...grpc.CallOption) (*ViewResponse, error)
	SetSearch(ctx context.Context, in *SetSearchRequest, opts ...grpc.CallOption) (*ViewResponse, error)
	AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*ViewResponse, error)
	GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error)
	EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	WatchView(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (StorefrontService_WatchViewClient, error)
}

type StorefrontService_WatchViewClient interface {
	Recv() (*ViewResponse, error)
	grpc.ClientStream
}

type storefrontServiceWatchViewClient struct {
	grpc.ClientStream
}

func (x *storefrontServiceWatchViewClient) Recv() (*ViewResponse, error) {
	m := new(ViewResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type storefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontServiceClient(cc grpc.ClientConnInterface) StorefrontServiceClient {
	return &storefrontServiceClient{cc: cc}
}

// invoke issues a unary call with the JSON content-subtype forced in front of opts.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storefrontServiceClient) ListCategories(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, "ListCategories", in, opts)
}

func (c *storefrontServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, "ListProducts", in, opts)
}

func (c *storefrontServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, "GetProduct", in, opts)
}

func (c *storefrontServiceClient) CreateSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ViewResponse, error) {
	return invoke[ViewResponse](ctx, c.cc, "CreateSession", in, opts)
}

func (c *storefrontServiceClient) GetView(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*ViewResponse, error) {
	return invoke[ViewResponse](ctx, c.cc, "GetView", in, opts)
}

func (c *storefrontServiceClient) SelectCategory(ctx context.Context, in *SelectCategoryRequest, opts ...grpc.CallOption) (*ViewResponse, error) {
	return invoke[ViewResponse](ctx, c.cc, "SelectCategory", in, opts)
}

func (c *storefrontServiceClient) SetSearch(ctx context.Context, in *SetSearchRequest, opts ...grpc.CallOption) (*ViewResponse, error) {
	return invoke[ViewResponse](ctx, c.cc, "SetSearch", in, opts)
}

func (c *storefrontServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*ViewResponse, error) {
	return invoke[ViewResponse](ctx, c.cc, "AddToCart", in, opts)
}

func (c *storefrontServiceClient) GetCart(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, "GetCart", in, opts)
}

func (c *storefrontServiceClient) EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, "EndSession", in, opts)
}

func (c *storefrontServiceClient) WatchView(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (StorefrontService_WatchViewClient, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &StorefrontService_ServiceDesc.Streams[0], fullMethod("WatchView"), opts...)
	if err != nil {
		return nil, err
	}
	x := &storefrontServiceWatchViewClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
