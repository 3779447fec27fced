// Package storefrontv1 declares the storefront.v1 gRPC service. Messages are
// plain structs carried by the JSON codec registered in this package.
package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "storefront.v1.StorefrontService"

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type StorefrontServiceServer interface {
	ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error)
	CreateSession(context.Context, *emptypb.Empty) (*ViewResponse, error)
	GetView(context.Context, *SessionRequest) (*ViewResponse, error)
	SelectCategory(context.Context, *SelectCategoryRequest) (*ViewResponse, error)
	SetSearch(context.Context, *SetSearchRequest) (*ViewResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*ViewResponse, error)
	GetCart(context.Context, *SessionRequest) (*CartResponse, error)
	EndSession(context.Context, *SessionRequest) (*emptypb.Empty, error)
	// WatchView streams the session's current view, then every newer one, and
	// ends when the session ends.
	WatchView(*SessionRequest, StorefrontService_WatchViewServer) error
}

type StorefrontService_WatchViewServer interface {
	Send(*ViewResponse) error
	grpc.ServerStream
}

type storefrontServiceWatchViewServer struct {
	grpc.ServerStream
}

func (x *storefrontServiceWatchViewServer) Send(m *ViewResponse) error {
	return x.ServerStream.SendMsg(m)
}

// UnimplementedStorefrontServiceServer answers every call with codes.Unimplemented.
type UnimplementedStorefrontServiceServer struct{}

func (UnimplementedStorefrontServiceServer) ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}
func (UnimplementedStorefrontServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedStorefrontServiceServer) GetProduct(context.Context, *GetProductRequest) (*ProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedStorefrontServiceServer) CreateSession(context.Context, *emptypb.Empty) (*ViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedStorefrontServiceServer) GetView(context.Context, *SessionRequest) (*ViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetView not implemented")
}
func (UnimplementedStorefrontServiceServer) SelectCategory(context.Context, *SelectCategoryRequest) (*ViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SelectCategory not implemented")
}
func (UnimplementedStorefrontServiceServer) SetSearch(context.Context, *SetSearchRequest) (*ViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetSearch not implemented")
}
func (UnimplementedStorefrontServiceServer) AddToCart(context.Context, *AddToCartRequest) (*ViewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToCart not implemented")
}
func (UnimplementedStorefrontServiceServer) GetCart(context.Context, *SessionRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}
func (UnimplementedStorefrontServiceServer) EndSession(context.Context, *SessionRequest) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}

func (UnimplementedStorefrontServiceServer) WatchView(*SessionRequest, StorefrontService_WatchViewServer) error {
	return status.Error(codes.Unimplemented, "method WatchView not implemented")
}

func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to the shape grpc.MethodDesc expects.
func unaryHandler[Req, Resp any](method string, call func(StorefrontServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StorefrontServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchViewHandler(srv any, stream grpc.ServerStream) error {
	in := new(SessionRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(StorefrontServiceServer).WatchView(in, &storefrontServiceWatchViewServer{stream})
}

var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCategories", Handler: unaryHandler("ListCategories", StorefrontServiceServer.ListCategories)},
		{MethodName: "ListProducts", Handler: unaryHandler("ListProducts", StorefrontServiceServer.ListProducts)},
		{MethodName: "GetProduct", Handler: unaryHandler("GetProduct", StorefrontServiceServer.GetProduct)},
		{MethodName: "CreateSession", Handler: unaryHandler("CreateSession", StorefrontServiceServer.CreateSession)},
		{MethodName: "GetView", Handler: unaryHandler("GetView", StorefrontServiceServer.GetView)},
		{MethodName: "SelectCategory", Handler: unaryHandler("SelectCategory", StorefrontServiceServer.SelectCategory)},
		{MethodName: "SetSearch", Handler: unaryHandler("SetSearch", StorefrontServiceServer.SetSearch)},
		{MethodName: "AddToCart", Handler: unaryHandler("AddToCart", StorefrontServiceServer.AddToCart)},
		{MethodName: "GetCart", Handler: unaryHandler("GetCart", StorefrontServiceServer.GetCart)},
		{MethodName: "EndSession", Handler: unaryHandler("EndSession", StorefrontServiceServer.EndSession)},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchView",
			Handler:       watchViewHandler,
			ServerStreams: true,
		},
	},
	Metadata: "storefront/v1/storefront.json",
}
