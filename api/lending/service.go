package lending

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "bookcrossing.Lending"

const (
	MakeRequestMethod     = "MakeRequest"
	GetRequestsMethod     = "GetRequests"
	ApproveRequestMethod  = "ApproveRequest"
	RemoveRequestMethod   = "RemoveRequest"
	AddWishMethod         = "AddWish"
	RemoveWishMethod      = "RemoveWish"
	CheckWishMethod       = "CheckWish"
	GetWishesMethod       = "GetWishes"
	NotifyAvailableMethod = "NotifyAvailable"
)

// LendingServer is the server API of the bookcrossing.Lending service.
type LendingServer interface {
	MakeRequest(ctx context.Context, req *MakeRequestRequest) (*RequestResponse, error)
	GetRequests(ctx context.Context, req *GetRequestsRequest) (*GetRequestsResponse, error)
	ApproveRequest(ctx context.Context, req *ApproveRequestRequest) (*RequestResponse, error)
	RemoveRequest(ctx context.Context, req *RemoveRequestRequest) (*RequestResponse, error)
	AddWish(ctx context.Context, req *WishRequest) (*WishResponse, error)
	RemoveWish(ctx context.Context, req *WishRequest) (*WishResponse, error)
	CheckWish(ctx context.Context, req *WishRequest) (*CheckWishResponse, error)
	GetWishes(ctx context.Context, req *GetWishesRequest) (*GetWishesResponse, error)
	NotifyAvailable(ctx context.Context, req *NotifyAvailableRequest) (*NotifyAvailableResponse, error)
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler[Req, Resp any](
	method string,
	call func(LendingServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(LendingServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LendingServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var LendingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LendingServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MakeRequestMethod, Handler: unaryHandler(MakeRequestMethod, LendingServer.MakeRequest)},
		{MethodName: GetRequestsMethod, Handler: unaryHandler(GetRequestsMethod, LendingServer.GetRequests)},
		{MethodName: ApproveRequestMethod, Handler: unaryHandler(ApproveRequestMethod, LendingServer.ApproveRequest)},
		{MethodName: RemoveRequestMethod, Handler: unaryHandler(RemoveRequestMethod, LendingServer.RemoveRequest)},
		{MethodName: AddWishMethod, Handler: unaryHandler(AddWishMethod, LendingServer.AddWish)},
		{MethodName: RemoveWishMethod, Handler: unaryHandler(RemoveWishMethod, LendingServer.RemoveWish)},
		{MethodName: CheckWishMethod, Handler: unaryHandler(CheckWishMethod, LendingServer.CheckWish)},
		{MethodName: GetWishesMethod, Handler: unaryHandler(GetWishesMethod, LendingServer.GetWishes)},
		{MethodName: NotifyAvailableMethod, Handler: unaryHandler(NotifyAvailableMethod, LendingServer.NotifyAvailable)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookcrossing/lending.proto",
}

func RegisterLendingServer(s grpc.ServiceRegistrar, srv LendingServer) {
	s.RegisterService(&LendingServiceDesc, srv)
}

// LendingClient is the client API of the bookcrossing.Lending service.
// Calls are sent with the JSON content subtype.
type LendingClient interface {
	MakeRequest(ctx context.Context, in *MakeRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	GetRequests(ctx context.Context, in *GetRequestsRequest, opts ...grpc.CallOption) (*GetRequestsResponse, error)
	ApproveRequest(ctx context.Context, in *ApproveRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	RemoveRequest(ctx context.Context, in *RemoveRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error)
	AddWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*WishResponse, error)
	RemoveWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*WishResponse, error)
	CheckWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*CheckWishResponse, error)
	GetWishes(ctx context.Context, in *GetWishesRequest, opts ...grpc.CallOption) (*GetWishesResponse, error)
	NotifyAvailable(ctx context.Context, in *NotifyAvailableRequest, opts ...grpc.CallOption) (*NotifyAvailableResponse, error)
}

type lendingClient struct {
	cc grpc.ClientConnInterface
}

func NewLendingClient(cc grpc.ClientConnInterface) LendingClient {
	return &lendingClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lendingClient) MakeRequest(ctx context.Context, in *MakeRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[MakeRequestRequest, RequestResponse](ctx, c.cc, MakeRequestMethod, in, opts)
}

func (c *lendingClient) GetRequests(ctx context.Context, in *GetRequestsRequest, opts ...grpc.CallOption) (*GetRequestsResponse, error) {
	return invoke[GetRequestsRequest, GetRequestsResponse](ctx, c.cc, GetRequestsMethod, in, opts)
}

func (c *lendingClient) ApproveRequest(ctx context.Context, in *ApproveRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[ApproveRequestRequest, RequestResponse](ctx, c.cc, ApproveRequestMethod, in, opts)
}

func (c *lendingClient) RemoveRequest(ctx context.Context, in *RemoveRequestRequest, opts ...grpc.CallOption) (*RequestResponse, error) {
	return invoke[RemoveRequestRequest, RequestResponse](ctx, c.cc, RemoveRequestMethod, in, opts)
}

func (c *lendingClient) AddWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*WishResponse, error) {
	return invoke[WishRequest, WishResponse](ctx, c.cc, AddWishMethod, in, opts)
}

func (c *lendingClient) RemoveWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*WishResponse, error) {
	return invoke[WishRequest, WishResponse](ctx, c.cc, RemoveWishMethod, in, opts)
}

func (c *lendingClient) CheckWish(ctx context.Context, in *WishRequest, opts ...grpc.CallOption) (*CheckWishResponse, error) {
	return invoke[WishRequest, CheckWishResponse](ctx, c.cc, CheckWishMethod, in, opts)
}

func (c *lendingClient) GetWishes(ctx context.Context, in *GetWishesRequest, opts ...grpc.CallOption) (*GetWishesResponse, error) {
	return invoke[GetWishesRequest, GetWishesResponse](ctx, c.cc, GetWishesMethod, in, opts)
}

func (c *lendingClient) NotifyAvailable(ctx context.Context, in *NotifyAvailableRequest, opts ...grpc.CallOption) (*NotifyAvailableResponse, error) {
	return invoke[NotifyAvailableRequest, NotifyAvailableResponse](ctx, c.cc, NotifyAvailableMethod, in, opts)
}
