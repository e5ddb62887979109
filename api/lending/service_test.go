package lending

import (
	"context"
	"net"
	"testing"

	"github.com/project/bookcrossing/internal/entity"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubServer struct {
	LendingServer
}

func (s *stubServer) MakeRequest(_ context.Context, req *MakeRequestRequest) (*RequestResponse, error) {
	return &RequestResponse{Request: entity.Request{ID: 11, BookID: req.BookID, OwnerID: 1, RequesterID: 2}}, nil
}

func (s *stubServer) CheckWish(_ context.Context, req *WishRequest) (*CheckWishResponse, error) {
	if req.BookID == 404 {
		return nil, status.Error(codes.NotFound, "book not found")
	}
	return &CheckWishResponse{InWishList: true}, nil
}

func newTestClient(t *testing.T, srv LendingServer, opts ...grpc.ServerOption) LendingClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	RegisterLendingServer(s, srv)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewLendingClient(conn)
}

func TestLendingServiceRoundTrip(t *testing.T) {
	t.Parallel()

	methods := make(chan string, 4)
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		methods <- info.FullMethod
		return handler(ctx, req)
	}
	client := newTestClient(t, &stubServer{}, grpc.ForceServerCodec(Codec{}), grpc.UnaryInterceptor(interceptor))
	ctx := context.Background()

	resp, err := client.MakeRequest(ctx, &MakeRequestRequest{BookID: 7})
	require.NoError(t, err)
	require.EqualValues(t, 11, resp.Request.ID)
	require.EqualValues(t, 7, resp.Request.BookID)
	require.Equal(t, "/bookcrossing.Lending/MakeRequest", <-methods)

	check, err := client.CheckWish(ctx, &WishRequest{BookID: 7})
	require.NoError(t, err)
	require.True(t, check.InWishList)
	require.Equal(t, FullMethod(CheckWishMethod), <-methods)

	_, err = client.CheckWish(ctx, &WishRequest{BookID: 404})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestCodec(t *testing.T) {
	t.Parallel()

	codec := Codec{}
	require.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(&WishRequest{BookID: 7})
	require.NoError(t, err)
	require.JSONEq(t, `{"book_id":7}`, string(data))

	var got WishRequest
	require.NoError(t, codec.Unmarshal(data, &got))
	require.EqualValues(t, 7, got.BookID)
}
