package identity

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// MetadataKey carries the caller id set by the upstream auth gateway.
	MetadataKey = "x-user-id"
	HeaderKey   = "X-User-Id"
)

var ErrUnauthenticated = errors.New("caller identity is missing")

type userIDKey struct{}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

type Resolver struct{}

func NewResolver() Resolver {
	return Resolver{}
}

func (Resolver) CurrentUserID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// Parse accepts the raw header or metadata value; it must be a positive integer.
func Parse(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// UnaryServerInterceptor moves the caller id from incoming metadata into ctx.
// Calls without the key pass through; operations that need it fail later.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		values := md.Get(MetadataKey)
		if len(values) == 0 {
			return handler(ctx, req)
		}

		id, err := Parse(values[0])
		if err != nil {
			return handler(ctx, req)
		}
		return handler(WithUserID(ctx, id), req)
	}
}
