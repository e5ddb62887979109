package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/project/bookcrossing/internal/controller/mocks"
	"github.com/project/bookcrossing/internal/entity"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
)

const (
	callerID    = int64(42)
	ownerID     = int64(7)
	bookID      = int64(100)
	requestID   = int64(5)
	missingID   = int64(0)
	negativeID  = int64(-3)
	tooBigPage  = 101
	defaultPage = 1
)

var (
	errInternal = errors.New("internal error")
	testTime    = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
)

type serviceMocks struct {
	requests *mocks.MockRequestsUseCase
	wishlist *mocks.MockWishlistUseCase
	identity *mocks.MockIdentityResolver
}

func initServiceTest(t *testing.T) (*gomock.Controller, serviceMocks, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		requests: mocks.NewMockRequestsUseCase(ctrl),
		wishlist: mocks.NewMockWishlistUseCase(ctrl),
		identity: mocks.NewMockIdentityResolver(ctrl),
	}
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	service := New(logger, m.requests, m.wishlist, m.identity)
	return ctrl, m, service
}

// convertCodeToError returns a use case error that maps back onto code.
func convertCodeToError(code codes.Code) error {
	switch code {
	case codes.NotFound:
		return entity.ErrBookNotFound
	case codes.FailedPrecondition:
		return entity.ErrWishAlreadyExists
	case codes.Internal:
		return errInternal
	default:
		return nil
	}
}

func pendingRequest() entity.Request {
	return entity.Request{
		ID:          requestID,
		BookID:      bookID,
		OwnerID:     ownerID,
		RequesterID: callerID,
		RequestDate: testTime,
	}
}
