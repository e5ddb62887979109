package library

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/internal/usecase/library/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	errInternal = errors.New("internal error")
	testNow     = time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC)
)

type requestsFixture struct {
	ctx      context.Context
	books    *mocks.MockBooksRepository
	requests *mocks.MockRequestsRepository
	outbox   *mocks.MockOutboxRepository
	uc       *requestsImpl
}

type wishlistFixture struct {
	ctx        context.Context
	books      *mocks.MockBooksRepository
	wishes     *mocks.MockWishesRepository
	transactor *mocks.MockTransactor
	identity   *mocks.MockIdentityResolver
	notifier   *mocks.MockNotifier
	uc         *wishlistImpl
}

func newTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return logger
}

// passThroughTransactor runs the unit of work inline, as a real transactor
// would with a healthy database.
func passThroughTransactor(ctrl *gomock.Controller) *mocks.MockTransactor {
	transactor := mocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, function func(context.Context) error) error {
			return function(ctx)
		}).AnyTimes()
	return transactor
}

func initRequestsTest(t *testing.T) requestsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := requestsFixture{
		ctx:      context.Background(),
		books:    mocks.NewMockBooksRepository(ctrl),
		requests: mocks.NewMockRequestsRepository(ctrl),
		outbox:   mocks.NewMockOutboxRepository(ctrl),
	}
	f.uc = NewRequests(newTestLogger(t), f.books, f.requests, f.outbox, passThroughTransactor(ctrl))
	f.uc.now = func() time.Time { return testNow }
	return f
}

func initWishlistTest(t *testing.T, cfg config.Notify) wishlistFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := wishlistFixture{
		ctx:        context.Background(),
		books:      mocks.NewMockBooksRepository(ctrl),
		wishes:     mocks.NewMockWishesRepository(ctrl),
		transactor: mocks.NewMockTransactor(ctrl),
		identity:   mocks.NewMockIdentityResolver(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
	}
	f.uc = NewWishlist(newTestLogger(t), f.books, f.wishes, f.transactor, f.identity, f.notifier, cfg)
	return f
}
