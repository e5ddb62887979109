package library

import (
	"context"
	"time"

	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/internal/workerpool"
	"github.com/project/bookcrossing/pkg/pagination"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/usecases_mock.go -package=mocks

type (
	BooksRepository interface {
		GetBook(ctx context.Context, bookID int64) (entity.Book, error)
	}

	RequestsRepository interface {
		AddRequest(ctx context.Context, request entity.Request) (entity.Request, error)
		GetRequest(ctx context.Context, requestID int64) (entity.Request, error)
		UpdateRequest(ctx context.Context, request entity.Request) error
		DeleteRequest(ctx context.Context, requestID int64) error
		ListBookRequests(ctx context.Context, bookID int64, params pagination.Params) (pagination.Page[entity.Request], error)
	}

	WishesRepository interface {
		AddWish(ctx context.Context, wish entity.Wish) error
		DeleteWish(ctx context.Context, userID, bookID int64) error
		WishExists(ctx context.Context, userID, bookID int64) (bool, error)
		ListUserWishedBooks(ctx context.Context, userID int64, params pagination.Params) (pagination.Page[entity.Book], error)
		ListBookWishers(ctx context.Context, bookID int64) ([]entity.Wish, error)
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	IdentityResolver interface {
		CurrentUserID(ctx context.Context) (int64, error)
	}

	// Notifier hands one availability notice to the delivery channel.
	Notifier interface {
		NotifyWishAvailable(ctx context.Context, notification entity.WishAvailableNotification) error
	}
)

var _ RequestsUseCase = (*requestsImpl)(nil)
var _ WishlistUseCase = (*wishlistImpl)(nil)

type requestsImpl struct {
	logger             *zap.Logger
	booksRepository    BooksRepository
	requestsRepository RequestsRepository
	outboxRepository   OutboxRepository
	transactor         Transactor
	now                func() time.Time
}

func NewRequests(
	logger *zap.Logger,
	booksRepository BooksRepository,
	requestsRepository RequestsRepository,
	outboxRepository OutboxRepository,
	transactor Transactor,
) *requestsImpl {
	return &requestsImpl{
		logger:             logger,
		booksRepository:    booksRepository,
		requestsRepository: requestsRepository,
		outboxRepository:   outboxRepository,
		transactor:         transactor,
		now:                nowUTC,
	}
}

type wishlistImpl struct {
	logger           *zap.Logger
	booksRepository  BooksRepository
	wishesRepository WishesRepository
	transactor       Transactor
	identity         IdentityResolver
	notifier         Notifier
	pool             workerpool.Pool[entity.Wish, notifyResult]
	cfg              config.Notify
}

func NewWishlist(
	logger *zap.Logger,
	booksRepository BooksRepository,
	wishesRepository WishesRepository,
	transactor Transactor,
	identity IdentityResolver,
	notifier Notifier,
	cfg config.Notify,
) *wishlistImpl {
	return &wishlistImpl{
		logger:           logger,
		booksRepository:  booksRepository,
		wishesRepository: wishesRepository,
		transactor:       transactor,
		identity:         identity,
		notifier:         notifier,
		pool:             workerpool.New[entity.Wish, notifyResult](),
		cfg:              cfg,
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
