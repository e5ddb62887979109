package controller

import (
	"context"

	"github.com/project/bookcrossing/api/lending"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type (
	RequestsUseCase interface {
		MakeRequest(ctx context.Context, requesterID, bookID int64) (entity.Request, error)
		GetRequests(ctx context.Context, bookID int64, params pagination.Params) (pagination.Page[entity.Request], error)
		ApproveRequest(ctx context.Context, requestID int64) (entity.Request, error)
		RemoveRequest(ctx context.Context, requestID int64) (entity.Request, error)
	}

	WishlistUseCase interface {
		AddWish(ctx context.Context, userID, bookID int64) error
		RemoveWish(ctx context.Context, userID, bookID int64) error
		CheckIfBookInWishList(ctx context.Context, userID, bookID int64) (bool, error)
		GetWishesOfCurrentUser(ctx context.Context, params pagination.Params) (pagination.Page[entity.Book], error)
		NotifyAboutAvailableBook(ctx context.Context, bookID int64) error
	}

	IdentityResolver interface {
		CurrentUserID(ctx context.Context) (int64, error)
	}
)

var _ lending.LendingServer = (*implementation)(nil)

type implementation struct {
	logger          *zap.Logger
	requestsUseCase RequestsUseCase
	wishlistUseCase WishlistUseCase
	identity        IdentityResolver
}

func New(
	logger *zap.Logger,
	requestsUseCase RequestsUseCase,
	wishlistUseCase WishlistUseCase,
	identity IdentityResolver,
) *implementation {
	return &implementation{
		logger:          logger,
		requestsUseCase: requestsUseCase,
		wishlistUseCase: wishlistUseCase,
		identity:        identity,
	}
}
