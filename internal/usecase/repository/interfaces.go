package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
)

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
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	// DataBase is the part of pgxpool.Pool and pgx.Tx the repositories use.
	DataBase interface {
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindWishAvailable
	OutboxKindRequestMade
	OutboxKindRequestApproved
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindWishAvailable:
		return "wish_available"
	case OutboxKindRequestMade:
		return "request_made"
	case OutboxKindRequestApproved:
		return "request_approved"
	default:
		return "undefined"
	}
}
