package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
)

const constraintRequestsBook = "requests_book_id_fkey"

func (p *postgresRepository) AddRequest(ctx context.Context, request entity.Request) (entity.Request, error) {
	const query = `
INSERT INTO requests (book_id, owner_id, user_id, request_date, receive_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	result := request

	err := executor(ctx, p.db).QueryRow(ctx, query,
		request.BookID, request.OwnerID, request.RequesterID, request.RequestDate, request.ReceiveDate).
		Scan(&result.ID)

	if code, constraint := pgErrorCode(err); code == ErrForeignKeyViolation {
		if constraint == constraintRequestsBook {
			return entity.Request{}, entity.ErrBookNotFound
		}
		return entity.Request{}, entity.ErrUserNotFound
	}

	if err != nil {
		return entity.Request{}, fmt.Errorf("insert request for book %d: %w", request.BookID, err)
	}

	return result, nil
}

// GetRequest locks the row for the rest of the surrounding transaction.
func (p *postgresRepository) GetRequest(ctx context.Context, requestID int64) (entity.Request, error) {
	const query = `
SELECT id, book_id, owner_id, user_id, request_date, receive_date
FROM requests
WHERE id = $1 FOR UPDATE
`
	var r entity.Request
	err := executor(ctx, p.db).QueryRow(ctx, query, requestID).
		Scan(&r.ID, &r.BookID, &r.OwnerID, &r.RequesterID, &r.RequestDate, &r.ReceiveDate)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Request{}, entity.ErrRequestNotFound
	}

	if err != nil {
		return entity.Request{}, fmt.Errorf("get request %d: %w", requestID, err)
	}

	return r, nil
}

func (p *postgresRepository) UpdateRequest(ctx context.Context, request entity.Request) error {
	const query = `
UPDATE requests SET receive_date = $1
WHERE id = $2
`
	tag, err := executor(ctx, p.db).Exec(ctx, query, request.ReceiveDate, request.ID)
	if err != nil {
		return fmt.Errorf("update request %d: %w", request.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRequestNotFound
	}

	return nil
}

func (p *postgresRepository) DeleteRequest(ctx context.Context, requestID int64) error {
	const query = `
DELETE FROM requests WHERE id = $1
`
	tag, err := executor(ctx, p.db).Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("delete request %d: %w", requestID, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRequestNotFound
	}

	return nil
}

// ListBookRequests returns one page of the book's requests in request order,
// each expanded with the book, the owner and the requester.
func (p *postgresRepository) ListBookRequests(
	ctx context.Context,
	bookID int64,
	params pagination.Params,
) (pagination.Page[entity.Request], error) {
	countQuery, countArgs, err := p.dialect.From("requests").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"book_id": bookID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return pagination.Page[entity.Request]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err = executor(ctx, p.db).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return pagination.Page[entity.Request]{}, fmt.Errorf("count requests of book %d: %w", bookID, err)
	}

	if total == 0 {
		return pagination.NewPage[entity.Request](nil, 0, params), nil
	}

	columns := []any{
		goqu.I("r.id"),
		goqu.I("r.book_id"),
		goqu.I("r.owner_id"),
		goqu.I("r.user_id"),
		goqu.I("r.request_date"),
		goqu.I("r.receive_date"),
	}
	columns = append(columns, userColumns("o", "ol")...)
	columns = append(columns, userColumns("u", "ul")...)

	query, args, err := p.dialect.From(goqu.T("requests").As("r")).
		Join(goqu.T("users").As("o"), goqu.On(goqu.I("o.id").Eq(goqu.I("r.owner_id")))).
		LeftJoin(goqu.T("locations").As("ol"), goqu.On(goqu.I("ol.id").Eq(goqu.I("o.location_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id")))).
		LeftJoin(goqu.T("locations").As("ul"), goqu.On(goqu.I("ul.id").Eq(goqu.I("u.location_id")))).
		Select(columns...).
		Where(goqu.I("r.book_id").Eq(bookID)).
		Order(goqu.I("r.request_date").Asc(), goqu.I("r.id").Asc()).
		Limit(uint(params.Limit())).
		Offset(uint(params.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return pagination.Page[entity.Request]{}, fmt.Errorf("build requests query: %w", err)
	}

	rows, err := executor(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return pagination.Page[entity.Request]{}, fmt.Errorf("query requests of book %d: %w", bookID, err)
	}

	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Request, error) {
		var (
			r         entity.Request
			owner     userRow
			requester userRow
		)
		targets := []any{&r.ID, &r.BookID, &r.OwnerID, &r.RequesterID, &r.RequestDate, &r.ReceiveDate}
		targets = append(targets, owner.targets()...)
		targets = append(targets, requester.targets()...)

		if err := row.Scan(targets...); err != nil {
			return entity.Request{}, err
		}

		r.Owner = owner.toEntity(r.OwnerID)
		r.Requester = requester.toEntity(r.RequesterID)
		return r, nil
	})
	if err != nil {
		return pagination.Page[entity.Request]{}, fmt.Errorf("scan requests of book %d: %w", bookID, err)
	}

	if len(requests) > 0 {
		book, err := p.GetBook(ctx, bookID)
		if err != nil {
			return pagination.Page[entity.Request]{}, err
		}
		if err = p.fillAuthorsAndGenres(ctx, []*entity.Book{&book}); err != nil {
			return pagination.Page[entity.Request]{}, err
		}
		for i := range requests {
			requests[i].Book = &book
		}
	}

	return pagination.NewPage(requests, total, params), nil
}
