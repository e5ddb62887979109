package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
	"github.com/samber/lo"
)

const constraintWishesBook = "wishes_book_id_fkey"

// AddWish relies on the (user_id, book_id) primary key: a second insert of
// the same pair reports entity.ErrWishAlreadyExists.
func (p *postgresRepository) AddWish(ctx context.Context, wish entity.Wish) error {
	const query = `
INSERT INTO wishes (user_id, book_id)
VALUES ($1, $2)
ON CONFLICT (user_id, book_id) DO NOTHING
`
	tag, err := executor(ctx, p.db).Exec(ctx, query, wish.UserID, wish.BookID)

	if code, constraint := pgErrorCode(err); code == ErrForeignKeyViolation {
		if constraint == constraintWishesBook {
			return entity.ErrBookNotFound
		}
		return entity.ErrUserNotFound
	}

	if err != nil {
		return fmt.Errorf("insert wish (%d, %d): %w", wish.UserID, wish.BookID, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrWishAlreadyExists
	}

	return nil
}

func (p *postgresRepository) DeleteWish(ctx context.Context, userID, bookID int64) error {
	const query = `
DELETE FROM wishes WHERE user_id = $1 AND book_id = $2
`
	tag, err := executor(ctx, p.db).Exec(ctx, query, userID, bookID)
	if err != nil {
		return fmt.Errorf("delete wish (%d, %d): %w", userID, bookID, err)
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrWishNotFound
	}

	return nil
}

func (p *postgresRepository) WishExists(ctx context.Context, userID, bookID int64) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM wishes WHERE user_id = $1 AND book_id = $2)
`
	var exists bool
	if err := executor(ctx, p.db).QueryRow(ctx, query, userID, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check wish (%d, %d): %w", userID, bookID, err)
	}

	return exists, nil
}

// ListUserWishedBooks pages through the books wished by userID in wish order.
// Books come with language, authors, genres and holder with location.
func (p *postgresRepository) ListUserWishedBooks(
	ctx context.Context,
	userID int64,
	params pagination.Params,
) (pagination.Page[entity.Book], error) {
	countQuery, countArgs, err := p.dialect.From("wishes").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return pagination.Page[entity.Book]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err = executor(ctx, p.db).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return pagination.Page[entity.Book]{}, fmt.Errorf("count wishes of user %d: %w", userID, err)
	}

	if total == 0 {
		return pagination.NewPage[entity.Book](nil, 0, params), nil
	}

	columns := []any{
		goqu.I("b.id"),
		goqu.I("b.user_id"),
		goqu.I("b.name"),
		goqu.I("b.publisher"),
		goqu.I("b.available"),
		goqu.I("b.created_at"),
		goqu.I("l.id"),
		goqu.I("l.name"),
	}
	columns = append(columns, userColumns("h", "hl")...)

	query, args, err := p.dialect.From(goqu.T("wishes").As("w")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("w.book_id")))).
		LeftJoin(goqu.T("languages").As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("b.language_id")))).
		Join(goqu.T("users").As("h"), goqu.On(goqu.I("h.id").Eq(goqu.I("b.user_id")))).
		LeftJoin(goqu.T("locations").As("hl"), goqu.On(goqu.I("hl.id").Eq(goqu.I("h.location_id")))).
		Select(columns...).
		Where(goqu.I("w.user_id").Eq(userID)).
		Order(goqu.I("w.created_at").Asc(), goqu.I("w.book_id").Asc()).
		Limit(uint(params.Limit())).
		Offset(uint(params.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return pagination.Page[entity.Book]{}, fmt.Errorf("build wished books query: %w", err)
	}

	rows, err := executor(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return pagination.Page[entity.Book]{}, fmt.Errorf("query wished books of user %d: %w", userID, err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Book, error) {
		var (
			b            entity.Book
			languageID   *int64
			languageName *string
			holder       userRow
		)
		targets := []any{&b.ID, &b.UserID, &b.Name, &b.Publisher, &b.Available, &b.CreatedAt, &languageID, &languageName}
		targets = append(targets, holder.targets()...)

		if err := row.Scan(targets...); err != nil {
			return entity.Book{}, err
		}

		if languageID != nil {
			b.Language = &entity.Language{ID: *languageID, Name: lo.FromPtr(languageName)}
		}
		b.User = holder.toEntity(b.UserID)
		return b, nil
	})
	if err != nil {
		return pagination.Page[entity.Book]{}, fmt.Errorf("scan wished books of user %d: %w", userID, err)
	}

	refs := make([]*entity.Book, len(books))
	for i := range books {
		refs[i] = &books[i]
	}
	if err = p.fillAuthorsAndGenres(ctx, refs); err != nil {
		return pagination.Page[entity.Book]{}, err
	}

	return pagination.NewPage(books, total, params), nil
}

// ListBookWishers returns every wish on bookID expanded with the user
// and the book, in wish order.
func (p *postgresRepository) ListBookWishers(ctx context.Context, bookID int64) ([]entity.Wish, error) {
	query, args, err := p.dialect.From(goqu.T("wishes").As("w")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("w.user_id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("w.book_id")))).
		Select(
			goqu.I("w.user_id"),
			goqu.I("w.book_id"),
			goqu.I("w.created_at"),
			goqu.I("u.first_name"),
			goqu.I("u.last_name"),
			goqu.I("u.email"),
			goqu.I("u.is_email_allowed"),
			goqu.I("b.user_id"),
			goqu.I("b.name"),
		).
		Where(goqu.I("w.book_id").Eq(bookID)).
		Order(goqu.I("w.created_at").Asc(), goqu.I("w.user_id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build wishers query: %w", err)
	}

	rows, err := executor(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query wishers of book %d: %w", bookID, err)
	}

	wishes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Wish, error) {
		var (
			w    entity.Wish
			user entity.User
			book entity.Book
		)
		err := row.Scan(
			&w.UserID, &w.BookID, &w.CreatedAt,
			&user.FirstName, &user.LastName, &user.Email, &user.IsEmailAllowed,
			&book.UserID, &book.Name,
		)
		if err != nil {
			return entity.Wish{}, err
		}

		user.ID = w.UserID
		book.ID = w.BookID
		w.User = &user
		w.Book = &book
		return w, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan wishers of book %d: %w", bookID, err)
	}

	return wishes, nil
}
