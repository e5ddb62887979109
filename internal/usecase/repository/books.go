package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/samber/lo"
)

// GetBook reads the book row and locks it against a concurrent holder change
// when called inside a transaction.
func (p *postgresRepository) GetBook(ctx context.Context, bookID int64) (entity.Book, error) {
	const query = `
SELECT id, user_id, name, publisher, available, created_at
FROM books
WHERE id = $1 FOR SHARE
`
	var book entity.Book
	err := executor(ctx, p.db).QueryRow(ctx, query, bookID).
		Scan(&book.ID, &book.UserID, &book.Name, &book.Publisher, &book.Available, &book.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, fmt.Errorf("get book %d: %w", bookID, err)
	}

	return book, nil
}

type bookAuthor struct {
	BookID int64
	entity.Author
}

type bookGenre struct {
	BookID int64
	entity.Genre
}

// fillAuthorsAndGenres expands every book in books in place.
func (p *postgresRepository) fillAuthorsAndGenres(ctx context.Context, books []*entity.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := lo.Uniq(lo.Map(books, func(b *entity.Book, _ int) int64 {
		return b.ID
	}))

	const queryAuthors = `
SELECT ba.book_id, a.id, a.first_name, a.last_name
FROM book_authors ba
JOIN authors a ON a.id = ba.author_id
WHERE ba.book_id = ANY($1)
ORDER BY a.id
`
	rows, err := executor(ctx, p.db).Query(ctx, queryAuthors, ids)
	if err != nil {
		return fmt.Errorf("query book authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (bookAuthor, error) {
		var a bookAuthor
		err := row.Scan(&a.BookID, &a.ID, &a.FirstName, &a.LastName)
		return a, err
	})
	if err != nil {
		return fmt.Errorf("scan book authors: %w", err)
	}

	const queryGenres = `
SELECT bg.book_id, g.id, g.name
FROM book_genres bg
JOIN genres g ON g.id = bg.genre_id
WHERE bg.book_id = ANY($1)
ORDER BY g.id
`
	rows, err = executor(ctx, p.db).Query(ctx, queryGenres, ids)
	if err != nil {
		return fmt.Errorf("query book genres: %w", err)
	}
	genres, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (bookGenre, error) {
		var g bookGenre
		err := row.Scan(&g.BookID, &g.ID, &g.Name)
		return g, err
	})
	if err != nil {
		return fmt.Errorf("scan book genres: %w", err)
	}

	authorsByBook := lo.GroupBy(authors, func(a bookAuthor) int64 { return a.BookID })
	genresByBook := lo.GroupBy(genres, func(g bookGenre) int64 { return g.BookID })

	for _, b := range books {
		b.Authors = lo.Map(authorsByBook[b.ID], func(a bookAuthor, _ int) entity.Author { return a.Author })
		b.Genres = lo.Map(genresByBook[b.ID], func(g bookGenre, _ int) entity.Genre { return g.Genre })
	}
	return nil
}
