package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
	"github.com/stretchr/testify/require"
)

func Test_postgresRepository_AddWish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		affected   int64
		dbErr      error
		errRequire error
	}{
		{name: "inserted", affected: 1},
		{name: "already wished", affected: 0, errRequire: entity.ErrWishAlreadyExists},
		{
			name:       "book missing",
			dbErr:      &pgconn.PgError{Code: ErrForeignKeyViolation, ConstraintName: constraintWishesBook},
			errRequire: entity.ErrBookNotFound,
		},
		{
			name:       "user missing",
			dbErr:      &pgconn.PgError{Code: ErrForeignKeyViolation, ConstraintName: "wishes_user_id_fkey"},
			errRequire: entity.ErrUserNotFound,
		},
		{name: "db error", dbErr: errInternal, errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepository(t)
			expected := mock.ExpectExec(`INSERT INTO wishes`).WithArgs(int64(2), int64(7))
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))
			}

			err := repo.AddWish(context.Background(), entity.Wish{UserID: 2, BookID: 7})
			require.ErrorIs(t, err, tt.errRequire)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_DeleteWish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		affected   int64
		errRequire error
	}{
		{name: "deleted", affected: 1},
		{name: "not wished", affected: 0, errRequire: entity.ErrWishNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepository(t)
			mock.ExpectExec(`DELETE FROM wishes`).WithArgs(int64(2), int64(7)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			require.ErrorIs(t, repo.DeleteWish(context.Background(), 2, 7), tt.errRequire)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_WishExists(t *testing.T) {
	t.Parallel()

	for _, want := range []bool{true, false} {
		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(2), int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(want))

		got, err := repo.WishExists(context.Background(), 2, 7)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
	}

	mock, repo := newMockRepository(t)
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(2), int64(7)).WillReturnError(errInternal)

	_, err := repo.WishExists(context.Background(), 2, 7)
	require.ErrorIs(t, err, errInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_ListUserWishedBooks(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepository(t)
	params := pagination.Params{Page: 1, PageSize: 10}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "wishes" WHERE \("user_id" = \$1\)`).WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	english := "English"
	languageID := int64(1)
	bookColumns := []string{
		"id", "user_id", "name", "publisher", "available", "created_at", "l_id", "l_name",
		"h_first_name", "h_last_name", "h_email", "h_is_email_allowed",
		"hl_id", "hl_city", "hl_street", "hl_office_name", "hl_room_number",
	}
	mock.ExpectQuery(`FROM "wishes" AS "w" .*WHERE \("w"\."user_id" = \$1\) ORDER BY "w"\."created_at" ASC, "w"\."book_id" ASC LIMIT \$2$`).
		WithArgs(int64(2), intArg(10)).
		WillReturnRows(pgxmock.NewRows(bookColumns).
			AddRow(int64(7), int64(1), "Dune", "Chilton", false, testTime, &languageID, &english,
				"Ann", "Holder", "ann@example.com", true, nil, nil, nil, nil, nil).
			AddRow(int64(9), int64(4), "Solaris", "", true, testTime, nil, nil,
				"Carl", "Keeper", "carl@example.com", false, nil, nil, nil, nil, nil))

	mock.ExpectQuery(`FROM book_authors`).WithArgs([]int64{7, 9}).
		WillReturnRows(pgxmock.NewRows([]string{"book_id", "id", "first_name", "last_name"}).
			AddRow(int64(9), int64(5), "Stanislaw", "Lem"))
	mock.ExpectQuery(`FROM book_genres`).WithArgs([]int64{7, 9}).
		WillReturnRows(pgxmock.NewRows([]string{"book_id", "id", "name"}))

	page, err := repo.ListUserWishedBooks(context.Background(), 2, params)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalCount)
	require.Len(t, page.Items, 2)

	dune, solaris := page.Items[0], page.Items[1]
	require.Equal(t, &entity.Language{ID: 1, Name: "English"}, dune.Language)
	require.Equal(t, "Ann", dune.User.FirstName)
	require.EqualValues(t, 1, dune.User.ID)
	require.Nil(t, solaris.Language)
	require.Equal(t, []entity.Author{{ID: 5, FirstName: "Stanislaw", LastName: "Lem"}}, solaris.Authors)
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_postgresRepository_ListBookWishers(t *testing.T) {
	t.Parallel()

	t.Run("recipients", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`FROM "wishes" AS "w" .*WHERE \("w"\."book_id" = \$1\) ORDER BY "w"\."created_at" ASC, "w"\."user_id" ASC$`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{
				"user_id", "book_id", "created_at", "first_name", "last_name", "email", "is_email_allowed", "b_user_id", "name",
			}).
				AddRow(int64(2), int64(7), testTime, "Bob", "Reader", "bob@example.com", true, int64(1), "Dune").
				AddRow(int64(3), int64(7), testTime, "Eve", "Reader", "eve@example.com", false, int64(1), "Dune"))

		wishes, err := repo.ListBookWishers(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, wishes, 2)
		require.EqualValues(t, 2, wishes[0].User.ID)
		require.Equal(t, "bob@example.com", wishes[0].User.Email)
		require.False(t, wishes[1].User.IsEmailAllowed)
		require.Equal(t, "Dune", wishes[1].Book.Name)
		require.EqualValues(t, 7, wishes[1].Book.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`FROM "wishes"`).WithArgs(int64(7)).WillReturnError(errInternal)

		_, err := repo.ListBookWishers(context.Background(), 7)
		require.ErrorIs(t, err, errInternal)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
