package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/pkg/pagination"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_postgresRepository_AddRequest(t *testing.T) {
	t.Parallel()

	input := entity.Request{
		BookID:      7,
		OwnerID:     1,
		RequesterID: 2,
		RequestDate: testTime,
	}

	tests := []struct {
		name       string
		dbErr      error
		errRequire error
	}{
		{name: "inserted", dbErr: nil, errRequire: nil},
		{
			name:       "book disappeared",
			dbErr:      &pgconn.PgError{Code: ErrForeignKeyViolation, ConstraintName: constraintRequestsBook},
			errRequire: entity.ErrBookNotFound,
		},
		{
			name:       "unknown requester",
			dbErr:      &pgconn.PgError{Code: ErrForeignKeyViolation, ConstraintName: "requests_user_id_fkey"},
			errRequire: entity.ErrUserNotFound,
		},
		{name: "db error", dbErr: errInternal, errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepository(t)
			expected := mock.ExpectQuery(`INSERT INTO requests`).
				WithArgs(input.BookID, input.OwnerID, input.RequesterID, input.RequestDate, input.ReceiveDate)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
			}

			got, err := repo.AddRequest(context.Background(), input)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				require.Empty(t, got)
				return
			}

			want := input
			want.ID = 11
			require.Equal(t, want, got)
		})
	}
}

func Test_postgresRepository_GetRequest(t *testing.T) {
	t.Parallel()

	approvedAt := testTime.Add(48 * time.Hour)

	tests := []struct {
		name       string
		receive    any
		errL       errLayer
		errRequire error
	}{
		{name: "pending", receive: nil, errL: null},
		{name: "approved", receive: &approvedAt, errL: null},
		{name: "missing", errL: noRows, errRequire: entity.ErrRequestNotFound},
		{name: "in transaction", receive: nil, errL: null},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepository(t)
			ctx := context.Background()
			if tt.name == "in transaction" {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectQuery(`FROM requests`).WithArgs(int64(5))
			if tt.errL == noRows {
				expected.WillReturnError(pgx.ErrNoRows)
			} else {
				expected.WillReturnRows(pgxmock.NewRows([]string{"id", "book_id", "owner_id", "user_id", "request_date", "receive_date"}).
					AddRow(int64(5), int64(7), int64(1), int64(2), testTime, tt.receive))
			}

			r, err := repo.GetRequest(ctx, 5)
			require.ErrorIs(t, err, tt.errRequire)
			if err != nil {
				return
			}
			require.EqualValues(t, 5, r.ID)
			require.Equal(t, tt.receive != nil, r.IsApproved())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_UpdateAndDeleteRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		affected   int64
		dbErr      error
		errRequire error
	}{
		{name: "affected", affected: 1},
		{name: "missing", affected: 0, errRequire: entity.ErrRequestNotFound},
		{name: "db error", dbErr: errInternal, errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, repo := newMockRepository(t)
			ctx := context.Background()
			approved := entity.Request{ID: 5, ReceiveDate: &testTime}

			update := mock.ExpectExec(`UPDATE requests SET receive_date`).WithArgs(approved.ReceiveDate, approved.ID)
			remove := mock.ExpectExec(`DELETE FROM requests`).WithArgs(approved.ID)
			if tt.dbErr != nil {
				update.WillReturnError(tt.dbErr)
				remove.WillReturnError(tt.dbErr)
			} else {
				update.WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
				remove.WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))
			}

			require.ErrorIs(t, repo.UpdateRequest(ctx, approved), tt.errRequire)
			require.ErrorIs(t, repo.DeleteRequest(ctx, approved.ID), tt.errRequire)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_postgresRepository_ListBookRequests(t *testing.T) {
	t.Parallel()

	params := pagination.Params{Page: 1, PageSize: 10}
	requestColumns := []string{
		"id", "book_id", "owner_id", "user_id", "request_date", "receive_date",
		"o_first_name", "o_last_name", "o_email", "o_is_email_allowed",
		"ol_id", "ol_city", "ol_street", "ol_office_name", "ol_room_number",
		"u_first_name", "u_last_name", "u_email", "u_is_email_allowed",
		"ul_id", "ul_city", "ul_street", "ul_office_name", "ul_room_number",
	}

	t.Run("expanded page", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "requests" WHERE \("book_id" = \$1\)`).WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

		city, street, office, room := "Lviv", "Main 1", "HQ", "101"
		mock.ExpectQuery(`FROM "requests" AS "r" .*WHERE \("r"\."book_id" = \$1\) ORDER BY "r"\."request_date" ASC, "r"\."id" ASC LIMIT \$2$`).
			WithArgs(int64(7), intArg(10)).
			WillReturnRows(pgxmock.NewRows(requestColumns).
				AddRow(int64(5), int64(7), int64(1), int64(2), testTime, nil,
					"Ann", "Holder", "ann@example.com", true,
					lo.ToPtr(int64(3)), &city, &street, &office, &room,
					"Bob", "Reader", "bob@example.com", false,
					nil, nil, nil, nil, nil))

		mock.ExpectQuery(`SELECT id, user_id, name`).WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(bookColumns).AddRow(int64(7), int64(1), "Dune", "", true, testTime))
		mock.ExpectQuery(`FROM book_authors`).WithArgs([]int64{7}).
			WillReturnRows(pgxmock.NewRows([]string{"book_id", "id", "first_name", "last_name"}).
				AddRow(int64(7), int64(1), "Frank", "Herbert"))
		mock.ExpectQuery(`FROM book_genres`).WithArgs([]int64{7}).
			WillReturnRows(pgxmock.NewRows([]string{"book_id", "id", "name"}))

		page, err := repo.ListBookRequests(context.Background(), 7, params)
		require.NoError(t, err)
		require.EqualValues(t, 1, page.TotalCount)
		require.Len(t, page.Items, 1)

		r := page.Items[0]
		require.False(t, r.IsApproved())
		require.Equal(t, "Dune", r.Book.Name)
		require.Len(t, r.Book.Authors, 1)
		require.Equal(t, "Ann", r.Owner.FirstName)
		require.EqualValues(t, 1, r.Owner.ID)
		require.Equal(t, "Lviv", r.Owner.Location.City)
		require.EqualValues(t, 2, r.Requester.ID)
		require.Nil(t, r.Requester.Location)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("later page binds offset", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`COUNT\(\*\)`).WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(25)))
		mock.ExpectQuery(`ORDER BY "r"\."request_date" ASC, "r"\."id" ASC LIMIT \$2 OFFSET \$3$`).
			WithArgs(int64(7), intArg(10), intArg(20)).
			WillReturnRows(pgxmock.NewRows(requestColumns))

		page, err := repo.ListBookRequests(context.Background(), 7, pagination.Params{Page: 3, PageSize: 10})
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.EqualValues(t, 25, page.TotalCount)
		require.Equal(t, 3, page.Page)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no requests", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`COUNT\(\*\)`).WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		page, err := repo.ListBookRequests(context.Background(), 7, params)
		require.NoError(t, err)
		require.Empty(t, page.Items)
		require.NotNil(t, page.Items)
		require.EqualValues(t, 0, page.TotalCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepository(t)
		mock.ExpectQuery(`COUNT\(\*\)`).WithArgs(int64(7)).WillReturnError(errInternal)

		_, err := repo.ListBookRequests(context.Background(), 7, params)
		require.ErrorIs(t, err, errInternal)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
