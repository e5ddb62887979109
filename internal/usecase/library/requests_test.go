package library

import (
	"context"
	"math"
	"strconv"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/pkg/pagination"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMakeRequest(t *testing.T) {
	t.Parallel()

	const (
		holderID    = int64(1)
		requesterID = int64(2)
		bookID      = int64(7)
		requestID   = int64(11)
	)
	book := entity.Book{ID: bookID, UserID: holderID, Name: "Dune"}

	tests := []struct {
		name        string
		requesterID int64
		bookErr     error
		addErr      error
		outboxErr   error
		errRequire  error
		errKind     error
	}{
		{name: "valid make request", requesterID: requesterID},
		{name: "book does not exist", requesterID: requesterID, bookErr: entity.ErrBookNotFound,
			errRequire: entity.ErrBookNotFound, errKind: entity.ErrNotFound},
		{name: "holder requests own book", requesterID: holderID},
		{name: "insert fails", requesterID: requesterID, addErr: errInternal, errRequire: errInternal},
		{name: "outbox fails", requesterID: requesterID, outboxErr: errInternal, errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := initRequestsTest(t)

			if test.bookErr != nil {
				f.books.EXPECT().GetBook(gomock.Any(), bookID).Return(entity.Book{}, test.bookErr)
			} else {
				f.books.EXPECT().GetBook(gomock.Any(), bookID).Return(book, nil)
			}

			if test.bookErr == nil {
				f.requests.EXPECT().AddRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input entity.Request) (entity.Request, error) {
						if test.addErr != nil {
							return entity.Request{}, test.addErr
						}
						input.ID = requestID
						return input, nil
					})
			}

			if test.bookErr == nil && test.addErr == nil {
				f.outbox.EXPECT().SendMessage(gomock.Any(), "request_made_11", repository.OutboxKindRequestMade, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ repository.OutboxKind, message []byte) error {
						var event entity.RequestEvent
						require.NoError(t, json.Unmarshal(message, &event))
						require.Equal(t, requestID, event.RequestID)
						require.Equal(t, holderID, event.OwnerID)
						require.Equal(t, test.requesterID, event.RequesterID)
						return test.outboxErr
					})
			}

			request, err := f.uc.MakeRequest(f.ctx, test.requesterID, bookID)
			require.ErrorIs(t, err, test.errRequire)
			if test.errKind != nil {
				require.ErrorIs(t, err, test.errKind)
			}
			if err != nil {
				require.Empty(t, request)
				return
			}

			require.Equal(t, entity.Request{
				ID:          requestID,
				BookID:      bookID,
				OwnerID:     holderID,
				RequesterID: test.requesterID,
				RequestDate: testNow,
			}, request)
			require.False(t, request.IsApproved())
		})
	}
}

func TestGetRequests(t *testing.T) {
	t.Parallel()

	page := pagination.Page[entity.Request]{
		Items:      []entity.Request{{ID: 1, BookID: 7}, {ID: 2, BookID: 7}},
		TotalCount: 2,
		Page:       1,
		PageSize:   10,
	}

	tests := []struct {
		name       string
		params     pagination.Params
		wantParams pagination.Params
		errRequire error
	}{
		{name: "defaults applied", params: pagination.Params{}, wantParams: pagination.Params{Page: 1, PageSize: 10}},
		{name: "explicit page", params: pagination.Params{Page: 3, PageSize: 5}, wantParams: pagination.Params{Page: 3, PageSize: 5}},
		{name: "store failure", params: pagination.Params{}, wantParams: pagination.Params{Page: 1, PageSize: 10},
			errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := initRequestsTest(t)
			if test.errRequire != nil {
				f.requests.EXPECT().ListBookRequests(f.ctx, int64(7), test.wantParams).
					Return(pagination.Page[entity.Request]{}, test.errRequire)
			} else {
				f.requests.EXPECT().ListBookRequests(f.ctx, int64(7), test.wantParams).Return(page, nil)
			}

			got, err := f.uc.GetRequests(f.ctx, 7, test.params)
			require.ErrorIs(t, err, test.errRequire)
			if err != nil {
				return
			}
			require.Equal(t, page, got)
		})
	}

	for _, params := range []pagination.Params{
		{Page: pagination.MaxPage + 1, PageSize: 10},
		{Page: math.MaxInt64 / 10, PageSize: 100},
		{Page: -1, PageSize: 10},
	} {
		t.Run("rejects page "+strconv.Itoa(params.Page), func(t *testing.T) {
			t.Parallel()

			f := initRequestsTest(t)

			_, err := f.uc.GetRequests(f.ctx, 7, params)

			var fieldErrs validation.Errors
			require.ErrorAs(t, err, &fieldErrs)
			require.Contains(t, fieldErrs, "page")
		})
	}
}

func TestApproveRequest(t *testing.T) {
	t.Parallel()

	approvedAt := testNow.Add(-time.Hour)
	pending := entity.Request{ID: 5, BookID: 7, OwnerID: 1, RequesterID: 2, RequestDate: testNow.Add(-24 * time.Hour)}
	approved := pending
	approved.ReceiveDate = &approvedAt
	future := pending
	future.RequestDate = testNow.Add(time.Minute)

	tests := []struct {
		name        string
		stored      entity.Request
		getErr      error
		updateErr   error
		wantReceive time.Time
		wantUpdate  bool
		errRequire  error
	}{
		{name: "pending becomes approved", stored: pending, wantReceive: testNow, wantUpdate: true},
		{name: "already approved is unchanged", stored: approved, wantReceive: approvedAt},
		{name: "receive date never precedes request date", stored: future, wantReceive: future.RequestDate, wantUpdate: true},
		{name: "missing request", getErr: entity.ErrRequestNotFound, errRequire: entity.ErrNotFound},
		{name: "update fails", stored: pending, wantUpdate: true, updateErr: errInternal, errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := initRequestsTest(t)
			f.requests.EXPECT().GetRequest(gomock.Any(), int64(5)).Return(test.stored, test.getErr)

			if test.wantUpdate {
				f.requests.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r entity.Request) error {
						require.True(t, r.IsApproved())
						return test.updateErr
					})
				if test.updateErr == nil {
					f.outbox.EXPECT().SendMessage(gomock.Any(), "request_approved_5", repository.OutboxKindRequestApproved, gomock.Any()).
						Return(nil)
				}
			}

			request, err := f.uc.ApproveRequest(f.ctx, 5)
			require.ErrorIs(t, err, test.errRequire)
			if err != nil {
				require.Empty(t, request)
				return
			}

			require.True(t, request.IsApproved())
			require.Equal(t, test.wantReceive, *request.ReceiveDate)
			require.False(t, request.ReceiveDate.Before(request.RequestDate))
		})
	}
}

func TestRemoveRequest(t *testing.T) {
	t.Parallel()

	approvedAt := testNow
	stored := entity.Request{ID: 5, BookID: 7, OwnerID: 1, RequesterID: 2, RequestDate: testNow, ReceiveDate: &approvedAt}

	tests := []struct {
		name       string
		getErr     error
		deleteErr  error
		errRequire error
	}{
		{name: "approved request removed"},
		{name: "missing request", getErr: entity.ErrRequestNotFound, errRequire: entity.ErrRequestNotFound},
		{name: "delete fails", deleteErr: errInternal, errRequire: errInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			f := initRequestsTest(t)
			if test.getErr != nil {
				f.requests.EXPECT().GetRequest(gomock.Any(), int64(5)).Return(entity.Request{}, test.getErr)
			} else {
				f.requests.EXPECT().GetRequest(gomock.Any(), int64(5)).Return(stored, nil)
				f.requests.EXPECT().DeleteRequest(gomock.Any(), int64(5)).Return(test.deleteErr)
			}

			snapshot, err := f.uc.RemoveRequest(f.ctx, 5)
			require.ErrorIs(t, err, test.errRequire)
			if err != nil {
				require.Empty(t, snapshot)
				return
			}
			require.Equal(t, stored, snapshot)
		})
	}
}
