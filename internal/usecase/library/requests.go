package library

import (
	"context"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/log"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/pkg/pagination"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MakeRequest records a pending request against the book's current holder.
// Duplicate pending requests and requests by the holder are accepted.
func (r *requestsImpl) MakeRequest(ctx context.Context, requesterID, bookID int64) (entity.Request, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoMakeRequest(r.logger, "Start of make request", traceID, requesterID, bookID)

	var request entity.Request
	err := r.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, txErr := r.booksRepository.GetBook(ctx, bookID)
		if txErr != nil {
			return txErr
		}

		request, txErr = r.requestsRepository.AddRequest(ctx, entity.Request{
			BookID:      bookID,
			OwnerID:     book.UserID,
			RequesterID: requesterID,
			RequestDate: r.now(),
		})
		if txErr != nil {
			return txErr
		}

		return r.enqueue(ctx, repository.OutboxKindRequestMade, request)
	})

	if log.ErrorMakeRequest(r.logger, err, "Failed make request", traceID, requesterID, bookID) {
		span.SetAttributes(attribute.Int64("book_id", bookID))
		span.RecordError(err)
		return entity.Request{}, err
	}

	span.SetAttributes(attribute.Int64("request_id", request.ID))
	log.InfoMakeRequest(r.logger, "Made the request", traceID, requesterID, bookID, request.ID)
	return request, nil
}

func (r *requestsImpl) GetRequests(
	ctx context.Context,
	bookID int64,
	params pagination.Params,
) (pagination.Page[entity.Request], error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", bookID))

	params = params.WithDefaults()
	if err := params.Validate(); log.ErrorGetRequests(r.logger, err, "Invalid page", traceID, bookID) {
		span.RecordError(err)
		return pagination.Page[entity.Request]{}, err
	}
	log.InfoGetRequests(r.logger, "Start of getting requests", traceID, bookID, params)

	page, err := r.requestsRepository.ListBookRequests(ctx, bookID, params)
	if log.ErrorGetRequests(r.logger, err, "Failed get requests", traceID, bookID) {
		span.RecordError(err)
		return pagination.Page[entity.Request]{}, err
	}

	log.InfoGetRequests(r.logger, "Got the requests", traceID, bookID, params)
	return page, nil
}

// ApproveRequest stamps ReceiveDate once. An approved request is returned
// as stored and no second event is emitted.
func (r *requestsImpl) ApproveRequest(ctx context.Context, requestID int64) (entity.Request, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("request_id", requestID))
	log.InfoRequest(r.logger, "Start of approve request", traceID, log.ApproveRequest, requestID)

	var request entity.Request
	err := r.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, txErr := r.requestsRepository.GetRequest(ctx, requestID)
		if txErr != nil {
			return txErr
		}

		if current.IsApproved() {
			request = current
			return nil
		}

		receiveDate := r.now()
		if receiveDate.Before(current.RequestDate) {
			receiveDate = current.RequestDate
		}
		current.ReceiveDate = &receiveDate

		if txErr = r.requestsRepository.UpdateRequest(ctx, current); txErr != nil {
			return txErr
		}

		if txErr = r.enqueue(ctx, repository.OutboxKindRequestApproved, current); txErr != nil {
			return txErr
		}

		request = current
		return nil
	})

	if log.ErrorRequest(r.logger, err, "Failed approve request", traceID, log.ApproveRequest, requestID) {
		span.RecordError(err)
		return entity.Request{}, err
	}

	log.InfoRequest(r.logger, "Approved the request", traceID, log.ApproveRequest, requestID)
	return request, nil
}

// RemoveRequest deletes the request in any state and returns what was stored.
func (r *requestsImpl) RemoveRequest(ctx context.Context, requestID int64) (entity.Request, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("request_id", requestID))
	log.InfoRequest(r.logger, "Start of remove request", traceID, log.RemoveRequest, requestID)

	var snapshot entity.Request
	err := r.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		snapshot, txErr = r.requestsRepository.GetRequest(ctx, requestID)
		if txErr != nil {
			return txErr
		}

		return r.requestsRepository.DeleteRequest(ctx, requestID)
	})

	if log.ErrorRequest(r.logger, err, "Failed remove request", traceID, log.RemoveRequest, requestID) {
		span.RecordError(err)
		return entity.Request{}, err
	}

	log.InfoRequest(r.logger, "Removed the request", traceID, log.RemoveRequest, requestID)
	return snapshot, nil
}

func (r *requestsImpl) enqueue(ctx context.Context, kind repository.OutboxKind, request entity.Request) error {
	serialized, err := json.Marshal(entity.NewRequestEvent(request, r.now()))
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", kind, err)
	}

	idempotencyKey := kind.String() + "_" + strconv.FormatInt(request.ID, 10)
	return r.outboxRepository.SendMessage(ctx, idempotencyKey, kind, serialized)
}
