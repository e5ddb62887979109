package controller

import (
	"context"
	"time"

	"github.com/project/bookcrossing/api/lending"
	"github.com/project/bookcrossing/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var CheckWishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_check_wish_duration_ms",
	Help:    "Duration of CheckWish in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(CheckWishDuration)
}

func (i *implementation) CheckWish(ctx context.Context, req *lending.WishRequest) (*lending.CheckWishResponse, error) {
	start := time.Now()

	defer func() {
		CheckWishDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", req.BookID))

	userID, err := i.identity.CurrentUserID(ctx)
	if log.ErrorWish(i.logger, err, "Unknown caller", traceID, log.CheckWish, userID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	if err = req.Validate(); log.ErrorWish(i.logger, err, "Got invalid request", traceID, log.CheckWish, userID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	inWishList, err := i.wishlistUseCase.CheckIfBookInWishList(ctx, userID, req.BookID)
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.CheckWishResponse{InWishList: inWishList}, nil
}
