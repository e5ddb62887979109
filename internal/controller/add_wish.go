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

var AddWishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_add_wish_duration_ms",
	Help:    "Duration of AddWish in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddWishDuration)
}

func (i *implementation) AddWish(ctx context.Context, req *lending.WishRequest) (*lending.WishResponse, error) {
	start := time.Now()

	defer func() {
		AddWishDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", req.BookID))

	userID, err := i.identity.CurrentUserID(ctx)
	if log.ErrorWish(i.logger, err, "Unknown caller", traceID, log.AddWish, userID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	if err = req.Validate(); log.ErrorWish(i.logger, err, "Got invalid request", traceID, log.AddWish, userID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	if err = i.wishlistUseCase.AddWish(ctx, userID, req.BookID); err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.WishResponse{}, nil
}
