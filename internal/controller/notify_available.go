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

var NotifyAvailableDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_notify_available_duration_ms",
	Help:    "Duration of NotifyAvailable in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(NotifyAvailableDuration)
}

func (i *implementation) NotifyAvailable(ctx context.Context, req *lending.NotifyAvailableRequest) (*lending.NotifyAvailableResponse, error) {
	start := time.Now()

	defer func() {
		NotifyAvailableDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if err := req.Validate(); log.ErrorNotifyAvailable(i.logger, err, "Got invalid request", traceID, req.BookID) {
		span.SetAttributes(attribute.Int64("book_id", req.BookID))
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	if err := i.wishlistUseCase.NotifyAboutAvailableBook(ctx, req.BookID); err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.NotifyAvailableResponse{}, nil
}
