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

var MakeRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_make_request_duration_ms",
	Help:    "Duration of MakeRequest in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(MakeRequestDuration)
}

func (i *implementation) MakeRequest(ctx context.Context, req *lending.MakeRequestRequest) (*lending.RequestResponse, error) {
	start := time.Now()

	defer func() {
		MakeRequestDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", req.BookID))

	requesterID, err := i.identity.CurrentUserID(ctx)
	if log.ErrorMakeRequest(i.logger, err, "Unknown caller", traceID, requesterID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	if err = req.Validate(); log.ErrorMakeRequest(i.logger, err, "Got invalid request", traceID, requesterID, req.BookID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	request, err := i.requestsUseCase.MakeRequest(ctx, requesterID, req.BookID)
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.RequestResponse{Request: request}, nil
}
