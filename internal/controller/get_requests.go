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

var GetRequestsDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_get_requests_duration_ms",
	Help:    "Duration of GetRequests in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetRequestsDuration)
}

func (i *implementation) GetRequests(ctx context.Context, req *lending.GetRequestsRequest) (*lending.GetRequestsResponse, error) {
	start := time.Now()

	defer func() {
		GetRequestsDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if err := req.Validate(); log.ErrorGetRequests(i.logger, err, "Got invalid request", traceID, req.BookID) {
		span.SetAttributes(attribute.Int64("book_id", req.BookID))
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	page, err := i.requestsUseCase.GetRequests(ctx, req.BookID, req.Params())
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.GetRequestsResponse{Page: page}, nil
}
