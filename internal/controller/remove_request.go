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

var RemoveRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_remove_request_duration_ms",
	Help:    "Duration of RemoveRequest in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RemoveRequestDuration)
}

func (i *implementation) RemoveRequest(ctx context.Context, req *lending.RemoveRequestRequest) (*lending.RequestResponse, error) {
	start := time.Now()

	defer func() {
		RemoveRequestDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if err := req.Validate(); log.ErrorRequest(i.logger, err, "Got invalid request", traceID, log.RemoveRequest, req.RequestID) {
		span.SetAttributes(attribute.Int64("request_id", req.RequestID))
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	snapshot, err := i.requestsUseCase.RemoveRequest(ctx, req.RequestID)
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.RequestResponse{Request: snapshot}, nil
}
