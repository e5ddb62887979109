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

var ApproveRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_approve_request_duration_ms",
	Help:    "Duration of ApproveRequest in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ApproveRequestDuration)
}

func (i *implementation) ApproveRequest(ctx context.Context, req *lending.ApproveRequestRequest) (*lending.RequestResponse, error) {
	start := time.Now()

	defer func() {
		ApproveRequestDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if err := req.Validate(); log.ErrorRequest(i.logger, err, "Got invalid request", traceID, log.ApproveRequest, req.RequestID) {
		span.SetAttributes(attribute.Int64("request_id", req.RequestID))
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	request, err := i.requestsUseCase.ApproveRequest(ctx, req.RequestID)
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.RequestResponse{Request: request}, nil
}
