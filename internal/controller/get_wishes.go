package controller

import (
	"context"
	"time"

	"github.com/project/bookcrossing/api/lending"
	"github.com/project/bookcrossing/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var GetWishesDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "bookcrossing_get_wishes_duration_ms",
	Help:    "Duration of GetWishes in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetWishesDuration)
}

// GetWishes resolves the caller inside the use case.
func (i *implementation) GetWishes(ctx context.Context, req *lending.GetWishesRequest) (*lending.GetWishesResponse, error) {
	start := time.Now()

	defer func() {
		GetWishesDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	span := trace.SpanFromContext(ctx)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	if err := req.Validate(); log.ErrorGetWishes(i.logger, err, "Got invalid request", traceID) {
		span.RecordError(err)
		return nil, i.convertErr(err)
	}

	page, err := i.wishlistUseCase.GetWishesOfCurrentUser(ctx, req.Params())
	if err != nil {
		return nil, i.convertErr(err)
	}

	return &lending.GetWishesResponse{Page: page}, nil
}
