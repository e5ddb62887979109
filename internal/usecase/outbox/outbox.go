package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/project/bookcrossing/config"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

//go:generate mockgen -source=outbox.go -destination=mocks/outbox_mock.go -package=mocks

type (
	GlobalHandler = func(kind repository.OutboxKind) (KindHandler, error)
	KindHandler   = func(ctx context.Context, data []byte) error

	Repository interface {
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	// Outbox relays stored messages to their kind handlers until ctx is done.
	Outbox interface {
		Start(ctx context.Context, workers, batchSize int, waitTime, inProgressTTL time.Duration) *sync.WaitGroup
	}
)

const (
	resultDelivered = "delivered"
	resultFailed    = "failed"
)

var Deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "bookcrossing_outbox_deliveries_total",
	Help: "Outbox messages handed to kind handlers, by kind and result",
}, []string{"kind", "result"})

func init() {
	prometheus.MustRegister(Deliveries)
}

var _ Outbox = (*outboxImpl)(nil)

type outboxImpl struct {
	logger           *zap.Logger
	outboxRepository Repository
	globalHandler    GlobalHandler
	cfg              *config.Config
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	outboxRepository Repository,
	globalHandler GlobalHandler,
	cfg *config.Config,
	transactor Transactor,
) *outboxImpl {
	return &outboxImpl{
		logger:           logger,
		outboxRepository: outboxRepository,
		globalHandler:    globalHandler,
		cfg:              cfg,
		transactor:       transactor,
	}
}

// Start launches the workers and returns a group that is released once all
// of them have observed ctx cancellation.
func (o *outboxImpl) Start(
	ctx context.Context,
	workers int,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) *sync.WaitGroup {
	wg := new(sync.WaitGroup)

	for workerID := 1; workerID <= workers; workerID++ {
		wg.Add(1)
		go o.worker(ctx, wg, batchSize, waitTime, inProgressTTL)
	}

	return wg
}

func (o *outboxImpl) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(waitTime)
			select {
			case <-ctx.Done():
				return
			default:
				if !o.cfg.Outbox.Enabled {
					continue
				}

				err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
					return o.relayBatch(ctx, batchSize, inProgressTTL)
				})
				logger.CheckError(err, o.logger, "worker stage error", zap.Error(err))
			}
		}
	}
}

// relayBatch claims one batch and hands every message to its kind handler.
// Failed messages go back to CREATED; the repository abandons them after
// the configured number of attempts.
func (o *outboxImpl) relayBatch(ctx context.Context, batchSize int, inProgressTTL time.Duration) error {
	messages, err := o.outboxRepository.GetMessages(ctx, batchSize, inProgressTTL)
	if logger.CheckError(err, o.logger, "can not fetch messages from outbox", zap.Error(err)) {
		return err
	}
	logger.MakeInfo(o.logger, "messages fetched", zap.Int("size", len(messages)))

	successKeys := make([]string, 0, len(messages))
	failKeys := make([]string, 0, len(messages))
	for _, message := range messages {
		key := message.IdempotencyKey
		kind := message.Kind.String()

		kindHandler, taskErr := o.globalHandler(message.Kind)
		if logger.CheckError(taskErr, o.logger, "unexpected kind",
			zap.String("idempotency_key", key), zap.Error(taskErr)) {
			failKeys = append(failKeys, key)
			Deliveries.WithLabelValues(kind, resultFailed).Inc()
			continue
		}

		taskErr = kindHandler(ctx, message.RawData)
		if logger.CheckError(taskErr, o.logger, "kind error",
			zap.String("idempotency_key", key), zap.String("kind", kind), zap.Error(taskErr)) {
			failKeys = append(failKeys, key)
			Deliveries.WithLabelValues(kind, resultFailed).Inc()
			continue
		}

		successKeys = append(successKeys, key)
		Deliveries.WithLabelValues(kind, resultDelivered).Inc()
	}

	err = o.outboxRepository.MarkAs(ctx, successKeys, repository.Success)
	if logger.CheckError(err, o.logger, "Mark as 'Success' outbox error", zap.Error(err)) {
		return err
	}

	err = o.outboxRepository.MarkAs(ctx, failKeys, repository.Created)
	if logger.CheckError(err, o.logger, "Mark as 'Created' for fail task outbox error", zap.Error(err)) {
		return err
	}

	return nil
}
