package notification

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/project/bookcrossing/pkg/logger"
	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type OutboxRepository interface {
	SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error
}

// Gateway queues wish notifications in the outbox. Delivery happens later in
// the outbox relay, so a notice counts as sent once its row is stored.
type Gateway struct {
	logger           *zap.Logger
	outboxRepository OutboxRepository
}

func NewGateway(logger *zap.Logger, outboxRepository OutboxRepository) *Gateway {
	return &Gateway{
		logger:           logger,
		outboxRepository: outboxRepository,
	}
}

func (g *Gateway) NotifyWishAvailable(ctx context.Context, notification entity.WishAvailableNotification) error {
	serialized, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal wish notification: %w", err)
	}

	key := WishAvailableKey(notification)
	err = g.outboxRepository.SendMessage(ctx, key, repository.OutboxKindWishAvailable, serialized)
	if logger.CheckError(err, g.logger, "can not queue wish notification",
		zap.String("idempotency_key", key), zap.Error(err)) {
		return err
	}

	logger.MakeInfo(g.logger, "wish notification queued", zap.String("idempotency_key", key))
	return nil
}

// WishAvailableKey is unique per fan-out batch, book and recipient.
func WishAvailableKey(n entity.WishAvailableNotification) string {
	return fmt.Sprintf("%s_%s_%d_%d", repository.OutboxKindWishAvailable, n.BatchID, n.BookID, n.UserID)
}
