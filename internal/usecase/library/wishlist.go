package library

import (
	"context"

	"github.com/google/uuid"
	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/log"
	"github.com/project/bookcrossing/internal/workerpool"
	"github.com/project/bookcrossing/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

var WishNotifications = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "bookcrossing_wish_notifications_total",
	Help: "Wish availability notifications by result",
}, []string{"result"})

func init() {
	prometheus.MustRegister(WishNotifications)
}

type notifyResult struct {
	userID int64
	err    error
}

func (w *wishlistImpl) AddWish(ctx context.Context, userID, bookID int64) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int64("book_id", bookID))
	log.InfoWish(w.logger, "Start of add wish", traceID, log.AddWish, userID, bookID)

	err := w.addWish(ctx, userID, bookID)
	if log.ErrorWish(w.logger, err, "Failed add wish", traceID, log.AddWish, userID, bookID) {
		span.RecordError(err)
		return err
	}

	log.InfoWish(w.logger, "Added the wish", traceID, log.AddWish, userID, bookID)
	return nil
}

// addWish checks ownership and inserts the wish inside one transaction, so a
// book deleted in between cannot leave a dangling wish.
func (w *wishlistImpl) addWish(ctx context.Context, userID, bookID int64) error {
	return w.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, err := w.booksRepository.GetBook(ctx, bookID)
		if err != nil {
			return err
		}

		if book.UserID == userID {
			return entity.ErrOwnBookWish
		}

		return w.wishesRepository.AddWish(ctx, entity.Wish{UserID: userID, BookID: bookID})
	})
}

func (w *wishlistImpl) RemoveWish(ctx context.Context, userID, bookID int64) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("user_id", userID), attribute.Int64("book_id", bookID))

	err := w.wishesRepository.DeleteWish(ctx, userID, bookID)
	if log.ErrorWish(w.logger, err, "Failed remove wish", traceID, log.RemoveWish, userID, bookID) {
		span.RecordError(err)
		return err
	}

	log.InfoWish(w.logger, "Removed the wish", traceID, log.RemoveWish, userID, bookID)
	return nil
}

func (w *wishlistImpl) CheckIfBookInWishList(ctx context.Context, userID, bookID int64) (bool, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	exists, err := w.wishesRepository.WishExists(ctx, userID, bookID)
	if log.ErrorWish(w.logger, err, "Failed check wish", traceID, log.CheckWish, userID, bookID) {
		span.RecordError(err)
		return false, err
	}

	return exists, nil
}

func (w *wishlistImpl) GetWishesOfCurrentUser(
	ctx context.Context,
	params pagination.Params,
) (pagination.Page[entity.Book], error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	userID, err := w.identity.CurrentUserID(ctx)
	if log.ErrorGetWishes(w.logger, err, "Unknown caller", traceID) {
		span.RecordError(err)
		return pagination.Page[entity.Book]{}, err
	}

	params = params.WithDefaults()
	if err = params.Validate(); log.ErrorGetWishes(w.logger, err, "Invalid page", traceID) {
		span.RecordError(err)
		return pagination.Page[entity.Book]{}, err
	}
	span.SetAttributes(attribute.Int64("user_id", userID))
	log.InfoGetWishes(w.logger, "Start of getting wishes", traceID, userID, params)

	page, err := w.wishesRepository.ListUserWishedBooks(ctx, userID, params)
	if log.ErrorGetWishes(w.logger, err, "Failed get wishes", traceID) {
		span.RecordError(err)
		return pagination.Page[entity.Book]{}, err
	}

	return page, nil
}

// NotifyAboutAvailableBook sends one notice per wisher who accepts email.
// Deliveries run on a bounded pool, each under its own timeout; a failed
// delivery is logged and counted and never stops the rest. Wishes stay in
// place. Only a failure to enumerate the wishers is returned.
func (w *wishlistImpl) NotifyAboutAvailableBook(ctx context.Context, bookID int64) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("book_id", bookID))

	wishes, err := w.wishesRepository.ListBookWishers(ctx, bookID)
	if log.ErrorNotifyAvailable(w.logger, err, "Failed list wishers", traceID, bookID) {
		span.RecordError(err)
		return err
	}

	recipients := lo.Filter(wishes, func(wish entity.Wish, _ int) bool {
		return wish.User != nil && wish.User.IsEmailAllowed
	})

	batchID := uuid.NewString()
	span.SetAttributes(attribute.String("batch_id", batchID))

	results := w.pool.Transform(ctx, w.cfg.Workers, workerpool.Generate(ctx, recipients),
		func(ctx context.Context, wish entity.Wish) notifyResult {
			if w.cfg.TimeoutMS > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, w.cfg.TimeoutMS)
				defer cancel()
			}

			return notifyResult{
				userID: wish.UserID,
				err:    w.notifier.NotifyWishAvailable(ctx, newWishAvailableNotification(batchID, wish)),
			}
		})

	sent, failed := 0, 0
	for res := range results {
		if log.ErrorNotifyRecipient(w.logger, res.err, "Failed notify wisher", traceID, bookID, res.userID, batchID) {
			failed++
			WishNotifications.WithLabelValues(resultFailed).Inc()
			continue
		}
		sent++
		WishNotifications.WithLabelValues(resultSent).Inc()
	}

	if skipped := len(recipients) - sent - failed; skipped > 0 {
		WishNotifications.WithLabelValues(resultSkipped).Add(float64(skipped))
	}

	log.InfoNotifyAvailable(w.logger, "Notified wishers", traceID, bookID, batchID, sent, failed)
	return nil
}

func newWishAvailableNotification(batchID string, wish entity.Wish) entity.WishAvailableNotification {
	n := entity.WishAvailableNotification{
		BatchID: batchID,
		UserID:  wish.UserID,
		BookID:  wish.BookID,
	}
	if wish.User != nil {
		n.RecipientName = wish.User.FullName()
		n.RecipientEmail = wish.User.Email
	}
	if wish.Book != nil {
		n.BookTitle = wish.Book.Name
	}
	return n
}
