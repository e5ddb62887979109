package log

import (
	"github.com/project/bookcrossing/pkg/logger"
	"github.com/project/bookcrossing/pkg/pagination"
	"go.uber.org/zap"
)

func InfoWish(l *zap.Logger, msg string, traceID string, action Action, userID, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.String("action", action))
}

func ErrorWish(l *zap.Logger, err error, msg string, traceID string, action Action, userID, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", action))
}

func InfoGetWishes(l *zap.Logger, msg string, traceID string, userID int64, params pagination.Params) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", userID),
		zap.Int("page", params.Page),
		zap.Int("page_size", params.PageSize),
		zap.String("action", GetWishes))
}

func ErrorGetWishes(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", GetWishes))
}

func InfoNotifyAvailable(l *zap.Logger, msg string, traceID string, bookID int64, batchID string, sent, failed int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("batch_id", batchID),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
		zap.String("action", NotifyAvailable))
}

func ErrorNotifyAvailable(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", NotifyAvailable))
}

// ErrorNotifyRecipient logs a single failed delivery of a fan-out batch.
func ErrorNotifyRecipient(l *zap.Logger, err error, msg string, traceID string, bookID, userID int64, batchID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Int64("user_id", userID),
		zap.String("batch_id", batchID),
		zap.Error(err),
		zap.String("action", NotifyAvailable))
}
