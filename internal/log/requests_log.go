package log

import (
	"github.com/project/bookcrossing/pkg/logger"
	"github.com/project/bookcrossing/pkg/pagination"
	"go.uber.org/zap"
)

func InfoMakeRequest(l *zap.Logger, msg string, traceID string, requesterID, bookID int64, requestID ...int64) {
	if len(requestID) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.Int64("user_id", requesterID),
			zap.Int64("book_id", bookID),
			zap.String("action", MakeRequest))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("request_id", requestID[0]),
		zap.Int64("user_id", requesterID),
		zap.Int64("book_id", bookID),
		zap.String("action", MakeRequest))
}

func ErrorMakeRequest(l *zap.Logger, err error, msg string, traceID string, requesterID, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("user_id", requesterID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", MakeRequest))
}

func InfoGetRequests(l *zap.Logger, msg string, traceID string, bookID int64, params pagination.Params) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Int("page", params.Page),
		zap.Int("page_size", params.PageSize),
		zap.String("action", GetRequests))
}

func ErrorGetRequests(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetRequests))
}

// InfoRequest and ErrorRequest serve the single-request actions,
// ApproveRequest and RemoveRequest.
func InfoRequest(l *zap.Logger, msg string, traceID string, action Action, requestID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("request_id", requestID),
		zap.String("action", action))
}

func ErrorRequest(l *zap.Logger, err error, msg string, traceID string, action Action, requestID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("request_id", requestID),
		zap.Error(err),
		zap.String("action", action))
}
