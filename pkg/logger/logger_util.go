package logger

import "go.uber.org/zap"

// CheckError logs err with the given fields when both err and logger are set
// and reports whether err was non-nil.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func MakeWarn(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

// Enabled returns a named child of logger when on is set and nil otherwise.
// A nil logger silences every helper in this package.
func Enabled(logger *zap.Logger, on bool, name string) *zap.Logger {
	if !on || logger == nil {
		return nil
	}
	return logger.Named(name)
}
