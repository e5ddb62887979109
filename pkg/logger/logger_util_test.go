package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCheckError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	require.False(t, CheckError(nil, l, "no error"))
	require.True(t, CheckError(errors.New("boom"), l, "with error", zap.Int64("book_id", 7)))
	require.True(t, CheckError(errors.New("boom"), nil, "nil logger"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "with error", entries[0].Message)
	require.Equal(t, int64(7), entries[0].ContextMap()["book_id"])
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	require.Nil(t, Enabled(l, false, "usecase"))
	require.Nil(t, Enabled(nil, true, "usecase"))

	named := Enabled(l, true, "usecase")
	MakeInfo(named, "hello")
	MakeWarn(named, "careful")
	MakeInfo(nil, "dropped")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "usecase", entries[0].LoggerName)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
