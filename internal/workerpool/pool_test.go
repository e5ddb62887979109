package workerpool

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		values  []int
	}{
		{name: "single worker", workers: 1, values: []int{1, 2, 3}},
		{name: "more workers than values", workers: 8, values: []int{4, 5}},
		{name: "zero workers falls back to one", workers: 0, values: []int{6}},
		{name: "empty input", workers: 3, values: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			out := New[int, int]().Transform(ctx, tt.workers, Generate(ctx, tt.values), func(_ context.Context, v int) int {
				return v * 10
			})

			got := make([]int, 0, len(tt.values))
			for v := range out {
				got = append(got, v)
			}
			slices.Sort(got)

			want := make([]int, 0, len(tt.values))
			for _, v := range tt.values {
				want = append(want, v*10)
			}
			require.Equal(t, want, got)
		})
	}
}

func TestTransformIsolatesFailures(t *testing.T) {
	t.Parallel()

	errFail := errors.New("fail")
	ctx := context.Background()
	out := New[int, error]().Transform(ctx, 2, Generate(ctx, []int{1, 2, 3, 4}), func(_ context.Context, v int) error {
		if v%2 == 0 {
			return errFail
		}
		return nil
	})

	failed, ok := 0, 0
	for err := range out {
		if err != nil {
			failed++
			continue
		}
		ok++
	}
	require.Equal(t, 2, failed)
	require.Equal(t, 2, ok)
}

func TestTransformBoundsWorkers(t *testing.T) {
	t.Parallel()

	const workers = 2
	var running, peak atomic.Int32

	ctx := context.Background()
	out := New[int, struct{}]().Transform(ctx, workers, Generate(ctx, make([]int, 10)), func(_ context.Context, _ int) struct{} {
		cur := running.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return struct{}{}
	})

	for range out {
	}
	require.LessOrEqual(t, peak.Load(), int32(workers))
}

func TestTransformStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := make(chan int)
	out := New[int, int]().Transform(ctx, 3, input, func(_ context.Context, v int) int {
		return v
	})

	select {
	case _, ok := <-out:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output channel was not closed after cancel")
	}
}
