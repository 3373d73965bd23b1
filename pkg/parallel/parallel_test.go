package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-arcade/aoc2021/pkg/safe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(ctx context.Context) (int, error)
		opts    []RunOption
		want    int
		wantErr error
	}{
		{
			name: "value",
			fn: func(ctx context.Context) (int, error) {
				return 1, nil
			},
			want: 1,
		},
		{
			name: "error",
			fn: func(ctx context.Context) (int, error) {
				return 0, context.Canceled
			},
			wantErr: context.Canceled,
		},
		{
			name: "timeout",
			fn: func(ctx context.Context) (int, error) {
				<-ctx.Done()
				return 0, ctx.Err()
			},
			opts:    []RunOption{WithTimeout(50 * time.Millisecond)},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			future := Go(context.Background(), tt.fn, tt.opts...)
			data, err := future.Get()
			assert.Equal(t, tt.want, data)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, future.IsDone() || tt.wantErr != nil)
		})
	}
}

func TestGo_Panic(t *testing.T) {
	future := Go(context.Background(), func(ctx context.Context) (string, error) {
		panic("boom")
	})
	_, err := future.Get()
	var pe *safe.PanicError
	assert.True(t, errors.As(err, &pe))
}

func TestGo_IsDoneKeepsResult(t *testing.T) {
	future := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.Eventually(t, future.IsDone, time.Second, time.Millisecond)
	v, err := future.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGroup_FirstErrorCancels(t *testing.T) {
	g := GoGroup(context.Background())
	want := errors.New("first")

	g.Go(func(ctx context.Context) error {
		return want
	})
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, g.Wait(), want)
}

func TestGroup_Limit(t *testing.T) {
	g := GoGroup(context.Background(), WithLimit(2))

	var running, peak atomic.Int32
	for i := 0; i < 10; i++ {
		g.Go(func(ctx context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Positive(t, peak.Load())
}

func TestGroup_PanicBecomesError(t *testing.T) {
	g := GoGroup(context.Background(), WithLimit(1))
	g.Go(func(ctx context.Context) error {
		panic("worker blew up")
	})
	err := g.Wait()
	var pe *safe.PanicError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "worker blew up", pe.Value)
}
