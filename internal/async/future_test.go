package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_ResolvesWithValue(t *testing.T) {
	f := Go(func() (int, error) { return 42, nil })

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGo_ResolvesWithError(t *testing.T) {
	boom := errors.New("boom")
	f := Go(func() (string, error) { return "", boom })

	_, err := f.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestThen_FiresOnceAfterResolution(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 7, nil
	})

	var calls atomic.Int32
	got := make(chan int, 1)
	f.Then(func(v int) {
		calls.Add(1)
		got <- v
	}, func(error) {
		t.Error("unexpected error callback")
	})

	close(release)
	select {
	case v := <-got:
		assert.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
	<-f.Done()
	assert.Equal(t, int32(1), calls.Load())
}

func TestThen_OnResolvedFiresImmediately(t *testing.T) {
	var got int
	Resolved(5).Then(func(v int) { got = v }, nil)
	assert.Equal(t, 5, got)

	var gotErr error
	Failed[int](errors.New("nope")).Then(nil, func(err error) { gotErr = err })
	assert.EqualError(t, gotErr, "nope")
}

func TestResolve_OnlyFirstWins(t *testing.T) {
	f := newFuture[int]()
	f.resolve(1, nil)
	f.resolve(2, errors.New("late"))

	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestWait_ContextCancelDoesNotResolve(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 3, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	v, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestWait_ReturnsAfterCallbacks(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 1, nil
	})

	var seen atomic.Bool
	f.Then(func(int) { seen.Store(true) }, nil)

	close(release)
	_, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, seen.Load())
}
