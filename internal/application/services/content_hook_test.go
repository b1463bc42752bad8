package services

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugHookStartsPending(t *testing.T) {
	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		return content.Resolved(json.RawMessage(`{}`), nil)
	})

	assert.True(t, hook.Snapshot().IsPending())
	assert.Empty(t, hook.Slug())
}

func TestSlugHookResolvesThroughWait(t *testing.T) {
	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		return content.Resolved(json.RawMessage(`{"slug":"`+slug+`"}`), nil)
	})

	hook.SetSlug(context.Background(), "home", nil)
	result := hook.Wait(context.Background())

	require.True(t, result.IsResolved())
	assert.JSONEq(t, `{"slug":"home"}`, string(result.Content))
	assert.Equal(t, "home", hook.Slug())
}

func TestSlugHookSurfacesFetchError(t *testing.T) {
	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		return content.Errored("Cannot find Page with slug: " + slug)
	})

	hook.SetSlug(context.Background(), "missing", nil)
	result := hook.Wait(context.Background())

	require.True(t, result.IsErrored())
	assert.Equal(t, "Cannot find Page with slug: missing", result.Error)
}

// A fetch for a superseded slug must never overwrite the result committed by
// the newer cycle, even when it completes later.
func TestSlugHookDiscardsStaleCycle(t *testing.T) {
	release := map[string]chan struct{}{
		"first":  make(chan struct{}),
		"second": make(chan struct{}),
	}
	fetched := map[string]chan struct{}{
		"first":  make(chan struct{}),
		"second": make(chan struct{}),
	}

	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		<-release[slug]
		defer close(fetched[slug])
		return content.Resolved(json.RawMessage(`{"slug":"`+slug+`"}`), nil)
	})

	hook.SetSlug(context.Background(), "first", nil)
	hook.SetSlug(context.Background(), "second", nil)
	assert.True(t, hook.Snapshot().IsPending())

	close(release["second"])
	result := hook.Wait(context.Background())
	require.True(t, result.IsResolved())
	assert.JSONEq(t, `{"slug":"second"}`, string(result.Content))

	// Let the stale fetch complete after the newer cycle already committed.
	close(release["first"])
	<-fetched["first"]
	time.Sleep(20 * time.Millisecond)

	assert.JSONEq(t, `{"slug":"second"}`, string(hook.Snapshot().Content))
	assert.Equal(t, "second", hook.Slug())
}

// Wait parked on a cycle that gets superseded must re-park and return the
// newer cycle's result.
func TestSlugHookWaitFollowsNewestCycle(t *testing.T) {
	release := map[string]chan struct{}{
		"first":  make(chan struct{}),
		"second": make(chan struct{}),
	}

	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		<-release[slug]
		return content.Resolved(json.RawMessage(`{"slug":"`+slug+`"}`), nil)
	})

	hook.SetSlug(context.Background(), "first", nil)

	results := make(chan content.Result, 1)
	go func() {
		results <- hook.Wait(context.Background())
	}()

	hook.SetSlug(context.Background(), "second", nil)
	close(release["second"])
	close(release["first"])

	select {
	case result := <-results:
		require.True(t, result.IsResolved())
		assert.JSONEq(t, `{"slug":"second"}`, string(result.Content))
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after the newer cycle settled")
	}
}

func TestSlugHookWaitReturnsPendingOnContextDone(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	hook := newSlugHook(func(ctx context.Context, slug string, _ map[string]string) content.Result {
		<-block
		return content.Resolved(json.RawMessage(`{}`), nil)
	})

	hook.SetSlug(context.Background(), "slow", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	result := hook.Wait(ctx)
	assert.True(t, result.IsPending())
}

func TestListHookResolvesThroughWait(t *testing.T) {
	hook := newListHook(func(ctx context.Context) content.Result {
		return content.Resolved(json.RawMessage(`[{"node":{"slug":"a1"}}]`), nil)
	})

	assert.True(t, hook.Snapshot().IsPending())

	hook.Fetch(context.Background())
	result := hook.Wait(context.Background())

	require.True(t, result.IsResolved())
	assert.JSONEq(t, `[{"node":{"slug":"a1"}}]`, string(result.Content))
}

func TestListHookDiscardsStaleCycle(t *testing.T) {
	firstStarted := make(chan struct{})
	gateFirst := make(chan struct{})
	gateSecond := make(chan struct{})
	fetched := make(chan struct{}, 2)

	var calls int32
	hook := newListHook(func(ctx context.Context) content.Result {
		defer func() { fetched <- struct{}{} }()
		if atomic.AddInt32(&calls, 1) == 1 {
			close(firstStarted)
			<-gateFirst
			return content.Resolved(json.RawMessage(`[{"node":{"slug":"stale"}}]`), nil)
		}
		<-gateSecond
		return content.Resolved(json.RawMessage(`[{"node":{"slug":"fresh"}}]`), nil)
	})

	hook.Fetch(context.Background())
	<-firstStarted // the first cycle is in flight before it gets superseded
	hook.Fetch(context.Background())

	close(gateSecond)
	result := hook.Wait(context.Background())
	require.True(t, result.IsResolved())
	assert.JSONEq(t, `[{"node":{"slug":"fresh"}}]`, string(result.Content))

	close(gateFirst)
	<-fetched
	<-fetched
	time.Sleep(20 * time.Millisecond)

	assert.JSONEq(t, `[{"node":{"slug":"fresh"}}]`, string(hook.Snapshot().Content))
}
