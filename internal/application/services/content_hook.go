package services

import (
	"context"
	"sync"

	"github.com/QuillstackMedia/quillstack-go/internal/domain/entities/content"
	"github.com/QuillstackMedia/quillstack-go/internal/infrastructure/security"
)

// fetchFunc runs one fetch cycle to completion and returns its terminal state.
type fetchFunc func(ctx context.Context) content.Result

// SlugHook owns the fetch lifecycle for one slug-addressed content consumer.
// Each SetSlug call starts a fresh cycle tagged with a ULID; a completing
// fetch commits its result only while its tag is still current, so a late
// stale fetch can never overwrite the result of a newer cycle
// (last-request-wins by parameter identity, not completion order).
//
// A hook instance is owned by exactly one consumer but is safe for
// concurrent Snapshot/SetSlug calls.
type SlugHook struct {
	fetch func(ctx context.Context, slug string, extra map[string]string) content.Result

	mu      sync.Mutex
	slug    string
	cycle   string
	result  content.Result
	settled chan struct{}
}

func newSlugHook(fetch func(ctx context.Context, slug string, extra map[string]string) content.Result) *SlugHook {
	return &SlugHook{
		fetch:  fetch,
		result: content.Pending(),
	}
}

// SetSlug resets the hook to Pending for the given slug and spawns a fetch
// cycle. Calling it again, with the same or a different slug, invalidates
// any cycle still in flight.
func (h *SlugHook) SetSlug(ctx context.Context, slug string, extra map[string]string) {
	cycle := security.GenerateULID()

	h.mu.Lock()
	// Wake waiters parked on a cycle that will never commit.
	if h.settled != nil && !h.result.Settled() {
		close(h.settled)
	}
	h.slug = slug
	h.cycle = cycle
	h.result = content.Pending()
	h.settled = make(chan struct{})
	settled := h.settled
	h.mu.Unlock()

	go func() {
		result := h.fetch(ctx, slug, extra)

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.cycle != cycle {
			return // superseded by a newer cycle, discard
		}
		h.result = result
		close(settled)
	}()
}

// Snapshot returns the current result without blocking.
func (h *SlugHook) Snapshot() content.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

// Slug returns the identifying parameter of the current cycle.
func (h *SlugHook) Slug() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slug
}

// Wait blocks until the current cycle settles or the context is done, then
// returns the visible result. If the cycle is superseded while waiting, Wait
// re-parks on the new cycle.
func (h *SlugHook) Wait(ctx context.Context) content.Result {
	for {
		h.mu.Lock()
		result := h.result
		settled := h.settled
		h.mu.Unlock()

		if result.Settled() || settled == nil {
			return result
		}

		select {
		case <-ctx.Done():
			return h.Snapshot()
		case <-settled:
		}
	}
}

// ListHook owns the fetch lifecycle for a parameterless listing consumer.
// The listing is fetched once per activation; Fetch may be called again to
// start a fresh cycle, with the same stale-discard guarantee as SlugHook.
type ListHook struct {
	fetch fetchFunc

	mu      sync.Mutex
	cycle   string
	result  content.Result
	settled chan struct{}
}

func newListHook(fetch fetchFunc) *ListHook {
	return &ListHook{
		fetch:  fetch,
		result: content.Pending(),
	}
}

// Fetch resets the hook to Pending and spawns a fetch cycle.
func (h *ListHook) Fetch(ctx context.Context) {
	cycle := security.GenerateULID()

	h.mu.Lock()
	if h.settled != nil && !h.result.Settled() {
		close(h.settled)
	}
	h.cycle = cycle
	h.result = content.Pending()
	h.settled = make(chan struct{})
	settled := h.settled
	h.mu.Unlock()

	go func() {
		result := h.fetch(ctx)

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.cycle != cycle {
			return
		}
		h.result = result
		close(settled)
	}()
}

// Snapshot returns the current result without blocking.
func (h *ListHook) Snapshot() content.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

// Wait blocks until the current cycle settles or the context is done.
func (h *ListHook) Wait(ctx context.Context) content.Result {
	for {
		h.mu.Lock()
		result := h.result
		settled := h.settled
		h.mu.Unlock()

		if result.Settled() || settled == nil {
			return result
		}

		select {
		case <-ctx.Done():
			return h.Snapshot()
		case <-settled:
		}
	}
}
