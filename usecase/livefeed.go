package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"courtsync/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// Feed mirrors one collection: it holds the latest snapshot, refreshes on
// change-stream events and fans snapshots out to subscribers. When change
// streams are unavailable (standalone mongod) it degrades to polling.
// ApplyLocal mutates the mirror ahead of a remote write so the optimistic
// toggle can flip and, on failure, revert without a round trip.
type Feed[T any] struct {
	name  string
	fetch func(ctx context.Context) ([]T, error)

	mu       sync.RWMutex
	snapshot []T
	loaded   bool
	subs     map[chan []T]struct{}

	pollInterval time.Duration
	retryDelay   time.Duration
}

func NewFeed[T any](name string, fetch func(ctx context.Context) ([]T, error)) *Feed[T] {
	return &Feed[T]{
		name:         name,
		fetch:        fetch,
		subs:         make(map[chan []T]struct{}),
		pollInterval: utils.GetEnvAsDuration("FEED_POLL_INTERVAL", 5*time.Second),
		retryDelay:   utils.GetEnvAsDuration("FEED_RETRY_DELAY", 2*time.Second),
	}
}

// Snapshot returns the current mirror contents. The second value reports
// whether the mirror has been populated at least once.
func (f *Feed[T]) Snapshot() ([]T, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]T, len(f.snapshot))
	copy(out, f.snapshot)
	return out, f.loaded
}

func (f *Feed[T]) setSnapshot(items []T) {
	f.mu.Lock()
	f.snapshot = items
	f.loaded = true
	subs := make([]chan []T, 0, len(f.subs))
	for ch := range f.subs {
		subs = append(subs, ch)
	}
	f.mu.Unlock()

	for _, ch := range subs {
		out := make([]T, len(items))
		copy(out, items)
		// A slow subscriber holds at most one queued snapshot. Discard the
		// stale one first so the latest is always the one delivered.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- out:
		default:
		}
	}
}

// Refresh fetches the collection and replaces the mirror.
func (f *Feed[T]) Refresh(ctx context.Context) error {
	items, err := f.fetch(ctx)
	if err != nil {
		utils.TrackError("livefeed", f.name+"_refresh_failed")
		return err
	}
	f.setSnapshot(items)
	return nil
}

// ApplyLocal rewrites the mirror without touching the store. Used for the
// optimistic half of a mutation and for its rollback.
func (f *Feed[T]) ApplyLocal(mutate func(items []T) []T) {
	f.mu.RLock()
	current := make([]T, len(f.snapshot))
	copy(current, f.snapshot)
	f.mu.RUnlock()

	f.setSnapshot(mutate(current))
}

// Subscribe registers a listener for snapshot updates. The returned cancel
// func must be called on teardown; a live feed must not leak listeners.
func (f *Feed[T]) Subscribe() (<-chan []T, func()) {
	ch := make(chan []T, 1)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	if f.loaded {
		out := make([]T, len(f.snapshot))
		copy(out, f.snapshot)
		ch <- out
	}
	f.mu.Unlock()

	utils.FeedSubscribers.WithLabelValues(f.name).Inc()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
			utils.FeedSubscribers.WithLabelValues(f.name).Dec()
		})
	}

	return ch, cancel
}

// Run keeps the mirror in sync until ctx is cancelled. It prefers a change
// stream on the collection and falls back to interval polling when the
// deployment does not support one.
func (f *Feed[T]) Run(ctx context.Context, coll *mongo.Collection) {
	if err := f.Refresh(ctx); err != nil {
		log.Printf("feed %s: initial fetch failed: %v", f.name, err)
	}

	for ctx.Err() == nil {
		stream, err := coll.Watch(ctx, mongo.Pipeline{})
		if err != nil {
			log.Printf("feed %s: change stream unavailable, polling: %v", f.name, err)
			f.poll(ctx)
			return
		}

		for stream.Next(ctx) {
			if err := f.Refresh(ctx); err != nil {
				log.Printf("feed %s: refresh failed: %v", f.name, err)
			}
		}

		if err := stream.Close(context.Background()); err != nil {
			log.Printf("feed %s: closing change stream: %v", f.name, err)
		}
		if ctx.Err() == nil {
			log.Printf("feed %s: change stream ended, reconnecting", f.name)
			f.waitRetry(ctx)
		}
	}
}

// waitRetry spaces out change-stream reconnects so a flapping stream does
// not turn into a hot loop.
func (f *Feed[T]) waitRetry(ctx context.Context) {
	timer := time.NewTimer(f.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (f *Feed[T]) poll(ctx context.Context) {
	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil {
				log.Printf("feed %s: poll refresh failed: %v", f.name, err)
			}
		}
	}
}
