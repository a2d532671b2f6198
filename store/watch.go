package store

import (
	"context"

	"github.com/google/uuid"

	"civicreport/models"
)

// Watch returns a channel that receives the new snapshot after every
// dispatch, for collaborators that consume state from a goroutine rather
// than a callback (timers, capture flows). The channel holds only the latest
// snapshot: if the consumer lags, stale intermediate snapshots are dropped.
// The subscription is removed and the channel closed when ctx terminates.
func (s *Store) Watch(ctx context.Context) <-chan models.AppState {
	id := "watch_" + uuid.New().String()
	ch := make(chan models.AppState, 1)

	s.mu.Lock()
	s.watchers[id] = ch
	s.mu.Unlock()

	go s.cleanUp(ctx, id)

	return ch
}

// cleanUp removes a single watcher once its context terminates.
func (s *Store) cleanUp(ctx context.Context, id string) {
	<-ctx.Done()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.watchers[id]; ok {
		delete(s.watchers, id)
		close(ch)
	}
}

// ActiveWatchers reports how many watch channels are currently registered.
func (s *Store) ActiveWatchers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers)
}

// pushToWatchers delivers the snapshot to every watcher without blocking.
// Caller must hold s.mu.
func (s *Store) pushToWatchers(state models.AppState) {
	for _, ch := range s.watchers {
		select {
		case ch <- state:
		default:
			// Replace the stale snapshot with the latest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}
