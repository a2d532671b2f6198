// Package store holds the canonical application state for the civic issue
// reporter and applies the closed set of state transitions. Screens read a
// snapshot, dispatch commands, and subscribe for new snapshots; nothing else
// touches the state.
package store

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"civicreport/models"
)

var validate = validator.New()

// Store is the single source of truth for domain state. Construct one with
// New and hand it to every consumer; there is no package-level instance.
type Store struct {
	mu    sync.Mutex
	state models.AppState
	log   *logrus.Entry

	listeners map[string]func(models.AppState)
	watchers  map[string]chan models.AppState
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger attaches a log entry used to record every dispatch at debug
// level.
func WithLogger(entry *logrus.Entry) Option {
	return func(s *Store) {
		s.log = entry
	}
}

// New builds a store seeded with the given initial state.
func New(initial models.AppState, opts ...Option) *Store {
	s := &Store{
		state:     initial,
		log:       logrus.NewEntry(logrus.StandardLogger()),
		listeners: make(map[string]func(models.AppState)),
		watchers:  make(map[string]chan models.AppState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state. The returned value's collections are
// never mutated by later dispatches, so callers may hold it indefinitely.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies exactly one state transition and notifies subscribers
// with the new snapshot. It completes fully before returning, so two
// dispatches never interleave. Unknown commands and references to missing
// ids leave the state unchanged and are not surfaced; use DispatchStrict to
// observe them.
func (s *Store) Dispatch(cmd models.Command) {
	if err := s.apply(cmd); err != nil {
		s.log.WithFields(logrus.Fields{"command": cmd.Kind(), "reason": err.Error()}).
			Debug("dispatch was a no-op")
	}
}

// DispatchStrict is Dispatch with the silent no-op policy lifted: commands
// that target missing entities, require a signed-in user, carry an invalid
// payload, or are of an unknown kind return an error instead. The state
// transition semantics are identical.
func (s *Store) DispatchStrict(cmd models.Command) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	return s.apply(cmd)
}

func (s *Store) apply(cmd models.Command) error {
	s.mu.Lock()
	next, err := reduce(s.state, cmd)
	s.state = next
	listeners := make([]func(models.AppState), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.pushToWatchers(next)
	s.mu.Unlock()

	s.log.WithField("command", cmd.Kind()).Debug("dispatched")

	// Listeners run outside the lock; a dispatch from inside a listener is
	// an ordinary dispatch.
	for _, fn := range listeners {
		fn(next)
	}
	return err
}

// Subscribe registers a listener invoked once per dispatch with the new
// snapshot. The returned function removes the listener; calling it more than
// once is safe.
func (s *Store) Subscribe(listener func(models.AppState)) (unsubscribe func()) {
	id := "listener_" + uuid.New().String()

	s.mu.Lock()
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// validateCommand checks command payloads for strict dispatch. The reducer
// itself never rejects a payload: the store does not constrain status
// workflows or field contents, matching the lenient Dispatch path.
func validateCommand(cmd models.Command) error {
	switch c := cmd.(type) {
	case models.SetUser:
		if c.User == nil {
			return nil
		}
		return wrapValidation(validate.Struct(c.User))
	case models.AddIssue:
		if !c.Issue.Category.IsValid() {
			return fmt.Errorf("%w: category %q", ErrInvalidPayload, c.Issue.Category)
		}
		if !c.Issue.Status.IsValid() {
			return fmt.Errorf("%w: status %q", ErrInvalidPayload, c.Issue.Status)
		}
		return wrapValidation(validate.Struct(c.Issue))
	case models.UpdateIssue:
		if c.Updates.Category != nil && !c.Updates.Category.IsValid() {
			return fmt.Errorf("%w: category %q", ErrInvalidPayload, *c.Updates.Category)
		}
		if c.Updates.Status != nil && !c.Updates.Status.IsValid() {
			return fmt.Errorf("%w: status %q", ErrInvalidPayload, *c.Updates.Status)
		}
		if c.Updates.Upvotes != nil && *c.Updates.Upvotes < 0 {
			return fmt.Errorf("%w: negative upvotes", ErrInvalidPayload)
		}
		return nil
	case models.AddNotification:
		if !c.Notification.Type.IsValid() {
			return fmt.Errorf("%w: notification type %q", ErrInvalidPayload, c.Notification.Type)
		}
		return wrapValidation(validate.Struct(c.Notification))
	case models.SetLanguage:
		if !c.Language.IsValid() {
			return fmt.Errorf("%w: language %q", ErrInvalidPayload, c.Language)
		}
		return nil
	case models.AddPost:
		if c.Post.Category != "" && !c.Post.Category.IsValid() {
			return fmt.Errorf("%w: category %q", ErrInvalidPayload, c.Post.Category)
		}
		return wrapValidation(validate.Struct(c.Post))
	}
	return nil
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
}
