package engagement

import (
	"context"
	"errors"
	"sync"

	"board-service/internal/metrics"
)

// ErrInFlight is returned when a toggle arrives for a subject whose previous
// toggle has not been confirmed yet. Transitions are serialized per subject;
// the caller re-submits after the outstanding one resolves.
var ErrInFlight = errors.New("reaction already in flight for subject")

// Writer confirms an optimistic transition against the backing store.
type Writer interface {
	Write(ctx context.Context, viewer, subject string, value int, deltas []CounterDelta) error
}

// FailureHandler surfaces a rolled-back transition to the user.
type FailureHandler func(subject string, action Action, err error)

// Session tracks optimistic engagement state for one viewer. Every toggle
// applies the transition locally first, then confirms it remotely; on
// failure the state captured immediately before that transition is restored.
// Commit-or-restore on a captured pre-state, not a reassignment of whatever
// the props were when the subject loaded.
type Session struct {
	writer    Writer
	viewer    string
	onFailure FailureHandler

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	state    State
	inFlight bool
}

func NewSession(writer Writer, viewer string, onFailure FailureHandler) *Session {
	return &Session{
		writer:    writer,
		viewer:    viewer,
		onFailure: onFailure,
		entries:   make(map[string]*entry),
	}
}

// Seed installs the server-confirmed state for a subject, typically from a
// freshly listed post.
func (s *Session) Seed(subject string, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[subject] = &entry{state: st}
}

// State returns the currently displayed state for a subject.
func (s *Session) State(subject string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[subject]; ok {
		return e.state
	}
	return State{}
}

// Toggle runs one like/dislike transition. The returned state is what the
// viewer should see: the optimistic result on success, the restored
// pre-transition state on failure.
func (s *Session) Toggle(ctx context.Context, subject string, a Action) (State, error) {
	s.mu.Lock()
	e, ok := s.entries[subject]
	if !ok {
		e = &entry{}
		s.entries[subject] = e
	}
	if e.inFlight {
		st := e.state
		s.mu.Unlock()
		return st, ErrInFlight
	}

	prev := e.state
	next, deltas := Apply(prev, a)
	e.state = next
	e.inFlight = true
	s.mu.Unlock()

	err := s.writer.Write(ctx, s.viewer, subject, next.Value(), deltas)

	s.mu.Lock()
	e.inFlight = false
	if err != nil {
		e.state = prev
		s.mu.Unlock()
		metrics.ReactionRollbacks.Inc()
		if s.onFailure != nil {
			s.onFailure(subject, a, err)
		}
		return prev, err
	}
	st := e.state
	s.mu.Unlock()
	return st, nil
}
