package feed

import (
	"sync"

	"board-service/internal/posts"
)

// Session holds one consumer's feed view: the active filter, the loaded
// posts, and the derived tag set. Filter changes are tagged with a
// generation number; a response is applied only if no newer filter was
// requested meanwhile, so racing responses resolve last-request-wins by
// generation, not by arrival order.
type Session struct {
	mu     sync.Mutex
	filter Filter
	gen    uint64
	posts  []posts.Post
	tags   []string
}

func NewSession() *Session {
	return &Session{}
}

// SetFilter installs a new filter and returns the generation the caller
// must present when applying the results it fetches.
func (s *Session) SetFilter(f Filter) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
	s.gen++
	return s.gen
}

func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// ApplyResults accepts a fetched result set for the given generation.
// Stale generations are dropped and false is returned.
func (s *Session) ApplyResults(gen uint64, list []posts.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.gen {
		return false
	}
	s.posts = list
	s.tags = KnownTags(list)
	return true
}

// Snapshot returns the visible posts and the known-tag suggestions.
func (s *Session) Snapshot() ([]posts.Post, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts, s.tags
}
