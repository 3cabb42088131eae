package state

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Sessions owns the Selection of every visitor, keyed by session id. The
// least recently used sessions are dropped once capacity is reached; a
// dropped visitor simply starts again from Default.
type Sessions struct {
	mu    sync.Mutex
	cache *lru.Cache[string, Selection]
}

func NewSessions(capacity int) (*Sessions, error) {
	cache, err := lru.New[string, Selection](capacity)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &Sessions{cache: cache}, nil
}

// NewID mints a fresh session id.
func (s *Sessions) NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id minted by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the session's selection, or Default and false for an unknown id.
func (s *Sessions) Get(id string) (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.cache.Get(id)
	if !ok {
		return Default(), false
	}
	return sel, true
}

// Update applies fn to the session's current selection and stores the result.
// When fn fails the stored selection is left as it was.
func (s *Sessions) Update(id string, fn func(Selection) (Selection, error)) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.cache.Get(id)
	if !ok {
		cur = Default()
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	s.cache.Add(id, next)
	return next, nil
}

// Len is the number of live sessions.
func (s *Sessions) Len() int {
	return s.cache.Len()
}
