package game

import (
	"sync"
	"time"
)

// Authorization is the single live permission to submit the current turn's
// move for one game. A new Put for the same game id replaces any previous
// record, which is what invalidates stale tokens.
type Authorization struct {
	Token  string
	Colour Colour
	Issued time.Time
}

// TokenStore keeps at most one live Authorization per game id.
// Last write wins.
type TokenStore interface {
	Put(gameId string, auth Authorization)
	Get(gameId string) (Authorization, bool)
	Remove(gameId string)
}

// MemoryTokenStore is a TokenStore in a mutex-guarded map.
type MemoryTokenStore struct {
	mu    sync.Mutex
	auths map[string]Authorization
}

// NewMemoryTokenStore constructs an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{auths: map[string]Authorization{}}
}

func (s *MemoryTokenStore) Put(gameId string, auth Authorization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auths[gameId] = auth
}

func (s *MemoryTokenStore) Get(gameId string) (Authorization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	auth, ok := s.auths[gameId]
	return auth, ok
}

func (s *MemoryTokenStore) Remove(gameId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.auths, gameId)
}
