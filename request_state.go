package ftchr

import (
	"sync"

	"github.com/joy-dx/lockablemap"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
)

// requestState keeps the latest outcome per "METHOD URL" for at most limit
// keys. The oldest key is evicted first; recording an existing key refreshes it.
type requestState struct {
	mu      sync.Mutex
	limit   int
	order   []string
	entries *lockablemap.LockableMap[string, dto.RequestNotification]
}

func newRequestState(limit int) *requestState {
	if limit <= 0 {
		limit = config.DEFAULT_REQUEST_STATE_LIMIT
	}
	return &requestState{
		limit:   limit,
		order:   make([]string, 0, limit),
		entries: lockablemap.NewLockableMap[string, dto.RequestNotification](),
	}
}

func (s *requestState) Set(key string, n dto.RequestNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.entries.Get(key); err == nil {
		for i, k := range s.order {
			if k == key {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.order = append(s.order, key)
	s.entries.Set(key, n)

	for len(s.order) > s.limit {
		s.entries.Remove(s.order[0])
		s.order = s.order[1:]
	}
}

func (s *requestState) GetAll() map[string]dto.RequestNotification {
	return s.entries.GetAll()
}

func (s *requestState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
