package memory

import (
	"sync"

	"github.com/hongminglow/library-be/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store keeps users, books and reservations in process memory. Each collection is
// guarded by its own lock; when two are needed, books is always taken before reservations.
type Store struct {
	users  usersTable
	books  booksTable
	ledger reservationsTable

	countersMu sync.Mutex
	counters   map[storage.Kind]int64
}

// NewStore returns an empty store whose counters all start at 1.
func NewStore() *Store {
	return &Store{
		users:    usersTable{byID: make(map[int64]int)},
		books:    booksTable{byID: make(map[int64]int)},
		counters: make(map[storage.Kind]int64),
	}
}

// NextID returns the current counter for kind and advances it.
func (s *Store) NextID(kind storage.Kind) int64 {
	s.countersMu.Lock()
	defer s.countersMu.Unlock()

	current, ok := s.counters[kind]
	if !ok {
		current = 1
	}
	s.counters[kind] = current + 1
	return current
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
