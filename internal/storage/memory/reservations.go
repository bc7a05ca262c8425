package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/storage"
)

type reservationsTable struct {
	mu   sync.RWMutex
	rows []models.Reservation
}

// ReserveBook checks the book is enabled and available, appends the reservation and
// flips the book to unavailable while holding both locks.
func (s *Store) ReserveBook(ctx context.Context, userID, bookID int64, at time.Time) (models.Reservation, error) {
	s.books.mu.Lock()
	defer s.books.mu.Unlock()

	idx, ok := s.books.byID[bookID]
	if !ok || s.books.rows[idx].IsDisabled {
		return models.Reservation{}, storage.ErrNotFound
	}
	if !s.books.rows[idx].IsAvailable {
		return models.Reservation{}, storage.ErrUnavailable
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	reservation := models.Reservation{
		ID:         s.NextID(storage.KindReservation),
		UserID:     userID,
		BookID:     bookID,
		ReservedAt: at,
	}
	s.ledger.rows = append(s.ledger.rows, reservation)
	s.books.rows[idx].IsAvailable = false
	return reservation, nil
}

// ListReservationsByBook returns the book's ledger entries in creation order.
func (s *Store) ListReservationsByBook(ctx context.Context, bookID int64) ([]models.Reservation, error) {
	return s.filterReservations(func(r models.Reservation) bool { return r.BookID == bookID }), nil
}

// ListReservationsByUser returns the user's ledger entries in creation order.
func (s *Store) ListReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	return s.filterReservations(func(r models.Reservation) bool { return r.UserID == userID }), nil
}

func (s *Store) filterReservations(keep func(models.Reservation) bool) []models.Reservation {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, r := range s.ledger.rows {
		if keep(r) {
			if r.DeliveredAt != nil {
				at := *r.DeliveredAt
				r.DeliveredAt = &at
			}
			out = append(out, r)
		}
	}
	return out
}
