package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/storage"
)

// Reserve books bookID for the caller and marks the book unavailable.
// There is no transition back to available.
func (s *Service) Reserve(ctx context.Context, caller auth.Caller, bookID int64) (models.Reservation, error) {
	if bookID <= 0 {
		return models.Reservation{}, newError(ErrValidation, "bookId is required")
	}
	if _, err := s.store.FindUserByID(ctx, caller.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Reservation{}, errUserNotFound
		}
		return models.Reservation{}, fmt.Errorf("find user: %w", err)
	}

	reservation, err := s.store.ReserveBook(ctx, caller.ID, bookID, s.now().UTC())
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return models.Reservation{}, errBookNotFound
	case errors.Is(err, storage.ErrUnavailable):
		return models.Reservation{}, newError(ErrValidation, "Book is not available")
	case err != nil:
		return models.Reservation{}, fmt.Errorf("reserve book: %w", err)
	}

	s.logger.InfoContext(ctx, "book reserved",
		slog.Int64("reservation_id", reservation.ID),
		slog.Int64("book_id", bookID),
		slog.Int64("user_id", caller.ID),
	)
	return reservation, nil
}

// ReservationsByBook lists a book's reservations joined with the reserving users.
func (s *Service) ReservationsByBook(ctx context.Context, bookID int64) ([]models.BookReservation, error) {
	ledger, err := s.store.ListReservationsByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	out := make([]models.BookReservation, 0, len(ledger))
	for _, r := range ledger {
		entry := models.BookReservation{ID: r.ID, ReservedAt: r.ReservedAt, DeliveredAt: r.DeliveredAt}
		if user, err := s.store.LookupUser(ctx, r.UserID); err == nil {
			ref := user.Ref()
			entry.User = &ref
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("lookup user %d: %w", r.UserID, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// ReservationsByUser lists a user's reservations joined with the reserved books.
func (s *Service) ReservationsByUser(ctx context.Context, userID int64) ([]models.UserReservation, error) {
	ledger, err := s.store.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	out := make([]models.UserReservation, 0, len(ledger))
	for _, r := range ledger {
		entry := models.UserReservation{ID: r.ID, ReservedAt: r.ReservedAt, DeliveredAt: r.DeliveredAt}
		if book, err := s.store.LookupBook(ctx, r.BookID); err == nil {
			ref := book.Ref()
			entry.Book = &ref
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("lookup book %d: %w", r.BookID, err)
		}
		out = append(out, entry)
	}
	return out, nil
}
