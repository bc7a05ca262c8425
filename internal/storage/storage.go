package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hongminglow/library-be/internal/models"
)

// ErrNotFound indicates a record does not exist or has been disabled.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrUnavailable indicates the book is already reserved.
var ErrUnavailable = errors.New("book not available")

// Kind names an entity type for id generation.
type Kind string

const (
	KindUser        Kind = "user"
	KindBook        Kind = "book"
	KindReservation Kind = "reservation"
)

// UserStore captures identity persistence. Find* methods skip disabled users; Lookup does not.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	LookupUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, mutate func(*models.User) error) (models.User, error)
	DisableUser(ctx context.Context, id int64) error
}

// BookStore captures catalog persistence. Find*/List skip disabled books; Lookup does not.
type BookStore interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	FindBookByID(ctx context.Context, id int64) (models.Book, error)
	LookupBook(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	UpdateBook(ctx context.Context, id int64, mutate func(*models.Book) error) (models.Book, error)
	DisableBook(ctx context.Context, id int64) error
}

// ReservationStore captures the reservation ledger.
type ReservationStore interface {
	// ReserveBook records the reservation and marks the book unavailable atomically.
	ReserveBook(ctx context.Context, userID, bookID int64, at time.Time) (models.Reservation, error)
	ListReservationsByBook(ctx context.Context, bookID int64) ([]models.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
}

// Store is the full persistence surface the service depends on.
type Store interface {
	UserStore
	BookStore
	ReservationStore
}
