package models

import "time"

// Reservation links a user to a book they reserved.
type Reservation struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	BookID      int64      `json:"bookId"`
	ReservedAt  time.Time  `json:"reservedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// BookReservation is a ledger entry for a book, joined with the reserving user.
type BookReservation struct {
	ID          int64      `json:"id"`
	User        *UserRef   `json:"user"`
	ReservedAt  time.Time  `json:"reservedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// UserReservation is a ledger entry for a user, joined with the reserved book.
type UserReservation struct {
	ID          int64      `json:"id"`
	Book        *BookRef   `json:"book"`
	ReservedAt  time.Time  `json:"reservedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}
