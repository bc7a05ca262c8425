package memory

import (
	"context"
	"sync"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/storage"
)

type booksTable struct {
	mu   sync.RWMutex
	rows []models.Book
	byID map[int64]int
}

// CreateBook assigns an id and appends the book.
func (s *Store) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	s.books.mu.Lock()
	defer s.books.mu.Unlock()

	book = cloneBook(book)
	book.ID = s.NextID(storage.KindBook)
	s.books.byID[book.ID] = len(s.books.rows)
	s.books.rows = append(s.books.rows, book)
	return cloneBook(book), nil
}

// FindBookByID fetches an enabled book.
func (s *Store) FindBookByID(ctx context.Context, id int64) (models.Book, error) {
	book, err := s.LookupBook(ctx, id)
	if err != nil {
		return models.Book{}, err
	}
	if book.IsDisabled {
		return models.Book{}, storage.ErrNotFound
	}
	return book, nil
}

// LookupBook fetches a book whether or not it is disabled.
func (s *Store) LookupBook(ctx context.Context, id int64) (models.Book, error) {
	s.books.mu.RLock()
	defer s.books.mu.RUnlock()

	idx, ok := s.books.byID[id]
	if !ok {
		return models.Book{}, storage.ErrNotFound
	}
	return cloneBook(s.books.rows[idx]), nil
}

// ListBooks returns enabled books in creation order.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	s.books.mu.RLock()
	defer s.books.mu.RUnlock()

	out := make([]models.Book, 0, len(s.books.rows))
	for _, book := range s.books.rows {
		if !book.IsDisabled {
			out = append(out, cloneBook(book))
		}
	}
	return out, nil
}

// UpdateBook applies mutate to a copy of the enabled book and saves it if mutate succeeds.
func (s *Store) UpdateBook(ctx context.Context, id int64, mutate func(*models.Book) error) (models.Book, error) {
	s.books.mu.Lock()
	defer s.books.mu.Unlock()

	idx, ok := s.books.byID[id]
	if !ok || s.books.rows[idx].IsDisabled {
		return models.Book{}, storage.ErrNotFound
	}

	updated := cloneBook(s.books.rows[idx])
	if err := mutate(&updated); err != nil {
		return models.Book{}, err
	}
	updated.ID = id
	s.books.rows[idx] = cloneBook(updated)
	return updated, nil
}

// DisableBook soft-deletes an enabled book.
func (s *Store) DisableBook(ctx context.Context, id int64) error {
	s.books.mu.Lock()
	defer s.books.mu.Unlock()

	idx, ok := s.books.byID[id]
	if !ok || s.books.rows[idx].IsDisabled {
		return storage.ErrNotFound
	}
	s.books.rows[idx].IsDisabled = true
	return nil
}

func cloneBook(b models.Book) models.Book {
	b.Genre = cloneString(b.Genre)
	b.Publisher = cloneString(b.Publisher)
	b.PublicationDate = cloneString(b.PublicationDate)
	return b
}
