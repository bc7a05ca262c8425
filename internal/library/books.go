package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/models/dto"
	"github.com/hongminglow/library-be/internal/storage"
)

var errBookNotFound = newError(ErrNotFound, "Book not found")

// CreateBook adds an available book to the catalog.
func (s *Service) CreateBook(ctx context.Context, req dto.CreateBookRequest) (models.Book, error) {
	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	if title == "" || author == "" {
		return models.Book{}, newError(ErrValidation, "title and author are required")
	}

	created, err := s.store.CreateBook(ctx, models.Book{
		Title:           title,
		Author:          author,
		Genre:           req.Genre,
		Publisher:       req.Publisher,
		PublicationDate: req.PublicationDate,
		IsAvailable:     true,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("create book: %w", err)
	}
	s.logger.InfoContext(ctx, "book created", slog.Int64("book_id", created.ID))
	return created, nil
}

// GetBook returns an enabled book.
func (s *Service) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, err := s.store.FindBookByID(ctx, id)
	if err != nil {
		return models.Book{}, translateBookErr(err)
	}
	return book, nil
}

// UpdateBook overwrites every field present in req, null included.
// A null title or author is stored as the empty string.
func (s *Service) UpdateBook(ctx context.Context, id int64, req dto.UpdateBookRequest) (models.Book, error) {
	updated, err := s.store.UpdateBook(ctx, id, func(b *models.Book) error {
		if req.Title.Set {
			b.Title = req.Title.Value
		}
		if req.Author.Set {
			b.Author = req.Author.Value
		}
		if req.Genre.Set {
			b.Genre = req.Genre.Ptr()
		}
		if req.Publisher.Set {
			b.Publisher = req.Publisher.Ptr()
		}
		if req.PublicationDate.Set {
			b.PublicationDate = req.PublicationDate.Ptr()
		}
		if req.IsAvailable.Set {
			b.IsAvailable = req.IsAvailable.Value
		}
		return nil
	})
	if err != nil {
		return models.Book{}, translateBookErr(err)
	}
	return updated, nil
}

// DeleteBook soft-deletes a book.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if err := s.store.DisableBook(ctx, id); err != nil {
		return translateBookErr(err)
	}
	s.logger.InfoContext(ctx, "book disabled", slog.Int64("book_id", id))
	return nil
}

func translateBookErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errBookNotFound
	}
	return err
}
