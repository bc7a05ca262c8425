package library

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/models/dto"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseDate accepts the common ISO 8601 shapes. Dates without a zone are UTC.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ListBooks filters enabled books and returns one page of {id, title} entries.
// Unparseable date bounds are ignored.
func (s *Service) ListBooks(ctx context.Context, q dto.BookQuery) (dto.BookPage, error) {
	if q.Page <= 0 || q.Limit <= 0 {
		return dto.BookPage{}, newError(ErrValidation, "Invalid pagination parameters")
	}

	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return dto.BookPage{}, fmt.Errorf("list books: %w", err)
	}

	match := bookFilter(q)
	filtered := books[:0]
	for _, b := range books {
		if match(b) {
			filtered = append(filtered, b)
		}
	}

	total := len(filtered)
	pages := total / q.Limit
	if total%q.Limit != 0 {
		pages++
	}
	totalPages := max(1, pages)

	data := make([]models.BookRef, 0, min(q.Limit, total))
	if q.Page <= pages {
		offset := (q.Page - 1) * q.Limit
		end := offset + min(q.Limit, total-offset)
		for _, b := range filtered[offset:end] {
			data = append(data, b.Ref())
		}
	}

	return dto.BookPage{
		Data: data,
		Pagination: dto.Pagination{
			Page:       q.Page,
			TotalPages: totalPages,
			Limit:      q.Limit,
			TotalItems: total,
		},
	}, nil
}

func bookFilter(q dto.BookQuery) func(models.Book) bool {
	var preds []func(models.Book) bool

	if q.Genre != "" {
		preds = append(preds, func(b models.Book) bool {
			return strings.EqualFold(deref(b.Genre), q.Genre)
		})
	}
	for _, f := range []struct {
		needle string
		field  func(models.Book) string
	}{
		{q.Publisher, func(b models.Book) string { return deref(b.Publisher) }},
		{q.Author, func(b models.Book) string { return b.Author }},
		{q.Title, func(b models.Book) string { return b.Title }},
	} {
		if f.needle == "" {
			continue
		}
		needle, field := strings.ToLower(f.needle), f.field
		preds = append(preds, func(b models.Book) bool {
			return strings.Contains(strings.ToLower(field(b)), needle)
		})
	}
	if q.Available != nil {
		want := *q.Available
		preds = append(preds, func(b models.Book) bool { return b.IsAvailable == want })
	}
	if from, ok := parseDate(q.FromDate); ok {
		preds = append(preds, func(b models.Book) bool {
			d, ok := publishedAt(b)
			return ok && !d.Before(from)
		})
	}
	if to, ok := parseDate(q.ToDate); ok {
		preds = append(preds, func(b models.Book) bool {
			d, ok := publishedAt(b)
			return ok && !d.After(to)
		})
	}

	return func(b models.Book) bool {
		for _, p := range preds {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

func publishedAt(b models.Book) (time.Time, bool) {
	if b.PublicationDate == nil {
		return time.Time{}, false
	}
	return parseDate(*b.PublicationDate)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
