package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/storage"
)

func TestNextIDPerKind(t *testing.T) {
	s := NewStore()

	assert.Equal(t, int64(1), s.NextID(storage.KindUser))
	assert.Equal(t, int64(2), s.NextID(storage.KindUser))
	assert.Equal(t, int64(1), s.NextID(storage.KindBook))
	assert.Equal(t, int64(3), s.NextID(storage.KindUser))
}

func TestCreateUserEmailUniqueAmongEnabled(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first, err := s.CreateUser(ctx, models.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	_, err = s.CreateUser(ctx, models.User{Name: "Ana 2", Email: "ana@example.com"})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	require.NoError(t, s.DisableUser(ctx, first.ID))

	second, err := s.CreateUser(ctx, models.User{Name: "Ana 2", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	found, err := s.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestDisabledUserStaysInStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	user, err := s.CreateUser(ctx, models.User{Name: "Bo", Email: "bo@example.com"})
	require.NoError(t, err)
	require.NoError(t, s.DisableUser(ctx, user.ID))

	_, err = s.FindUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.DisableUser(ctx, user.ID), storage.ErrNotFound)

	raw, err := s.LookupUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, raw.IsDisabled)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	a, err := s.CreateUser(ctx, models.User{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, models.User{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)

	updated, err := s.UpdateUser(ctx, a.ID, func(u *models.User) error {
		u.Name = "Alpha"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", updated.Name)

	_, err = s.UpdateUser(ctx, a.ID, func(u *models.User) error {
		u.Email = "b@example.com"
		return nil
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	boom := errors.New("boom")
	_, err = s.UpdateUser(ctx, a.ID, func(u *models.User) error {
		u.Name = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	current, err := s.FindUserByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", current.Name, "failed mutation must not be saved")
	assert.Equal(t, "a@example.com", current.Email)

	_, err = s.UpdateUser(ctx, 99, func(*models.User) error { return nil })
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBooksListSkipsDisabledAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := s.CreateBook(ctx, models.Book{Title: title, Author: "X", IsAvailable: true})
		require.NoError(t, err)
	}
	require.NoError(t, s.DisableBook(ctx, 2))

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "One", books[0].Title)
	assert.Equal(t, "Three", books[1].Title)

	_, err = s.FindBookByID(ctx, 2)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	raw, err := s.LookupBook(ctx, 2)
	require.NoError(t, err)
	assert.True(t, raw.IsDisabled)
}

func TestBookCopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	genre := "sci-fi"
	book, err := s.CreateBook(ctx, models.Book{Title: "Dune", Author: "Herbert", Genre: &genre})
	require.NoError(t, err)

	*book.Genre = "poetry"
	genre = "poetry"

	stored, err := s.FindBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "sci-fi", *stored.Genre)
}

func TestReserveBookFlipsAvailability(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	book, err := s.CreateBook(ctx, models.Book{Title: "Dune", Author: "Herbert", IsAvailable: true})
	require.NoError(t, err)

	r, err := s.ReserveBook(ctx, 7, book.ID, at)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, at, r.ReservedAt)
	assert.Nil(t, r.DeliveredAt)

	stored, err := s.FindBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAvailable)

	_, err = s.ReserveBook(ctx, 8, book.ID, at)
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	_, err = s.ReserveBook(ctx, 8, 404, at)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	byBook, err := s.ListReservationsByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, byBook, 1)
	byUser, err := s.ListReservationsByUser(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, byUser)
}

func TestReserveBookConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	book, err := s.CreateBook(ctx, models.Book{Title: "Contended", Author: "X", IsAvailable: true})
	require.NoError(t, err)

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			<-start
			_, err := s.ReserveBook(ctx, userID, book.ID, time.Now())
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, storage.ErrUnavailable)
		}(int64(i + 1))
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, winners)
	ledger, err := s.ListReservationsByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}
