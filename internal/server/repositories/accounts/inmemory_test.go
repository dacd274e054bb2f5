package accounts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_CreateAssignsSequentialIDs(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	a, err := r.Create(ctx, &models.Account{Email: "john@example.com", Secret: "password123", Name: "John Doe"})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.Account{Email: "jane@example.com", Secret: "password123", Name: "Jane Smith"})
	require.NoError(t, err)

	assert.Equal(t, "1", a.ID)
	assert.Equal(t, "2", b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestInMemory_DuplicateEmailRejected(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Account{Email: "john@example.com", Secret: "x", Name: "John"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.Account{Email: "john@example.com", Secret: "y", Name: "Other"})
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
	assert.Equal(t, 1, r.Len())

	got, err := r.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)
}

func TestInMemory_EmailIsCaseSensitive(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Account{Email: "john@example.com"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Account{Email: "John@Example.com"})
	require.NoError(t, err)

	_, err = r.GetByEmail(ctx, "JOHN@EXAMPLE.COM")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	in := &models.Account{Email: "a@b.c", Name: "A"}
	created, err := r.Create(ctx, in)
	require.NoError(t, err)
	assert.Empty(t, in.ID, "input must not be mutated")

	created.Name = "mutated"
	got, err := r.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestInMemory_ConcurrentDuplicateRegistration(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, &models.Account{Email: "race@example.com", Secret: "s"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrDuplicateAccount):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
	assert.Equal(t, 1, r.Len())
}
