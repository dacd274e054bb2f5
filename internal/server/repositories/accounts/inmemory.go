package accounts

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// InMemoryRepository keeps accounts for the lifetime of the process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	lastID  int64
	byEmail map[string]*models.Account
	now     func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*models.Account),
		now:     time.Now,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrDuplicateAccount
	}

	r.lastID++
	stored := *account
	stored.ID = strconv.FormatInt(r.lastID, 10)
	stored.CreatedAt = r.now()
	r.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *a
	return &out, nil
}

// Len returns the number of stored accounts.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
