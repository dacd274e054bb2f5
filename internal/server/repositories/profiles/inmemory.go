package profiles

import (
	"context"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// InMemoryRepository keeps profiles for the lifetime of the process. Records
// are kept in insertion order with a primary index by ID and a secondary
// owner→ID index. Everything handed out is a deep copy.
type InMemoryRepository struct {
	mu      sync.RWMutex
	lastID  int64
	ordered []*models.Profile
	byID    map[string]*models.Profile
	byOwner map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[string]*models.Profile),
		byOwner: make(map[string]string),
	}
}

func (r *InMemoryRepository) List(ctx context.Context, skillFilter string) ([]*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Profile, 0, len(r.ordered))
	for _, p := range r.ordered {
		if p.MatchesSkill(skillFilter) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p.Clone(), nil
}

func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byOwner[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, ownerID string, fields models.ProfileUpsertFields) (*models.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byOwner[ownerID]; ok {
		p := r.byID[id]
		p.Apply(fields)
		return p.Clone(), false, nil
	}

	r.lastID++
	p := &models.Profile{
		ID:      strconv.FormatInt(r.lastID, 10),
		OwnerID: ownerID,
		Skills:  []models.Skill{},
	}
	p.Apply(fields)

	r.ordered = append(r.ordered, p)
	r.byID[p.ID] = p
	r.byOwner[ownerID] = p.ID

	return p.Clone(), true, nil
}

// Len returns the number of stored profiles.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
