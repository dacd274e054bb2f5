// Package profiles stores public profiles, at most one per owning account.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// Repository is the profile store.
//
// List returns profiles in insertion order, optionally restricted to those
// with a skill name containing skillFilter (case-insensitive). GetByID and
// GetByOwner return common.ErrorNotFound when nothing matches. Upsert looks up
// the owner's profile and either merges fields over it or creates a new one;
// lookup and write happen atomically, so concurrent upserts for one owner
// never produce two profiles. created reports which branch was taken.
type Repository interface {
	List(ctx context.Context, skillFilter string) ([]*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error)
	Upsert(ctx context.Context, ownerID string, fields models.ProfileUpsertFields) (p *models.Profile, created bool, err error)
}
