// Package repomanager owns the storage backend the server runs on and
// hands out the repositories built on top of it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/skillboard/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/profiles"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Accounts() accounts.Repository
	Profiles() profiles.Repository
	Close() error
}

// New picks the backend from dsn: an empty dsn selects the in-memory store.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn)
}
