package repomanager

import (
	"context"

	"github.com/dmitrijs2005/skillboard/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/profiles"
)

type InMemoryRepositoryManager struct {
	accounts *accounts.InMemoryRepository
	profiles *profiles.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts: accounts.NewInMemoryRepository(),
		profiles: profiles.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Profiles() profiles.Repository {
	return m.profiles
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
