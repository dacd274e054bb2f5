// Package accounts stores registered accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

// Repository is the account store.
//
// Create assigns the next identifier and returns common.ErrDuplicateAccount
// when the email is taken; the check and the insert are atomic.
// GetByEmail returns common.ErrorNotFound when no account matches exactly.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
