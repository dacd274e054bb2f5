// Package services contains server-side business logic shared by the gRPC
// and HTTP transports: the account directory and the profile store.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/accounts"
)

// AccountService registers accounts and logs them in. Both operations mint a
// session token with the configured codec.
type AccountService struct {
	accounts accounts.Repository
	codec    auth.Codec
}

func NewAccountService(repo accounts.Repository, codec auth.Codec) *AccountService {
	return &AccountService{accounts: repo, codec: codec}
}

// Register creates an account. It returns common.ErrDuplicateAccount when the
// email is already registered.
func (s *AccountService) Register(ctx context.Context, email, secret, name string) (*models.AuthResult, error) {
	acc, err := s.accounts.Create(ctx, &models.Account{Email: email, Secret: secret, Name: name})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}
	return s.authResult(acc)
}

// Login returns common.ErrInvalidCredentials unless both email and secret
// match a stored account exactly.
func (s *AccountService) Login(ctx context.Context, email, secret string) (*models.AuthResult, error) {
	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	if !checkSecret(acc.Secret, secret) {
		return nil, common.ErrInvalidCredentials
	}
	return s.authResult(acc)
}

func (s *AccountService) authResult(acc *models.Account) (*models.AuthResult, error) {
	token, err := s.codec.Encode(acc.Identity())
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &models.AuthResult{Account: acc.Public(), Token: token}, nil
}

func checkSecret(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
