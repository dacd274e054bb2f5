// Package handlers implements the HTTP endpoints of the skillboard API.
package handlers

import (
	"context"

	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

type AccountService interface {
	Register(ctx context.Context, email, secret, name string) (*models.AuthResult, error)
	Login(ctx context.Context, email, secret string) (*models.AuthResult, error)
}

type ProfileService interface {
	List(ctx context.Context, skillFilter string) ([]*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByOwner(ctx context.Context, token string) (*models.Profile, error)
	Upsert(ctx context.Context, token string, fields models.ProfileUpsertFields) (*models.Profile, error)
	AvatarUploadURL(ctx context.Context, token string) (*models.AvatarUpload, error)
}
