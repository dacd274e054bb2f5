package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/auth"
	"github.com/dmitrijs2005/skillboard/internal/server/config"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/profiles"
	"github.com/google/uuid"
)

// ProfileService is the profile store seen by the transports. Operations on
// "my" profile take the caller's session token and resolve the owner from it.
type ProfileService struct {
	profiles profiles.Repository
	codec    auth.Codec
	config   *config.Config
}

func NewProfileService(repo profiles.Repository, codec auth.Codec, cfg *config.Config) *ProfileService {
	return &ProfileService{profiles: repo, codec: codec, config: cfg}
}

// List returns profiles in ID order. A non-empty skillFilter keeps profiles
// with at least one skill whose name contains it, ignoring case.
func (s *ProfileService) List(ctx context.Context, skillFilter string) ([]*models.Profile, error) {
	ps, err := s.profiles.List(ctx, skillFilter)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	return ps, nil
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

// GetByOwner returns the caller's profile, or (nil, nil) when they have not
// created one yet.
func (s *ProfileService) GetByOwner(ctx context.Context, token string) (*models.Profile, error) {
	id, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByOwner(ctx, id.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

// Upsert creates the caller's profile or merges fields into it. Skills sent
// without an ID are given one.
func (s *ProfileService) Upsert(ctx context.Context, token string, fields models.ProfileUpsertFields) (*models.Profile, error) {
	id, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	if fields.Skills != nil {
		skills := make([]models.Skill, len(*fields.Skills))
		copy(skills, *fields.Skills)
		for i := range skills {
			if skills[i].ID == "" {
				skills[i].ID = uuid.NewString()
			}
		}
		fields.Skills = &skills
	}

	p, _, err := s.profiles.Upsert(ctx, id.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}
	return p, nil
}
