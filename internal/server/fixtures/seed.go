// Package fixtures loads the demo accounts and profiles used for local
// development.
package fixtures

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/skillboard/internal/server/repositories/profiles"
)

// DemoSecret is the password of every demo account.
const DemoSecret = "password123"

type demo struct {
	account models.Account
	profile models.Profile
}

func demoData() []demo {
	return []demo{
		{
			account: models.Account{Email: "john@example.com", Secret: DemoSecret, Name: "John Doe"},
			profile: models.Profile{
				Name:     "John Doe",
				Title:    "Full Stack Developer",
				Bio:      "Experienced developer with a passion for building web applications",
				Location: "San Francisco, CA",
				Skills: []models.Skill{
					{ID: "1", Name: "JavaScript", Level: 5},
					{ID: "2", Name: "React", Level: 4},
					{ID: "3", Name: "Node.js", Level: 4},
					{ID: "4", Name: "TypeScript", Level: 3},
				},
				GitHub:    "https://github.com/johndoe",
				LinkedIn:  "https://linkedin.com/in/johndoe",
				Website:   "https://johndoe.com",
				AvatarURL: "https://randomuser.me/api/portraits/men/1.jpg",
			},
		},
		{
			account: models.Account{Email: "jane@example.com", Secret: DemoSecret, Name: "Jane Smith"},
			profile: models.Profile{
				Name:     "Jane Smith",
				Title:    "UX Designer & Frontend Developer",
				Bio:      "Creative designer with strong coding skills",
				Location: "New York, NY",
				Skills: []models.Skill{
					{ID: "5", Name: "UI/UX Design", Level: 5},
					{ID: "6", Name: "React", Level: 3},
					{ID: "7", Name: "CSS", Level: 5},
					{ID: "8", Name: "Figma", Level: 4},
				},
				GitHub:    "https://github.com/janesmith",
				LinkedIn:  "https://linkedin.com/in/janesmith",
				Website:   "https://janesmith.design",
				AvatarURL: "https://randomuser.me/api/portraits/women/1.jpg",
			},
		},
	}
}

func fieldsOf(p models.Profile) models.ProfileUpsertFields {
	skills := append([]models.Skill(nil), p.Skills...)
	return models.ProfileUpsertFields{
		Name:      &p.Name,
		Title:     &p.Title,
		Bio:       &p.Bio,
		Location:  &p.Location,
		Skills:    &skills,
		GitHub:    &p.GitHub,
		LinkedIn:  &p.LinkedIn,
		Website:   &p.Website,
		AvatarURL: &p.AvatarURL,
	}
}

// Seed creates the demo accounts and their profiles. Accounts whose email is
// already registered are left untouched together with their profile, so
// seeding a populated store is a no-op.
func Seed(ctx context.Context, ar accounts.Repository, pr profiles.Repository, logger logging.Logger) error {
	for _, d := range demoData() {
		acc := d.account
		created, err := ar.Create(ctx, &acc)
		if err != nil {
			if errors.Is(err, common.ErrDuplicateAccount) {
				logger.Debug(ctx, "demo account exists, skipping", "email", acc.Email)
				continue
			}
			return fmt.Errorf("seed account %s: %w", acc.Email, err)
		}

		if _, _, err := pr.Upsert(ctx, created.ID, fieldsOf(d.profile)); err != nil {
			return fmt.Errorf("seed profile for %s: %w", acc.Email, err)
		}
		logger.Info(ctx, "seeded demo account", "id", created.ID, "email", created.Email)
	}
	return nil
}
