package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/dbx"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
)

const profileColumns = `id, owner_id, name, title, bio, location, github, linkedin, website, avatar_url, skills`

// PostgresRepository stores profiles in the profiles table. Skills live in a
// jsonb array so their order is preserved as written.
type PostgresRepository struct {
	db dbx.DB
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	p := &models.Profile{}
	var (
		id, owner int64
		skills    []byte
	)

	err := row.Scan(&id, &owner, &p.Name, &p.Title, &p.Bio, &p.Location,
		&p.GitHub, &p.LinkedIn, &p.Website, &p.AvatarURL, &skills)
	if err != nil {
		return nil, err
	}

	p.ID = strconv.FormatInt(id, 10)
	p.OwnerID = strconv.FormatInt(owner, 10)

	p.Skills = []models.Skill{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &p.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
	}
	return p, nil
}

// parseID converts a public identifier into the bigint key. Identifiers
// that are not decimal integers cannot exist in the table.
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	return n, err == nil
}

func (r *PostgresRepository) List(ctx context.Context, skillFilter string) ([]*models.Profile, error) {
	query :=
		`SELECT ` + profileColumns + ` FROM profiles
		 WHERE $1 = '' OR EXISTS (
		   SELECT 1 FROM jsonb_array_elements(skills) s
		   WHERE strpos(lower(s->>'name'), lower($1)) > 0
		 )
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, skillFilter)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.getOne(ctx, r.db, query, key)
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Profile, error) {
	key, ok := parseID(ownerID)
	if !ok {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1`
	return r.getOne(ctx, r.db, query, key)
}

func (r *PostgresRepository) getOne(ctx context.Context, db dbx.DBTX, query string, arg any) (*models.Profile, error) {
	p, err := scanProfile(db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

const lockByOwnerQuery = `SELECT ` + profileColumns + ` FROM profiles WHERE owner_id = $1 FOR UPDATE`

// Upsert locks the owner's row, merges fields in Go and writes the result
// back, all in one transaction. A row is inserted only when the owner has
// none yet, so updates never draw from the id sequence.
func (r *PostgresRepository) Upsert(ctx context.Context, ownerID string, fields models.ProfileUpsertFields) (*models.Profile, bool, error) {
	owner, ok := parseID(ownerID)
	if !ok {
		return nil, false, fmt.Errorf("invalid owner id %q: %w", ownerID, common.ErrInvalidToken)
	}

	var (
		result  *models.Profile
		created bool
	)

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := r.getOne(ctx, tx, lockByOwnerQuery, owner)
		if errors.Is(err, common.ErrorNotFound) {
			p, created, err = r.insertOrLock(ctx, tx, owner)
		}
		if err != nil {
			return err
		}

		p.Apply(fields)
		key, _ := parseID(p.ID)

		skills, err := json.Marshal(p.Skills)
		if err != nil {
			return fmt.Errorf("encode skills: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE profiles
			 SET name = $2, title = $3, bio = $4, location = $5,
			     github = $6, linkedin = $7, website = $8, avatar_url = $9,
			     skills = $10, updated_at = now()
			 WHERE id = $1`,
			key, p.Name, p.Title, p.Bio, p.Location,
			p.GitHub, p.LinkedIn, p.Website, p.AvatarURL, string(skills))
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

// insertOrLock creates an empty row for owner. If a concurrent transaction
// inserted it first, that row is locked and returned instead.
func (r *PostgresRepository) insertOrLock(ctx context.Context, tx dbx.DBTX, owner int64) (*models.Profile, bool, error) {
	p, err := scanProfile(tx.QueryRowContext(ctx,
		`INSERT INTO profiles (owner_id) VALUES ($1)
		 ON CONFLICT (owner_id) DO NOTHING
		 RETURNING `+profileColumns, owner))
	switch {
	case err == nil:
		return p, true, nil
	case errors.Is(err, sql.ErrNoRows):
		p, err = r.getOne(ctx, tx, lockByOwnerQuery, owner)
		return p, false, err
	default:
		return nil, false, fmt.Errorf("db error: %w", err)
	}
}
