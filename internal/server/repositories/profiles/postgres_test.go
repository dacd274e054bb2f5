package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/skillboard/internal/common"
	"github.com/dmitrijs2005/skillboard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "owner_id", "name", "title", "bio", "location", "github", "linkedin", "website", "avatar_url", "skills"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func johnRow() *sqlmock.Rows {
	return sqlmock.NewRows(cols).AddRow(
		int64(1), int64(1), "John Doe", "Full Stack Developer", "bio", "San Francisco, CA",
		"https://github.com/johndoe", "", "", "",
		[]byte(`[{"id":"1","name":"JavaScript","level":5},{"id":"2","name":"React","level":4}]`),
	)
}

func TestList_PassesFilterAndScans(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM profiles.+jsonb_array_elements\(skills\).+ORDER BY id`).
		WithArgs("react").
		WillReturnRows(johnRow())

	got, err := repo.List(context.Background(), "react")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "1", got[0].OwnerID)
	assert.Equal(t, []models.Skill{{ID: "1", Name: "JavaScript", Level: 5}, {ID: "2", Name: "React", Level: 4}}, got[0].Skills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles`).WithArgs("Rust").WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.List(context.Background(), "Rust")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), "")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).WithArgs(int64(1)).WillReturnRows(johnRow())
	p, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetByID(context.Background(), "abc")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByOwner_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE owner_id = \$1`).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByOwner(context.Background(), "5")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpsert_UpdatesExisting(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE owner_id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(johnRow())
	mock.ExpectExec(`UPDATE profiles`).
		WithArgs(int64(1), "John Doe", "B", "bio", "San Francisco, CA",
			"https://github.com/johndoe", "", "", "",
			`[{"id":"1","name":"JavaScript","level":5},{"id":"2","name":"React","level":4}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	title := "B"
	p, created, err := repo.Upsert(context.Background(), "1", models.ProfileUpsertFields{Title: &title})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "B", p.Title)
	assert.Len(t, p.Skills, 2)
	// No INSERT was expected, so an update must not touch the id sequence.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_CreatesNew(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FOR UPDATE`).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO profiles \(owner_id\) VALUES \(\$1\)\s+ON CONFLICT \(owner_id\) DO NOTHING\s+RETURNING id, owner_id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(3), int64(3), "", "", "", "", "", "", "", "", []byte(`[]`)))
	mock.ExpectExec(`UPDATE profiles`).
		WithArgs(int64(3), "New", "", "", "", "", "", "", "", `[{"id":"s1","name":"Go","level":5}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	name := "New"
	sk := []models.Skill{{ID: "s1", Name: "Go", Level: 5}}
	p, created, err := repo.Upsert(context.Background(), "3", models.ProfileUpsertFields{Name: &name, Skills: &sk})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "3", p.ID)
	assert.Equal(t, "3", p.OwnerID)
	assert.Equal(t, sk, p.Skills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ConcurrentInsertFallsBackToLock(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FOR UPDATE`).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO profiles`).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT .+ FOR UPDATE`).WithArgs(int64(1)).WillReturnRows(johnRow())
	mock.ExpectExec(`UPDATE profiles`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	bio := "new bio"
	p, created, err := repo.Upsert(context.Background(), "1", models.ProfileUpsertFields{Bio: &bio})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "new bio", p.Bio)
	assert.Equal(t, "John Doe", p.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RollsBackOnUpdateError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FOR UPDATE`).WillReturnRows(johnRow())
	mock.ExpectExec(`UPDATE profiles`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, _, err := repo.Upsert(context.Background(), "1", models.ProfileUpsertFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FOR UPDATE`).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO profiles`).WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	_, _, err := repo.Upsert(context.Background(), "4", models.ProfileUpsertFields{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: conn reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RejectsNonNumericOwner(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	_, _, err := repo.Upsert(context.Background(), "abc", models.ProfileUpsertFields{})
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.NoError(t, mock.ExpectationsWereMet())
}
