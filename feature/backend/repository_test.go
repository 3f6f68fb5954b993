package backend

import (
	"context"
	"regexp"
	"testing"

	"flatacuties/core/database"
	"flatacuties/feature/characters/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seedCharacters = []models.Character{
	{ID: 1, Name: "Mr. Cute", Image: "mr-cute.png", Votes: 3},
	{ID: 2, Name: "Mx. Monkey", Image: "mx-monkey.png", Votes: 0},
	{ID: 5, Name: "Ms. Zebra", Image: "ms-zebra.png", Votes: 7},
}

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func seededRepository(t *testing.T) *Repository {
	t.Helper()
	repo := setupRepository(t)
	n, err := repo.Seed(context.Background(), seedCharacters)
	require.NoError(t, err)
	require.Equal(t, len(seedCharacters), n)
	return repo
}

func TestRepository_Seed(t *testing.T) {
	ctx := context.Background()
	repo := seededRepository(t)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedCharacters, records)

	// a populated table is never seeded again
	n, err := repo.Seed(ctx, []models.Character{{ID: 9, Name: "Extra", Image: "x.png"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo := seededRepository(t)

	rec, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ms. Zebra", rec.Name)

	_, err = repo.Get(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_UpdateVotes(t *testing.T) {
	ctx := context.Background()
	repo := seededRepository(t)

	rec, err := repo.UpdateVotes(ctx, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, models.Character{ID: 2, Name: "Mx. Monkey", Image: "mx-monkey.png", Votes: 4}, rec)

	rec, err = repo.UpdateVotes(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Votes)

	_, err = repo.UpdateVotes(ctx, 42, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := seededRepository(t)

	rec, err := repo.Create(ctx, models.Character{ID: 1, Name: "Dr. Owl", Image: "owl.png", Votes: -2})
	require.NoError(t, err)
	assert.Equal(t, models.Character{ID: 6, Name: "Dr. Owl", Image: "owl.png", Votes: 0}, rec)

	stored, err := repo.Get(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestRepository_MigrateVerifiesColumns(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))

	missing, err := database.MissingColumns(db, "characters", requiredColumns...)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func setupMySQLMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewRepository(db), mock
}

func TestRepository_MySQL(t *testing.T) {
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		rows := sqlmock.NewRows([]string{"id", "name", "image", "votes"}).
			AddRow(1, "Mr. Cute", "mr-cute.png", 3).
			AddRow(2, "Mx. Monkey", "mx-monkey.png", 0)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `characters` ORDER BY id")).WillReturnRows(rows)

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, seedCharacters[:2], records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateVotes Not Found", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `characters` SET `votes`=? WHERE id = ?")).
			WithArgs(4, 42).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateVotes(ctx, 42, 4)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count Error", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `characters`")).
			WillReturnError(assert.AnError)

		_, err := repo.Seed(ctx, seedCharacters)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
