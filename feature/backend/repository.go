package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flatacuties/core/database"
	"flatacuties/feature/characters/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no character has the requested id.
var ErrNotFound = errors.New("character not found")

var requiredColumns = []string{"id", "name", "image", "votes"}

// Repository stores characters with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the characters table and verifies its columns.
func (r *Repository) Migrate(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.AutoMigrate(&models.Character{}); err != nil {
		return fmt.Errorf("failed to migrate characters: %w", err)
	}

	missing, err := database.MissingColumns(db, models.Character{}.TableName(), requiredColumns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("characters table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// List returns every character ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Character, error) {
	var records []models.Character
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return records, nil
}

// Get returns the character with id.
func (r *Repository) Get(ctx context.Context, id int) (models.Character, error) {
	var rec models.Character
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Character{}, ErrNotFound
	}
	if err != nil {
		return models.Character{}, fmt.Errorf("failed to get character %d: %w", id, err)
	}
	return rec, nil
}

// UpdateVotes sets the vote count of id and returns the stored record.
func (r *Repository) UpdateVotes(ctx context.Context, id int, votes int) (models.Character, error) {
	res := r.db.WithContext(ctx).Model(&models.Character{}).Where("id = ?", id).Update("votes", votes)
	if res.Error != nil {
		return models.Character{}, fmt.Errorf("failed to update votes of %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Character{}, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Create stores rec with a fresh id and returns it.
func (r *Repository) Create(ctx context.Context, rec models.Character) (models.Character, error) {
	rec.ID = 0
	rec = rec.Normalize()
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return models.Character{}, fmt.Errorf("failed to create character: %w", err)
	}
	return rec, nil
}

// Count returns the number of stored characters.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Character{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}
	return count, nil
}

// Seed inserts records, keeping their ids, when the table is empty.
// It returns how many records were inserted.
func (r *Repository) Seed(ctx context.Context, records []models.Character) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || len(records) == 0 {
		return 0, nil
	}

	rows := make([]models.Character, len(records))
	for i, rec := range records {
		rows[i] = rec.Normalize()
	}
	if err := r.db.WithContext(ctx).CreateInBatches(rows, 100).Error; err != nil {
		return 0, fmt.Errorf("failed to seed characters: %w", err)
	}
	return len(rows), nil
}
