package sandbox

import (
	"context"
	"errors"
	"fmt"

	"inventory-seeder/core/catalog"
	"inventory-seeder/feature/sandbox/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches.
var ErrNotFound = errors.New("not found")

// Store persists records through GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the records table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.Record{}); err != nil {
		return fmt.Errorf("failed to migrate sandbox store: %w", err)
	}
	return nil
}

// List returns every record of kind ordered by id.
func (s *Store) List(ctx context.Context, kind catalog.Kind) ([]models.Record, error) {
	var records []models.Record
	if err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return records, nil
}

// Get returns the record of kind with id.
func (s *Store) Get(ctx context.Context, kind catalog.Kind, id uint) (*models.Record, error) {
	var rec models.Record
	err := s.db.WithContext(ctx).Where("kind = ? AND id = ?", string(kind), id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	return &rec, nil
}

// FindByKey returns the record with the given natural key.
func (s *Store) FindByKey(ctx context.Context, kind catalog.Kind, scopeID uint, key string) (*models.Record, error) {
	var rec models.Record
	err := s.db.WithContext(ctx).
		Where(map[string]any{"kind": string(kind), "scope_id": scopeID, "key": key}).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s %q: %w", kind, key, err)
	}
	return &rec, nil
}

// Create inserts rec and sets its id.
func (s *Store) Create(ctx context.Context, rec *models.Record) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create %s %q: %w", rec.Kind, rec.Key, err)
	}
	return nil
}

// Save updates an existing record.
func (s *Store) Save(ctx context.Context, rec *models.Record) error {
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("failed to update %s %d: %w", rec.Kind, rec.ID, err)
	}
	return nil
}
