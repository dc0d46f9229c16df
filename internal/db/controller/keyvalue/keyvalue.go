// Package keyvalue provides CRUD operations on the key_values table.
package keyvalue

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cinefolio/cinefolio/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrKeyNotFound is returned when a key is not present.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyEmpty is returned when an operation is called with an empty key.
	ErrKeyEmpty = errors.New("key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an entry by its key.
func Get(ctx context.Context, db *gorm.DB, name string) (*models.KeyValue, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrKeyEmpty
	}

	var entry models.KeyValue
	result := db.WithContext(ctx).Where(nameQueryPattern, name).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, result.Error
	}

	return &entry, nil
}

// GetAll retrieves all entries ordered by key.
func GetAll(ctx context.Context, db *gorm.DB) ([]models.KeyValue, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var entries []models.KeyValue
	result := db.WithContext(ctx).Order("name").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// Set creates or replaces the value stored under name.
func Set(ctx context.Context, db *gorm.DB, name string, value []byte) (*models.KeyValue, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrKeyEmpty
	}

	tx := db.WithContext(ctx)

	var entry models.KeyValue
	result := tx.Where(nameQueryPattern, name).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = models.KeyValue{Name: name, Value: value}
		if result = tx.Create(&entry); result.Error != nil {
			return nil, result.Error
		}

		return &entry, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	entry.Value = value
	if result = tx.Save(&entry); result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// Delete removes the entry stored under name.
func Delete(ctx context.Context, db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrKeyEmpty
	}

	result := db.WithContext(ctx).Where(nameQueryPattern, name).Delete(&models.KeyValue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrKeyNotFound
	}

	return nil
}
