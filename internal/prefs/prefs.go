// Package prefs persists console UI preferences (dark mode and friends) so
// they survive across sessions. Unrelated to complaint data.
package prefs

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ccms-backend/internal/model"
)

// ErrNotFound is returned when a preference key has never been set.
var ErrNotFound = gorm.ErrRecordNotFound

// Service reads and writes preference key/value pairs.
type Service struct {
	db *gorm.DB
}

// NewService creates a preference service backed by the given database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the preference stored under key.
func (s *Service) Get(ctx context.Context, key string) (model.Preference, error) {
	var pref model.Preference
	if err := s.db.WithContext(ctx).First(&pref, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return model.Preference{}, fmt.Errorf("preference %q: %w", key, ErrNotFound)
		}
		return model.Preference{}, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return pref, nil
}

// Set stores value under key, replacing any previous value.
func (s *Service) Set(ctx context.Context, key, value string) (model.Preference, error) {
	pref := model.Preference{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return model.Preference{}, fmt.Errorf("failed to store preference %q: %w", key, err)
	}
	return pref, nil
}
