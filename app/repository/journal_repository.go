package repository

import (
	"github.com/elaralabs/elara/app/models"
	"gorm.io/gorm"
)

// journalRepository implements the JournalRepository interface
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository instance
func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

// Create creates a new journal entry for its owner
func (r *journalRepository) Create(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

// ListByUserID returns the owner's journal entries, newest date first
func (r *journalRepository) ListByUserID(userID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.Where("user_id = ?", userID).Order("jdate DESC").Find(&entries).Error
	return entries, err
}

// Update overwrites the entry's fields, scoped by owner
func (r *journalRepository) Update(userID, id uint, entry *models.JournalEntry) error {
	return r.db.Model(&models.JournalEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"jdate":     entry.JDate,
			"mood":      entry.Mood,
			"stress":    entry.Stress,
			"gratitude": entry.Gratitude,
			"highlight": entry.Highlight,
			"notes":     entry.Notes,
		}).Error
}

// Delete removes the entry, scoped by owner
func (r *journalRepository) Delete(userID, id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.JournalEntry{}).Error
}
