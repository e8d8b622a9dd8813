package repository

import (
	"github.com/elaralabs/elara/app/models"
	"gorm.io/gorm"
)

// habitRepository implements the HabitRepository interface
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

// Create creates a new habit for its owner
func (r *habitRepository) Create(habit *models.Habit) error {
	return r.db.Create(habit).Error
}

// ListByUserID returns the owner's habits in insertion order
func (r *habitRepository) ListByUserID(userID uint) ([]models.Habit, error) {
	var habits []models.Habit
	err := r.db.Where("user_id = ?", userID).Find(&habits).Error
	return habits, err
}

// Update overwrites the habit's fields, scoped by owner
func (r *habitRepository) Update(userID, id uint, habit *models.Habit) error {
	return r.db.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"habit": habit.Habit,
			"mon":   habit.Mon,
			"tue":   habit.Tue,
			"wed":   habit.Wed,
			"thu":   habit.Thu,
			"fri":   habit.Fri,
			"sat":   habit.Sat,
			"sun":   habit.Sun,
		}).Error
}

// Delete removes the habit, scoped by owner
func (r *habitRepository) Delete(userID, id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Habit{}).Error
}
