package repository

import (
	"github.com/elaralabs/elara/app/models"
	"gorm.io/gorm"
)

// goalRepository implements the GoalRepository interface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance
func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Create creates a new goal for its owner
func (r *goalRepository) Create(goal *models.Goal) error {
	goal.Progress = models.ClampProgress(goal.Progress)
	return r.db.Create(goal).Error
}

// ListByUserID returns the owner's goals in insertion order
func (r *goalRepository) ListByUserID(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}

// Update overwrites the goal's fields, scoped by owner
func (r *goalRepository) Update(userID, id uint, goal *models.Goal) error {
	return r.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"goal":         goal.Goal,
			"action_steps": goal.ActionSteps,
			"progress":     models.ClampProgress(goal.Progress),
		}).Error
}

// Delete removes the goal, scoped by owner
func (r *goalRepository) Delete(userID, id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Goal{}).Error
}
