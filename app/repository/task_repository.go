package repository

import (
	"github.com/elaralabs/elara/app/models"
	"gorm.io/gorm"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task for its owner
func (r *taskRepository) Create(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskStatusNotStarted
	}
	return r.db.Create(task).Error
}

// ListByUserID returns the owner's tasks ordered by due date ascending,
// then priority descending. Priority is an ordinal label, so the tiebreak
// is applied in Go rather than by lexical SQL ordering.
func (r *taskRepository) ListByUserID(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	models.SortTasks(tasks)
	return tasks, nil
}

// Update overwrites the task's fields, scoped by owner. An id that does not
// belong to the owner matches zero rows and is not an error.
func (r *taskRepository) Update(userID, id uint, task *models.Task) error {
	return r.db.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"task":     task.Task,
			"project":  task.Project,
			"priority": task.Priority,
			"due_date": task.DueDate,
			"status":   task.Status,
		}).Error
}

// Delete removes the task, scoped by owner
func (r *taskRepository) Delete(userID, id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{}).Error
}
