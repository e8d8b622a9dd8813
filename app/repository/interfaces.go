package repository

import (
	"github.com/elaralabs/elara/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByStripeCustomerID(customerID string) (*models.User, error)
	Update(user *models.User) error
	SetStripeCustomerID(userID uint, customerID string) error
	Count() (int64, error)
}

// TaskRepository defines owner-scoped task operations. Update and Delete
// silently affect zero rows when the id is not owned by the caller.
type TaskRepository interface {
	Create(task *models.Task) error
	ListByUserID(userID uint) ([]models.Task, error)
	Update(userID, id uint, task *models.Task) error
	Delete(userID, id uint) error
}

// HabitRepository defines owner-scoped habit operations.
type HabitRepository interface {
	Create(habit *models.Habit) error
	ListByUserID(userID uint) ([]models.Habit, error)
	Update(userID, id uint, habit *models.Habit) error
	Delete(userID, id uint) error
}

// GoalRepository defines owner-scoped goal operations.
type GoalRepository interface {
	Create(goal *models.Goal) error
	ListByUserID(userID uint) ([]models.Goal, error)
	Update(userID, id uint, goal *models.Goal) error
	Delete(userID, id uint) error
}

// JournalRepository defines owner-scoped journal operations.
type JournalRepository interface {
	Create(entry *models.JournalEntry) error
	ListByUserID(userID uint) ([]models.JournalEntry, error)
	Update(userID, id uint, entry *models.JournalEntry) error
	Delete(userID, id uint) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	Task    TaskRepository
	Habit   HabitRepository
	Goal    GoalRepository
	Journal JournalRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Task:    NewTaskRepository(db),
		Habit:   NewHabitRepository(db),
		Goal:    NewGoalRepository(db),
		Journal: NewJournalRepository(db),
	}
}
