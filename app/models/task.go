package models

import (
	"sort"
	"time"
)

const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"

	TaskStatusNotStarted = "Not Started"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// Task belongs to exactly one user; there is no cross-user visibility.
// DueDate is a plain YYYY-MM-DD date string, matching the wire format.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Task      string    `gorm:"type:varchar(500);not null" json:"task"`
	Project   string    `gorm:"type:varchar(191)" json:"project"`
	Priority  string    `gorm:"type:varchar(20)" json:"priority"`
	DueDate   string    `gorm:"type:varchar(10);index" json:"due_date"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Not Started'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TaskPriorityRank maps the ordinal priority labels to a sortable rank.
// Unknown labels rank below Low so malformed rows sink to the end.
func TaskPriorityRank(priority string) int {
	switch priority {
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	default:
		return 0
	}
}

// SortTasks orders tasks by due date ascending, then priority descending.
// The sort is stable so equal rows keep their insertion order.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DueDate != tasks[j].DueDate {
			return tasks[i].DueDate < tasks[j].DueDate
		}
		return TaskPriorityRank(tasks[i].Priority) > TaskPriorityRank(tasks[j].Priority)
	})
}
