package models

import "time"

// Goal tracks a free-text objective with a progress percentage in [0,100].
type Goal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Goal        string    `gorm:"type:varchar(500);not null" json:"goal"`
	ActionSteps string    `gorm:"type:text" json:"action_steps"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ClampProgress confines a progress percentage to [0,100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// InProgress reports whether the goal is started but not finished.
func (g *Goal) InProgress() bool {
	return g.Progress > 0 && g.Progress < 100
}
