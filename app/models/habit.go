package models

import "time"

// Habit carries a weekly bitmap of day flags (0/1) plus a label.
type Habit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Habit     string    `gorm:"type:varchar(191);not null" json:"habit"`
	Mon       int       `gorm:"not null;default:0" json:"mon"`
	Tue       int       `gorm:"not null;default:0" json:"tue"`
	Wed       int       `gorm:"not null;default:0" json:"wed"`
	Thu       int       `gorm:"not null;default:0" json:"thu"`
	Fri       int       `gorm:"not null;default:0" json:"fri"`
	Sat       int       `gorm:"not null;default:0" json:"sat"`
	Sun       int       `gorm:"not null;default:0" json:"sun"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DayTotal sums the weekly day flags for this habit.
func (h *Habit) DayTotal() int {
	return h.Mon + h.Tue + h.Wed + h.Thu + h.Fri + h.Sat + h.Sun
}
