package models

import "time"

// JournalEntry is a dated reflection record with a mood label and a
// numeric stress level.
type JournalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	JDate     string    `gorm:"column:jdate;type:varchar(10);index" json:"date"`
	Mood      string    `gorm:"type:varchar(100)" json:"mood"`
	Stress    int       `gorm:"not null;default:0" json:"stress"`
	Gratitude string    `gorm:"type:text" json:"gratitude"`
	Highlight string    `gorm:"type:text" json:"highlight"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the original table name used by existing deployments.
func (JournalEntry) TableName() string {
	return "journal"
}
