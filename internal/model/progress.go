package model

import "time"

// UserProgress tracks one (user, week) of the course. WeekNumber is unique per
// user so completion and points accumulate on a single row per week.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_week" json:"userId"`
	WeekNumber  int        `gorm:"not null;uniqueIndex:idx_user_week" json:"weekNumber"`
	TotalPoints int        `gorm:"default:0" json:"totalPoints"`
	StudyStreak int        `gorm:"default:0" json:"studyStreak"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
