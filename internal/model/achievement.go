package model

import "time"

type AchievementCriteria string

const (
	CriteriaFirstSession AchievementCriteria = "first_session"
	CriteriaStreakDays   AchievementCriteria = "streak_days"
	CriteriaTotalPoints  AchievementCriteria = "total_points"
	CriteriaPostCount    AchievementCriteria = "post_count"
)

// Achievement is a catalog definition; unlocks live in UserAchievement.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	Code        string              `gorm:"size:50;unique;not null" json:"code"`
	Name        string              `gorm:"size:100;not null" json:"name"`
	Description string              `gorm:"size:255" json:"description"`
	Icon        string              `gorm:"size:255" json:"icon"`
	Criteria    AchievementCriteria `gorm:"size:30;not null" json:"criteria"`
	Threshold   int                 `gorm:"default:0" json:"threshold"`
	Enabled     bool                `gorm:"default:true" json:"enabled"`
}

func (Achievement) TableName() string {
	return "achievements"
}

type UserAchievement struct {
	BaseModel
	UserID        uint        `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_user_achievement" json:"userId"`
	AchievementID uint        `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_user_achievement" json:"achievementId"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
	UnlockedAt    time.Time   `json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
