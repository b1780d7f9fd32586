package model

type ActivityType string

const (
	ActivitySessionCompleted ActivityType = "session_completed"
	ActivityWeekCompleted    ActivityType = "week_completed"
	ActivityPostCreated      ActivityType = "post_created"
	ActivityReplyCreated     ActivityType = "reply_created"
	ActivityAchievement      ActivityType = "achievement_unlocked"
)

// UserActivity is the append-only event log behind the activity feed. It doubles
// as a secondary points source next to weekly progress rows.
// swagger:model UserActivity
type UserActivity struct {
	BaseModel
	UserID       uint         `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	ActivityType ActivityType `gorm:"size:40;not null;index" json:"activityType"`
	Description  string       `gorm:"size:255" json:"description"`
	PointsEarned int          `gorm:"default:0" json:"pointsEarned"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
