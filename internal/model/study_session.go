package model

// UserStudySession is an append-only log of study attempts. Completed sessions
// feed the streak calculation; duration is in minutes.
// swagger:model UserStudySession
type UserStudySession struct {
	BaseModel
	UserID          uint `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	ContentID       uint `gorm:"index;type:bigint unsigned" json:"contentId"`
	Completed       bool `gorm:"default:false;index" json:"completed"`
	SessionDuration int  `gorm:"default:0" json:"sessionDuration"`
}

func (UserStudySession) TableName() string {
	return "user_study_sessions"
}
