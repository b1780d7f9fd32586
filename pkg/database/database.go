package database

import (
	"fmt"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.CourseContent{},
		&model.UserProgress{},
		&model.UserStudySession{},
		&model.UserActivity{},
		&model.DiscussionPost{},
		&model.DiscussionReply{},
		&model.PostLike{},
		&model.Achievement{},
		&model.UserAchievement{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedAchievements(db)

	return db, nil
}

// seedAchievements inserts the default catalog on an empty table so a fresh
// install has something to unlock.
func seedAchievements(db *gorm.DB) {
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Achievement{
		{Code: "first_steps", Name: "First Steps", Description: "Complete your first study session", Icon: "footprints", Criteria: model.CriteriaFirstSession, Threshold: 1, Enabled: true},
		{Code: "on_a_roll", Name: "On a Roll", Description: "Study 3 days in a row", Icon: "flame", Criteria: model.CriteriaStreakDays, Threshold: 3, Enabled: true},
		{Code: "week_warrior", Name: "Week Warrior", Description: "Study 7 days in a row", Icon: "calendar", Criteria: model.CriteriaStreakDays, Threshold: 7, Enabled: true},
		{Code: "unstoppable", Name: "Unstoppable", Description: "Study 30 days in a row", Icon: "trophy", Criteria: model.CriteriaStreakDays, Threshold: 30, Enabled: true},
		{Code: "point_collector", Name: "Point Collector", Description: "Earn 100 points", Icon: "star", Criteria: model.CriteriaTotalPoints, Threshold: 100, Enabled: true},
		{Code: "high_achiever", Name: "High Achiever", Description: "Earn 500 points", Icon: "medal", Criteria: model.CriteriaTotalPoints, Threshold: 500, Enabled: true},
		{Code: "conversation_starter", Name: "Conversation Starter", Description: "Create your first discussion post", Icon: "message-circle", Criteria: model.CriteriaPostCount, Threshold: 1, Enabled: true},
		{Code: "community_voice", Name: "Community Voice", Description: "Create 10 discussion posts", Icon: "megaphone", Criteria: model.CriteriaPostCount, Threshold: 10, Enabled: true},
	}
	for _, a := range defaults {
		db.Create(&a)
	}

	log.Printf("Seeded %d default achievements", len(defaults))
}
