package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindEnabled() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("enabled = ?", true).Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindUnlockedByUser(userID uint) ([]model.UserAchievement, error) {
	var unlocks []model.UserAchievement
	err := r.DB.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlocks).Error
	return unlocks, err
}

func (r *AchievementRepository) CountUnlockedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserAchievement{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountUnlockedGroupedByUser returns unlock counts keyed by user id, for the
// leaderboard join.
func (r *AchievementRepository) CountUnlockedGroupedByUser() (map[uint]int, error) {
	type row struct {
		UserID uint
		Cnt    int
	}
	var rows []row
	err := r.DB.Model(&model.UserAchievement{}).
		Select("user_id, COUNT(*) as cnt").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, rw := range rows {
		counts[rw.UserID] = rw.Cnt
	}
	return counts, nil
}

func (r *AchievementRepository) Unlock(unlock *model.UserAchievement) error {
	return r.DB.Create(unlock).Error
}

func (r *AchievementRepository) IsUnlocked(userID, achievementID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&count).Error
	return count > 0, err
}
