package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.UserActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindRecentByUser(userID uint, limit int) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindRecent(limit int) ([]model.UserActivity, error) {
	var activities []model.UserActivity
	err := r.DB.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) SumPointsByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.UserActivity{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&total).Error
	return total, err
}
