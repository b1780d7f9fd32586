package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserID(userID uint) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Order("week_number ASC").Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) FindByUserAndWeek(userID uint, week int) (*model.UserProgress, error) {
	var row model.UserProgress
	err := r.DB.Where("user_id = ? AND week_number = ?", userID, week).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAll returns every progress row across users; the leaderboard builder
// dedupes and ranks them in memory.
func (r *ProgressRepository) FindAll() ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) SumPointsByUser(userID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_points), 0)").
		Scan(&total).Error
	return total, err
}
