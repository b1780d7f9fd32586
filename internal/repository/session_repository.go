package repository

import (
	"learnhub_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.UserStudySession) error {
	return r.DB.Create(session).Error
}

// FindCompletedByUser returns completed sessions newest first; the streak
// calculator only needs their timestamps.
func (r *SessionRepository) FindCompletedByUser(userID uint) ([]model.UserStudySession, error) {
	var sessions []model.UserStudySession
	err := r.DB.Where("user_id = ? AND completed = ?", userID, true).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByUser(userID uint, limit int) ([]model.UserStudySession, error) {
	var sessions []model.UserStudySession
	q := r.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) CountCompletedSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserStudySession{}).
		Where("user_id = ? AND completed = ? AND created_at >= ?", userID, true, since).
		Count(&count).Error
	return count, err
}

func (r *SessionRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserStudySession{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
