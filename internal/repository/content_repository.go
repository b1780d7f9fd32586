package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(content *model.CourseContent) error {
	return r.DB.Create(content).Error
}

func (r *ContentRepository) FindByID(id uint) (*model.CourseContent, error) {
	var content model.CourseContent
	err := r.DB.First(&content, id).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepository) Update(content *model.CourseContent) error {
	return r.DB.Save(content).Error
}

func (r *ContentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CourseContent{}, id).Error
}

func (r *ContentRepository) FindPublished() ([]model.CourseContent, error) {
	var contents []model.CourseContent
	err := r.DB.Where("is_published = ?", true).
		Order("week_number ASC, created_at ASC").
		Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) FindPublishedByWeek(week int) ([]model.CourseContent, error) {
	var contents []model.CourseContent
	err := r.DB.Where("is_published = ? AND week_number = ?", true, week).
		Order("created_at ASC").
		Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) FindAll(page, limit int) ([]model.CourseContent, int64, error) {
	var contents []model.CourseContent
	var total int64

	q := r.DB.Model(&model.CourseContent{})
	q.Count(&total)

	err := q.Order("week_number ASC, created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contents).Error
	return contents, total, err
}

// MaxPublishedWeek returns 0 when nothing is published; callers fall back to
// the configured default week count.
func (r *ContentRepository) MaxPublishedWeek() (int, error) {
	var maxWeek int
	err := r.DB.Model(&model.CourseContent{}).
		Where("is_published = ?", true).
		Select("COALESCE(MAX(week_number), 0)").
		Scan(&maxWeek).Error
	return maxWeek, err
}
