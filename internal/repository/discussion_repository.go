package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type DiscussionRepository struct {
	DB *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) *DiscussionRepository {
	return &DiscussionRepository{DB: db}
}

func (r *DiscussionRepository) CreatePost(post *model.DiscussionPost) error {
	return r.DB.Create(post).Error
}

func (r *DiscussionRepository) FindPostByID(id string) (*model.DiscussionPost, error) {
	var post model.DiscussionPost
	err := r.DB.Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *DiscussionRepository) FindPosts(page, limit int) ([]model.DiscussionPost, int64, error) {
	var posts []model.DiscussionPost
	var total int64

	q := r.DB.Model(&model.DiscussionPost{})
	q.Count(&total)

	err := q.Preload("Author").
		Order("is_pinned DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *DiscussionRepository) DeletePost(id string) error {
	return r.DB.Delete(&model.DiscussionPost{}, "id = ?", id).Error
}

func (r *DiscussionRepository) FindRepliesByPost(postID string) ([]model.DiscussionReply, error) {
	var replies []model.DiscussionReply
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

func (r *DiscussionRepository) CountPostsByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.DiscussionPost{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountPostsGroupedByUser returns post counts keyed by user id, for the
// leaderboard join.
func (r *DiscussionRepository) CountPostsGroupedByUser() (map[uint]int, error) {
	type row struct {
		UserID uint
		Cnt    int
	}
	var rows []row
	err := r.DB.Model(&model.DiscussionPost{}).
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
