package service

import (
	"errors"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	likeTargetPost  = "post"
	likeTargetReply = "reply"
)

type DiscussionService struct {
	DB                 *gorm.DB
	DiscussionRepo     *repository.DiscussionRepository
	ActivityRepo       *repository.ActivityRepository
	AchievementService *AchievementService
	Hub                *ActivityHub
}

func NewDiscussionService(
	db *gorm.DB,
	discussionRepo *repository.DiscussionRepository,
	activityRepo *repository.ActivityRepository,
	achievementService *AchievementService,
	hub *ActivityHub,
) *DiscussionService {
	return &DiscussionService{
		DB:                 db,
		DiscussionRepo:     discussionRepo,
		ActivityRepo:       activityRepo,
		AchievementService: achievementService,
		Hub:                hub,
	}
}

type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

type ReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *DiscussionService) CreatePost(userID uint, req PostRequest) (*model.DiscussionPost, error) {
	post := &model.DiscussionPost{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	var activity model.UserActivity
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		activity = model.UserActivity{
			UserID:       userID,
			ActivityType: model.ActivityPostCreated,
			Description:  "Started a discussion",
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.PublishActivity(&activity)
	}
	if s.AchievementService != nil {
		if err := s.AchievementService.EvaluateForUser(userID); err != nil {
			logger.Log.Warn("achievement evaluation failed", zap.Uint("userId", userID), zap.Error(err))
		}
	}

	return post, nil
}

func (s *DiscussionService) GetPosts(page, limit int) ([]model.DiscussionPost, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.DiscussionRepo.FindPosts(page, limit)
}

func (s *DiscussionService) GetPostDetail(id string) (*model.DiscussionPost, error) {
	post, err := s.DiscussionRepo.FindPostByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}

	replies, err := s.DiscussionRepo.FindRepliesByPost(id)
	if err != nil {
		return nil, err
	}
	post.Replies = replies
	return post, nil
}

// CreateReply inserts the reply and bumps the parent's replies_count in one
// transaction so the counter cannot drift from the rows.
func (s *DiscussionService) CreateReply(userID uint, postID string, req ReplyRequest) (*model.DiscussionReply, error) {
	if _, err := s.DiscussionRepo.FindPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPostNotFound
		}
		return nil, err
	}

	reply := &model.DiscussionReply{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}

	var activity model.UserActivity
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		err := tx.Model(&model.DiscussionPost{}).
			Where("id = ?", postID).
			Update("replies_count", gorm.Expr("replies_count + 1")).Error
		if err != nil {
			return err
		}
		activity = model.UserActivity{
			UserID:       userID,
			ActivityType: model.ActivityReplyCreated,
			Description:  "Replied to a discussion",
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.PublishActivity(&activity)
	}

	return reply, nil
}

// ToggleLike likes or unlikes a post or reply, keeping the counter and the
// like rows consistent inside a transaction. Returns whether the content is
// liked after the call.
func (s *DiscussionService) ToggleLike(userID uint, contentType, contentID string) (bool, error) {
	if contentType != likeTargetPost && contentType != likeTargetReply {
		return false, util.ErrPostNotFound
	}

	liked := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// The target must exist, otherwise an orphan like row would be written
		// while the counter update matches nothing.
		var targetCount int64
		if contentType == likeTargetPost {
			if err := tx.Model(&model.DiscussionPost{}).Where("id = ?", contentID).Count(&targetCount).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&model.DiscussionReply{}).Where("id = ?", contentID).Count(&targetCount).Error; err != nil {
				return err
			}
		}
		if targetCount == 0 {
			return util.ErrPostNotFound
		}

		var like model.PostLike
		err := tx.Where("user_id = ? AND content_type = ? AND content_id = ?", userID, contentType, contentID).
			First(&like).Error

		delta := 1
		if err == nil {
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			delta = -1
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			like = model.PostLike{
				UserID:      userID,
				ContentType: contentType,
				ContentID:   contentID,
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		} else {
			return err
		}

		if contentType == likeTargetPost {
			return tx.Model(&model.DiscussionPost{}).
				Where("id = ?", contentID).
				Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
		}
		return tx.Model(&model.DiscussionReply{}).
			Where("id = ?", contentID).
			Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (s *DiscussionService) DeletePost(userID uint, role model.UserRole, postID string) error {
	post, err := s.DiscussionRepo.FindPostByID(postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPostNotFound
	}
	if err != nil {
		return err
	}

	if post.UserID != userID && role != model.Admin {
		return util.ErrPermissionDenied
	}
	return s.DiscussionRepo.DeletePost(postID)
}
