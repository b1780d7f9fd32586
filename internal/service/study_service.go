package service

import (
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Points credited to the week's progress row for each completed session.
const sessionPoints = 10

type StudyService struct {
	DB                 *gorm.DB
	SessionRepo        *repository.SessionRepository
	ProgressRepo       *repository.ProgressRepository
	ActivityRepo       *repository.ActivityRepository
	StreakService      *StreakService
	AchievementService *AchievementService
	Hub                *ActivityHub
}

func NewStudyService(
	db *gorm.DB,
	sessionRepo *repository.SessionRepository,
	progressRepo *repository.ProgressRepository,
	activityRepo *repository.ActivityRepository,
	streakService *StreakService,
	achievementService *AchievementService,
	hub *ActivityHub,
) *StudyService {
	return &StudyService{
		DB:                 db,
		SessionRepo:        sessionRepo,
		ProgressRepo:       progressRepo,
		ActivityRepo:       activityRepo,
		StreakService:      streakService,
		AchievementService: achievementService,
		Hub:                hub,
	}
}

type CompleteSessionRequest struct {
	ContentID       uint `json:"contentId"`
	WeekNumber      int  `json:"weekNumber" binding:"required,min=1"`
	DurationMinutes int  `json:"durationMinutes" binding:"min=0"`
	CompleteWeek    bool `json:"completeWeek"`
}

// StartSession records an attempt that has not been completed yet.
func (s *StudyService) StartSession(userID, contentID uint) (*model.UserStudySession, error) {
	session := &model.UserStudySession{
		UserID:    userID,
		ContentID: contentID,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession inserts the session row, credits the week's progress row and
// appends the activity event in a single transaction, so a failure partway
// cannot leave the aggregates inconsistent. Feed publication and achievement
// checks run after commit and are best-effort.
func (s *StudyService) CompleteSession(userID uint, req CompleteSessionRequest) (*model.UserStudySession, error) {
	if req.WeekNumber < 1 {
		return nil, util.ErrInvalidWeek
	}

	var session model.UserStudySession
	var activity model.UserActivity

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		session = model.UserStudySession{
			UserID:          userID,
			ContentID:       req.ContentID,
			Completed:       true,
			SessionDuration: req.DurationMinutes,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		var progress model.UserProgress
		err := tx.Where("user_id = ? AND week_number = ?", userID, req.WeekNumber).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = model.UserProgress{
				UserID:     userID,
				WeekNumber: req.WeekNumber,
			}
		} else if err != nil {
			return err
		}

		progress.TotalPoints += sessionPoints
		if req.CompleteWeek && !progress.IsCompleted {
			progress.IsCompleted = true
			now := time.Now()
			progress.CompletedAt = &now
		}
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		activity = model.UserActivity{
			UserID:       userID,
			ActivityType: model.ActivitySessionCompleted,
			Description:  fmt.Sprintf("Completed a study session in week %d", req.WeekNumber),
			PointsEarned: sessionPoints,
		}
		if req.CompleteWeek {
			activity.ActivityType = model.ActivityWeekCompleted
			activity.Description = fmt.Sprintf("Completed week %d", req.WeekNumber)
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}

	s.refreshStreak(userID, req.WeekNumber)

	if s.Hub != nil {
		s.Hub.PublishActivity(&activity)
	}
	if s.AchievementService != nil {
		if err := s.AchievementService.EvaluateForUser(userID); err != nil {
			logger.Log.Warn("achievement evaluation failed", zap.Uint("userId", userID), zap.Error(err))
		}
	}

	return &session, nil
}

func (s *StudyService) GetSessions(userID uint, limit int) ([]model.UserStudySession, error) {
	return s.SessionRepo.FindByUser(userID, limit)
}

// refreshStreak recomputes the streak and stores it on the week's progress row.
// Derived data only, so a failure is logged rather than surfaced.
func (s *StudyService) refreshStreak(userID uint, week int) {
	summary, err := s.StreakService.GetStreakSummary(userID)
	if err != nil {
		logger.Log.Warn("streak refresh failed", zap.Uint("userId", userID), zap.Error(err))
		return
	}

	err = s.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND week_number = ?", userID, week).
		Update("study_streak", summary.CurrentStreak).Error
	if err != nil {
		logger.Log.Warn("streak column update failed", zap.Uint("userId", userID), zap.Error(err))
	}
}
