package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	SessionRepo     *repository.SessionRepository
	ProgressRepo    *repository.ProgressRepository
	ActivityRepo    *repository.ActivityRepository
	DiscussionRepo  *repository.DiscussionRepository
	StreakService   *StreakService
	Hub             *ActivityHub
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	sessionRepo *repository.SessionRepository,
	progressRepo *repository.ProgressRepository,
	activityRepo *repository.ActivityRepository,
	discussionRepo *repository.DiscussionRepository,
	streakService *StreakService,
	hub *ActivityHub,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		SessionRepo:     sessionRepo,
		ProgressRepo:    progressRepo,
		ActivityRepo:    activityRepo,
		DiscussionRepo:  discussionRepo,
		StreakService:   streakService,
		Hub:             hub,
	}
}

type UserAchievementsView struct {
	Unlocked []model.UserAchievement `json:"unlocked"`
	Catalog  []model.Achievement     `json:"catalog"`
}

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievementsView, error) {
	unlocked, err := s.AchievementRepo.FindUnlockedByUser(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.AchievementRepo.FindEnabled()
	if err != nil {
		return nil, err
	}

	return &UserAchievementsView{
		Unlocked: unlocked,
		Catalog:  catalog,
	}, nil
}

// EvaluateForUser checks every enabled achievement against the user's current
// counters and unlocks the ones newly earned. Called after session completion
// and post creation.
func (s *AchievementService) EvaluateForUser(userID uint) error {
	catalog, err := s.AchievementRepo.FindEnabled()
	if err != nil {
		return err
	}

	counters, err := s.collectCounters(userID)
	if err != nil {
		return err
	}

	for _, achievement := range catalog {
		earned := false
		switch achievement.Criteria {
		case model.CriteriaFirstSession:
			earned = counters.completedSessions >= 1
		case model.CriteriaStreakDays:
			earned = counters.currentStreak >= achievement.Threshold
		case model.CriteriaTotalPoints:
			earned = counters.totalPoints >= achievement.Threshold
		case model.CriteriaPostCount:
			earned = counters.posts >= achievement.Threshold
		}
		if !earned {
			continue
		}

		unlocked, err := s.AchievementRepo.IsUnlocked(userID, achievement.ID)
		if err != nil {
			return err
		}
		if unlocked {
			continue
		}

		if err := s.unlock(userID, achievement); err != nil {
			return err
		}
	}
	return nil
}

type achievementCounters struct {
	completedSessions int
	currentStreak     int
	totalPoints       int
	posts             int
}

func (s *AchievementService) collectCounters(userID uint) (achievementCounters, error) {
	var counters achievementCounters

	sessions, err := s.SessionRepo.CountCompletedByUser(userID)
	if err != nil {
		return counters, err
	}
	counters.completedSessions = int(sessions)

	streak, err := s.StreakService.GetStreakSummary(userID)
	if err != nil {
		return counters, err
	}
	counters.currentStreak = streak.CurrentStreak

	progressPoints, err := s.ProgressRepo.SumPointsByUser(userID)
	if err != nil {
		return counters, err
	}
	activityPoints, err := s.ActivityRepo.SumPointsByUser(userID)
	if err != nil {
		return counters, err
	}
	counters.totalPoints = int(progressPoints + activityPoints)

	posts, err := s.DiscussionRepo.CountPostsByUser(userID)
	if err != nil {
		return counters, err
	}
	counters.posts = int(posts)

	return counters, nil
}

func (s *AchievementService) unlock(userID uint, achievement model.Achievement) error {
	unlock := &model.UserAchievement{
		UserID:        userID,
		AchievementID: achievement.ID,
		UnlockedAt:    time.Now(),
	}
	if err := s.AchievementRepo.Unlock(unlock); err != nil {
		return err
	}

	activity := &model.UserActivity{
		UserID:       userID,
		ActivityType: model.ActivityAchievement,
		Description:  "Unlocked achievement: " + achievement.Name,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		logger.Log.Warn("achievement activity insert failed", zap.Uint("userId", userID), zap.Error(err))
	} else if s.Hub != nil {
		s.Hub.PublishActivity(activity)
	}

	logger.Log.Info("achievement unlocked",
		zap.Uint("userId", userID),
		zap.String("code", achievement.Code),
	)
	return nil
}
