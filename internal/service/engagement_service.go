package service

import (
	"learnhub_backend/internal/repository"
	"time"
)

// Scoring weights for the engagement rubric. Hand-chosen constants, not derived
// values; keep them together so tuning stays in one place.
const (
	engagementStreakWeight      = 5
	engagementPointsDivisor     = 10
	engagementPostWeight        = 5
	engagementAchievementWeight = 10
	engagementSessionWeight     = 15
	engagementMaxScore          = 100

	engagementActiveThreshold = 70
	engagementAtRiskThreshold = 30

	recentSessionWindow = 7 * 24 * time.Hour
)

type EngagementStatus string

const (
	StatusActive   EngagementStatus = "active"
	StatusAtRisk   EngagementStatus = "at-risk"
	StatusInactive EngagementStatus = "inactive"
)

type EngagementInput struct {
	Streak         int `json:"streak"`
	TotalPoints    int `json:"totalPoints"`
	ForumPosts     int `json:"forumPosts"`
	Achievements   int `json:"achievements"`
	RecentSessions int `json:"recentSessions"`
}

// EngagementScore maps raw counters to a bounded 0-100 score. Monotone
// non-decreasing in every input.
func EngagementScore(in EngagementInput) int {
	score := in.Streak*engagementStreakWeight +
		in.TotalPoints/engagementPointsDivisor +
		in.ForumPosts*engagementPostWeight +
		in.Achievements*engagementAchievementWeight +
		in.RecentSessions*engagementSessionWeight

	if score > engagementMaxScore {
		return engagementMaxScore
	}
	if score < 0 {
		return 0
	}
	return score
}

func ClassifyEngagement(score int) EngagementStatus {
	switch {
	case score >= engagementActiveThreshold:
		return StatusActive
	case score >= engagementAtRiskThreshold:
		return StatusAtRisk
	default:
		return StatusInactive
	}
}

type EngagementService struct {
	ProgressRepo    *repository.ProgressRepository
	ActivityRepo    *repository.ActivityRepository
	SessionRepo     *repository.SessionRepository
	DiscussionRepo  *repository.DiscussionRepository
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	StreakService   *StreakService
}

func NewEngagementService(
	progressRepo *repository.ProgressRepository,
	activityRepo *repository.ActivityRepository,
	sessionRepo *repository.SessionRepository,
	discussionRepo *repository.DiscussionRepository,
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
	streakService *StreakService,
) *EngagementService {
	return &EngagementService{
		ProgressRepo:    progressRepo,
		ActivityRepo:    activityRepo,
		SessionRepo:     sessionRepo,
		DiscussionRepo:  discussionRepo,
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		StreakService:   streakService,
	}
}

// CollectInput gathers the five raw counters for one student. Total points is
// the sum of weekly progress points and activity points earned.
func (s *EngagementService) CollectInput(userID uint) (EngagementInput, error) {
	var in EngagementInput

	streak, err := s.StreakService.GetStreakSummary(userID)
	if err != nil {
		return in, err
	}
	in.Streak = streak.CurrentStreak

	progressPoints, err := s.ProgressRepo.SumPointsByUser(userID)
	if err != nil {
		return in, err
	}
	activityPoints, err := s.ActivityRepo.SumPointsByUser(userID)
	if err != nil {
		return in, err
	}
	in.TotalPoints = int(progressPoints + activityPoints)

	posts, err := s.DiscussionRepo.CountPostsByUser(userID)
	if err != nil {
		return in, err
	}
	in.ForumPosts = int(posts)

	achievements, err := s.AchievementRepo.CountUnlockedByUser(userID)
	if err != nil {
		return in, err
	}
	in.Achievements = int(achievements)

	recent, err := s.SessionRepo.CountCompletedSince(userID, time.Now().Add(-recentSessionWindow))
	if err != nil {
		return in, err
	}
	in.RecentSessions = int(recent)

	return in, nil
}
