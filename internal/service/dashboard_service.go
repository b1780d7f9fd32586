package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type DashboardService struct {
	StreakService   *StreakService
	ProgressService *ProgressService
	ActivityRepo    *repository.ActivityRepository
	AchievementRepo *repository.AchievementRepository
}

func NewDashboardService(
	streakService *StreakService,
	progressService *ProgressService,
	activityRepo *repository.ActivityRepository,
	achievementRepo *repository.AchievementRepository,
) *DashboardService {
	return &DashboardService{
		StreakService:   streakService,
		ProgressService: progressService,
		ActivityRepo:    activityRepo,
		AchievementRepo: achievementRepo,
	}
}

type Dashboard struct {
	Streak           *StreakSummary          `json:"streak"`
	Progress         *ProgressSummary        `json:"progress"`
	TotalPoints      int                     `json:"totalPoints"`
	RecentActivities []model.UserActivity    `json:"recentActivities"`
	Achievements     []model.UserAchievement `json:"achievements"`
}

// GetUserDashboard recomputes every aggregate from the store; there is no
// cross-request cache of derived numbers.
func (s *DashboardService) GetUserDashboard(userID uint) (*Dashboard, error) {
	streak, err := s.StreakService.GetStreakSummary(userID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressService.GetProgressSummary(userID)
	if err != nil {
		return nil, err
	}

	totalPoints, err := s.ProgressService.TotalPoints(userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.ActivityRepo.FindRecentByUser(userID, 10)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindUnlockedByUser(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Streak:           streak,
		Progress:         progress,
		TotalPoints:      totalPoints,
		RecentActivities: activities,
		Achievements:     achievements,
	}, nil
}
