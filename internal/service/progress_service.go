package service

import (
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ContentRepo  *repository.ContentRepository
	ActivityRepo *repository.ActivityRepository
	Cfg          *config.Config
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	contentRepo *repository.ContentRepository,
	activityRepo *repository.ActivityRepository,
	cfg *config.Config,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		ContentRepo:  contentRepo,
		ActivityRepo: activityRepo,
		Cfg:          cfg,
	}
}

type ProgressSummary struct {
	TotalWeeks      int     `json:"totalWeeks"`
	CompletedWeeks  int     `json:"completedWeeks"`
	CurrentWeek     int     `json:"currentWeek"`
	PercentComplete float64 `json:"percentComplete"`
}

// ComputeProgress derives the progress block from completed-week and total-week
// counts. completedWeeks ≤ totalWeeks is a precondition on the input data;
// week numbers are unique per user so duplicates cannot inflate the count.
func ComputeProgress(completedWeeks, totalWeeks int) ProgressSummary {
	currentWeek := completedWeeks + 1
	if currentWeek > totalWeeks {
		currentWeek = totalWeeks
	}

	percent := 0.0
	if totalWeeks > 0 {
		percent = float64(completedWeeks) / float64(totalWeeks) * 100
	}

	return ProgressSummary{
		TotalWeeks:      totalWeeks,
		CompletedWeeks:  completedWeeks,
		CurrentWeek:     currentWeek,
		PercentComplete: percent,
	}
}

func (s *ProgressService) GetProgressSummary(userID uint) (*ProgressSummary, error) {
	totalWeeks, err := s.totalWeeks()
	if err != nil {
		return nil, err
	}

	completed, err := s.ProgressRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := ComputeProgress(int(completed), totalWeeks)
	return &summary, nil
}

func (s *ProgressService) GetWeeklyProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindByUserID(userID)
}

// totalWeeks is the highest published week number, falling back to the
// configured default when no content is published yet.
func (s *ProgressService) totalWeeks() (int, error) {
	maxWeek, err := s.ContentRepo.MaxPublishedWeek()
	if err != nil {
		return 0, err
	}
	if maxWeek <= 0 {
		return s.Cfg.Course.DefaultTotalWeeks, nil
	}
	return maxWeek, nil
}

// TotalPoints sums weekly progress points and activity points, the cumulative
// figure shown on the dashboard.
func (s *ProgressService) TotalPoints(userID uint) (int, error) {
	progressPoints, err := s.ProgressRepo.SumPointsByUser(userID)
	if err != nil {
		return 0, err
	}
	activityPoints, err := s.ActivityRepo.SumPointsByUser(userID)
	if err != nil {
		return 0, err
	}
	return int(progressPoints + activityPoints), nil
}
