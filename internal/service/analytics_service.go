package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type AnalyticsService struct {
	UserRepo          *repository.UserRepository
	EngagementService *EngagementService
}

func NewAnalyticsService(userRepo *repository.UserRepository, engagementService *EngagementService) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:          userRepo,
		EngagementService: engagementService,
	}
}

type StudentEngagement struct {
	UserID   uint             `json:"userId"`
	FullName string           `json:"fullName"`
	Email    string           `json:"email"`
	Input    EngagementInput  `json:"input"`
	Score    int              `json:"score"`
	Status   EngagementStatus `json:"status"`
}

type EngagementSummary struct {
	Students int `json:"students"`
	Active   int `json:"active"`
	AtRisk   int `json:"atRisk"`
	Inactive int `json:"inactive"`
}

type EngagementReport struct {
	Summary  EngagementSummary   `json:"summary"`
	Students []StudentEngagement `json:"students"`
}

// GetEngagementReport scores every student with the engagement rubric. The
// admin view recomputes from raw counters on each call.
func (s *AnalyticsService) GetEngagementReport() (*EngagementReport, error) {
	students, err := s.UserRepo.FindByRole(model.Student)
	if err != nil {
		return nil, err
	}

	report := &EngagementReport{
		Students: make([]StudentEngagement, 0, len(students)),
	}
	report.Summary.Students = len(students)

	for _, student := range students {
		input, err := s.EngagementService.CollectInput(student.ID)
		if err != nil {
			return nil, err
		}

		score := EngagementScore(input)
		status := ClassifyEngagement(score)

		switch status {
		case StatusActive:
			report.Summary.Active++
		case StatusAtRisk:
			report.Summary.AtRisk++
		default:
			report.Summary.Inactive++
		}

		report.Students = append(report.Students, StudentEngagement{
			UserID:   student.ID,
			FullName: student.FullName,
			Email:    student.Email,
			Input:    input,
			Score:    score,
			Status:   status,
		})
	}

	return report, nil
}

func (s *AnalyticsService) GetStudentEngagement(userID uint) (*StudentEngagement, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	input, err := s.EngagementService.CollectInput(userID)
	if err != nil {
		return nil, err
	}

	score := EngagementScore(input)
	return &StudentEngagement{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Input:    input,
		Score:    score,
		Status:   ClassifyEngagement(score),
	}, nil
}
