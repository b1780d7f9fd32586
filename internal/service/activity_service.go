package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

const defaultFeedLimit = 20

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	Hub          *ActivityHub
}

func NewActivityService(activityRepo *repository.ActivityRepository, hub *ActivityHub) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		Hub:          hub,
	}
}

func (s *ActivityService) GetUserFeed(userID uint, limit int) ([]model.UserActivity, error) {
	if limit < 1 || limit > 100 {
		limit = defaultFeedLimit
	}
	return s.ActivityRepo.FindRecentByUser(userID, limit)
}

// RecordActivity appends an event and pushes it to the owner's live feed.
func (s *ActivityService) RecordActivity(userID uint, activityType model.ActivityType, description string, points int) (*model.UserActivity, error) {
	activity := &model.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		PointsEarned: points,
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.PublishActivity(activity)
	}
	return activity, nil
}
