package service

import (
	"context"
	"encoding/json"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type LeaderboardView string

const (
	ViewPoints       LeaderboardView = "points"
	ViewStreak       LeaderboardView = "streak"
	ViewAchievements LeaderboardView = "achievements"
)

const leaderboardCacheTTL = 30 * time.Second

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        uint   `json:"userId"`
	FullName      string `json:"fullName"`
	Avatar        string `json:"avatar,omitempty"`
	Points        int    `json:"points"`
	Streak        int    `json:"streak"`
	Achievements  int    `json:"achievements"`
	Posts         int    `json:"posts"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

type LeaderboardService struct {
	ProgressRepo    *repository.ProgressRepository
	AchievementRepo *repository.AchievementRepository
	DiscussionRepo  *repository.DiscussionRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
}

func NewLeaderboardService(
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
	discussionRepo *repository.DiscussionRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		ProgressRepo:    progressRepo,
		AchievementRepo: achievementRepo,
		DiscussionRepo:  discussionRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
	}
}

func ParseLeaderboardView(s string) LeaderboardView {
	switch LeaderboardView(s) {
	case ViewStreak, ViewAchievements:
		return LeaderboardView(s)
	default:
		return ViewPoints
	}
}

// GetLeaderboard returns the ranked list for a view mode, annotated with the
// viewing user. Built lists are cached in redis for a short TTL; the viewer
// annotation is applied after the cache so entries stay shareable.
func (s *LeaderboardService) GetLeaderboard(view LeaderboardView, viewerID uint) ([]LeaderboardEntry, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("leaderboard:%s", view)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return annotateViewer(entries, viewerID), nil
			}
		}
	}

	entries, err := s.buildLeaderboard(view)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return annotateViewer(entries, viewerID), nil
}

func (s *LeaderboardService) buildLeaderboard(view LeaderboardView) ([]LeaderboardEntry, error) {
	progressRows, err := s.ProgressRepo.FindAll()
	if err != nil {
		return nil, err
	}

	achievementCounts, err := s.AchievementRepo.CountUnlockedGroupedByUser()
	if err != nil {
		return nil, err
	}

	postCounts, err := s.DiscussionRepo.CountPostsGroupedByUser()
	if err != nil {
		return nil, err
	}

	entries := BuildLeaderboard(progressRows, achievementCounts, postCounts, view)

	ids := make([]uint, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	users, err := s.UserRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for i := range entries {
		if u, ok := byID[entries[i].UserID]; ok {
			entries[i].FullName = u.FullName
			entries[i].Avatar = u.Avatar
		}
	}

	return entries, nil
}

// BuildLeaderboard dedupes progress rows per user keeping the row with the
// highest total_points, joins achievement and post counts, sorts by the selected
// metric descending and assigns 1-based ranks. Ties keep the aggregation order
// (stable sort); the view mode changes order only, never membership.
//
// Representing a user by their best single week undercounts cumulative points
// relative to the sum-by-week totals shown elsewhere; see DESIGN.md.
func BuildLeaderboard(
	progressRows []model.UserProgress,
	achievementCounts map[uint]int,
	postCounts map[uint]int,
	view LeaderboardView,
) []LeaderboardEntry {
	best := make(map[uint]model.UserProgress)
	order := make([]uint, 0)
	for _, row := range progressRows {
		existing, seen := best[row.UserID]
		if !seen {
			order = append(order, row.UserID)
			best[row.UserID] = row
			continue
		}
		if row.TotalPoints > existing.TotalPoints {
			best[row.UserID] = row
		}
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, userID := range order {
		row := best[userID]
		entries = append(entries, LeaderboardEntry{
			UserID:       userID,
			Points:       row.TotalPoints,
			Streak:       row.StudyStreak,
			Achievements: achievementCounts[userID],
			Posts:        postCounts[userID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		switch view {
		case ViewStreak:
			return entries[i].Streak > entries[j].Streak
		case ViewAchievements:
			return entries[i].Achievements > entries[j].Achievements
		default:
			return entries[i].Points > entries[j].Points
		}
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func annotateViewer(entries []LeaderboardEntry, viewerID uint) []LeaderboardEntry {
	annotated := make([]LeaderboardEntry, len(entries))
	copy(annotated, entries)
	for i := range annotated {
		annotated[i].IsCurrentUser = annotated[i].UserID == viewerID
	}
	return annotated
}
