package service

import (
	"learnhub_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressRow(userID uint, points, streak int) model.UserProgress {
	return model.UserProgress{
		UserID:      userID,
		TotalPoints: points,
		StudyStreak: streak,
	}
}

func TestBuildLeaderboardOrdersByPoints(t *testing.T) {
	rows := []model.UserProgress{
		progressRow(1, 50, 2),
		progressRow(2, 120, 1),
		progressRow(3, 80, 9),
	}

	entries := BuildLeaderboard(rows, nil, nil, ViewPoints)
	require.Len(t, entries, 3)

	assert.Equal(t, uint(2), entries[0].UserID)
	assert.Equal(t, uint(3), entries[1].UserID)
	assert.Equal(t, uint(1), entries[2].UserID)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestBuildLeaderboardDedupesUsersByBestWeek(t *testing.T) {
	rows := []model.UserProgress{
		progressRow(1, 30, 2),
		progressRow(1, 90, 2),
		progressRow(1, 60, 2),
		progressRow(2, 70, 1),
	}

	entries := BuildLeaderboard(rows, nil, nil, ViewPoints)
	require.Len(t, entries, 2)

	assert.Equal(t, uint(1), entries[0].UserID)
	assert.Equal(t, 90, entries[0].Points)
	assert.Equal(t, uint(2), entries[1].UserID)
}

func TestBuildLeaderboardViewChangesOrderNotMembership(t *testing.T) {
	rows := []model.UserProgress{
		progressRow(1, 100, 1),
		progressRow(2, 50, 8),
		progressRow(3, 75, 4),
	}
	achievements := map[uint]int{1: 1, 2: 2, 3: 5}

	byPoints := BuildLeaderboard(rows, achievements, nil, ViewPoints)
	byStreak := BuildLeaderboard(rows, achievements, nil, ViewStreak)
	byAchievements := BuildLeaderboard(rows, achievements, nil, ViewAchievements)

	members := func(entries []LeaderboardEntry) map[uint]bool {
		m := make(map[uint]bool)
		for _, e := range entries {
			m[e.UserID] = true
		}
		return m
	}
	assert.Equal(t, members(byPoints), members(byStreak))
	assert.Equal(t, members(byPoints), members(byAchievements))

	assert.Equal(t, uint(1), byPoints[0].UserID)
	assert.Equal(t, uint(2), byStreak[0].UserID)
	assert.Equal(t, uint(3), byAchievements[0].UserID)
}

func TestBuildLeaderboardJoinsCounts(t *testing.T) {
	rows := []model.UserProgress{progressRow(7, 10, 3)}
	achievements := map[uint]int{7: 4}
	posts := map[uint]int{7: 6}

	entries := BuildLeaderboard(rows, achievements, posts, ViewPoints)
	require.Len(t, entries, 1)

	assert.Equal(t, 4, entries[0].Achievements)
	assert.Equal(t, 6, entries[0].Posts)
	assert.Equal(t, 3, entries[0].Streak)
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	entries := BuildLeaderboard(nil, nil, nil, ViewPoints)
	assert.Empty(t, entries)
}

func TestBuildLeaderboardTiesKeepStableOrder(t *testing.T) {
	rows := []model.UserProgress{
		progressRow(5, 40, 0),
		progressRow(9, 40, 0),
	}

	entries := BuildLeaderboard(rows, nil, nil, ViewPoints)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(5), entries[0].UserID)
	assert.Equal(t, uint(9), entries[1].UserID)
}

func TestParseLeaderboardViewDefaultsToPoints(t *testing.T) {
	assert.Equal(t, ViewPoints, ParseLeaderboardView("points"))
	assert.Equal(t, ViewStreak, ParseLeaderboardView("streak"))
	assert.Equal(t, ViewAchievements, ParseLeaderboardView("achievements"))
	assert.Equal(t, ViewPoints, ParseLeaderboardView("bogus"))
	assert.Equal(t, ViewPoints, ParseLeaderboardView(""))
}

func TestAnnotateViewerMarksOnlyViewer(t *testing.T) {
	entries := []LeaderboardEntry{
		{UserID: 1}, {UserID: 2}, {UserID: 3},
	}

	annotated := annotateViewer(entries, 2)
	assert.False(t, annotated[0].IsCurrentUser)
	assert.True(t, annotated[1].IsCurrentUser)
	assert.False(t, annotated[2].IsCurrentUser)

	// The cached slice must stay untouched.
	assert.False(t, entries[1].IsCurrentUser)
}
