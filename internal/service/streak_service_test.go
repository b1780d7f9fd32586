package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var streakNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestCurrentStreakCountsConsecutiveDays(t *testing.T) {
	sessions := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(4)}
	joined := daysAgo(30)

	assert.Equal(t, 3, CurrentStreak(sessions, joined, streakNow))
}

func TestCurrentStreakZeroWithoutSessionToday(t *testing.T) {
	sessions := []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}
	joined := daysAgo(30)

	assert.Equal(t, 0, CurrentStreak(sessions, joined, streakNow))
}

func TestCurrentStreakNeverExceedsAccountAge(t *testing.T) {
	// Timestamps older than the account can exist after an import; the streak
	// still may not reach past the joining day.
	sessions := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}
	joined := daysAgo(1)

	assert.Equal(t, 2, CurrentStreak(sessions, joined, streakNow))
}

func TestCurrentStreakUserJoinedToday(t *testing.T) {
	sessions := []time.Time{daysAgo(0)}
	assert.Equal(t, 1, CurrentStreak(sessions, streakNow, streakNow))
}

func TestCurrentStreakMultipleSessionsSameDayCountOnce(t *testing.T) {
	sessions := []time.Time{
		daysAgo(0),
		daysAgo(0).Add(-2 * time.Hour),
		daysAgo(1),
	}
	joined := daysAgo(30)

	assert.Equal(t, 2, CurrentStreak(sessions, joined, streakNow))
}

func TestWeekGridAlwaysSevenDaysTodayLast(t *testing.T) {
	sessions := []time.Time{daysAgo(0), daysAgo(3)}

	grid := WeekGrid(sessions, streakNow)
	require.Len(t, grid, 7)

	assert.Equal(t, "2026-03-15", grid[6].Date)
	assert.Equal(t, "2026-03-09", grid[0].Date)
	assert.True(t, grid[6].Studied)
	assert.True(t, grid[3].Studied)
	assert.False(t, grid[5].Studied)
}

func TestWeekGridNoSessions(t *testing.T) {
	grid := WeekGrid(nil, streakNow)
	require.Len(t, grid, 7)
	for _, day := range grid {
		assert.False(t, day.Studied)
	}
}

func TestBuildStreakSummaryEmptyHistory(t *testing.T) {
	summary := BuildStreakSummary(nil, daysAgo(30), streakNow)

	assert.Equal(t, 0, summary.CurrentStreak)
	assert.Equal(t, 0, summary.LongestStreak)
	assert.Zero(t, summary.WeeklyGoalPercent)
	assert.Len(t, summary.WeekGrid, 7)
}

func TestBuildStreakSummaryWeeklyGoal(t *testing.T) {
	sessions := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(5)}
	summary := BuildStreakSummary(sessions, daysAgo(30), streakNow)

	assert.Equal(t, 3, summary.CurrentStreak)
	assert.InDelta(t, 4.0/7.0*100, summary.WeeklyGoalPercent, 0.001)
}

func TestBuildStreakSummaryLongestPlaceholder(t *testing.T) {
	sessions := []time.Time{daysAgo(0), daysAgo(1)}
	summary := BuildStreakSummary(sessions, daysAgo(30), streakNow)

	assert.Equal(t, 2, summary.CurrentStreak)
	assert.Equal(t, 3, summary.LongestStreak)
}

func TestDaysSinceJoiningInclusive(t *testing.T) {
	assert.Equal(t, 1, DaysSinceJoining(streakNow, streakNow))
	assert.Equal(t, 2, DaysSinceJoining(daysAgo(1), streakNow))
	assert.Equal(t, 31, DaysSinceJoining(daysAgo(30), streakNow))
	assert.Equal(t, 0, DaysSinceJoining(streakNow.AddDate(0, 0, 1), streakNow))
}

func TestDaysSinceJoiningAcrossDSTSpringForward(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// New York springs forward on 2026-03-08, so the local-time span from
	// Mar 5 to Mar 15 is one hour short of ten full days.
	orig := time.Local
	time.Local = ny
	defer func() { time.Local = orig }()

	joined := time.Date(2026, 3, 5, 9, 0, 0, 0, ny)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, ny)

	assert.Equal(t, 11, DaysSinceJoining(joined, now))
}

func TestCurrentStreakFullAttendanceAcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	orig := time.Local
	time.Local = ny
	defer func() { time.Local = orig }()

	joined := time.Date(2026, 3, 5, 9, 0, 0, 0, ny)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, ny)

	// A session on every day since joining; the streak must cover all of them.
	var sessions []time.Time
	for d := 0; d < 11; d++ {
		sessions = append(sessions, joined.AddDate(0, 0, d))
	}

	assert.Equal(t, 11, CurrentStreak(sessions, joined, now))
}
