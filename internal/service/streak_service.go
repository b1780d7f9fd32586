package service

import (
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"time"
)

const weekGridDays = 7

type StreakService struct {
	SessionRepo *repository.SessionRepository
	UserRepo    *repository.UserRepository
}

func NewStreakService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository) *StreakService {
	return &StreakService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
	}
}

type DayAttendance struct {
	Date    string `json:"date"`
	Studied bool   `json:"studied"`
}

type StreakSummary struct {
	CurrentStreak     int             `json:"currentStreak"`
	LongestStreak     int             `json:"longestStreak"`
	WeekGrid          []DayAttendance `json:"weekGrid"`
	WeeklyGoalPercent float64         `json:"weeklyGoalPercent"`
}

func (s *StreakService) GetStreakSummary(userID uint) (*StreakSummary, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.SessionRepo.FindCompletedByUser(userID)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, len(sessions))
	for i, session := range sessions {
		times[i] = session.CreatedAt
	}

	return BuildStreakSummary(times, user.CreatedAt, time.Now()), nil
}

// BuildStreakSummary derives the streak block from completed-session timestamps.
// All date arithmetic is on local midnight-truncated calendar days.
func BuildStreakSummary(sessionTimes []time.Time, joinedAt, now time.Time) *StreakSummary {
	current := CurrentStreak(sessionTimes, joinedAt, now)
	grid := WeekGrid(sessionTimes, now)

	studiedDays := 0
	for _, day := range grid {
		if day.Studied {
			studiedDays++
		}
	}

	// TODO: derive the longest streak from the full session history instead of
	// approximating it from the current one.
	longest := current
	if current > 0 {
		longest = current + 1
	}

	return &StreakSummary{
		CurrentStreak:     current,
		LongestStreak:     longest,
		WeekGrid:          grid,
		WeeklyGoalPercent: float64(studiedDays) / weekGridDays * 100,
	}
}

// CurrentStreak counts consecutive calendar days ending today with at least one
// completed session, never exceeding the days the account has existed (joining
// day included).
func CurrentStreak(sessionTimes []time.Time, joinedAt, now time.Time) int {
	studied := studiedDaySet(sessionTimes)
	bound := DaysSinceJoining(joinedAt, now)

	streak := 0
	day := truncateToDay(now)
	for i := 0; i < bound; i++ {
		if !studied[day.Format(util.DateFormat)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeekGrid reports attendance for the last 7 calendar days, oldest first and
// today last. It always has exactly 7 entries.
func WeekGrid(sessionTimes []time.Time, now time.Time) []DayAttendance {
	studied := studiedDaySet(sessionTimes)

	grid := make([]DayAttendance, weekGridDays)
	today := truncateToDay(now)
	for i := 0; i < weekGridDays; i++ {
		day := today.AddDate(0, 0, i-weekGridDays+1)
		key := day.Format(util.DateFormat)
		grid[i] = DayAttendance{
			Date:    key,
			Studied: studied[key],
		}
	}
	return grid
}

// DaysSinceJoining counts calendar days from the joining day through today,
// inclusive of both. A user who joined today has one countable day. The
// midnights are re-anchored in UTC before subtracting, since in a zone with
// DST a local-time difference is not a whole number of 24h days.
func DaysSinceJoining(joinedAt, now time.Time) int {
	joined := truncateToDay(joinedAt)
	today := truncateToDay(now)
	if today.Before(joined) {
		return 0
	}
	j := time.Date(joined.Year(), joined.Month(), joined.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(j).Hours()/24) + 1
}

func studiedDaySet(sessionTimes []time.Time) map[string]bool {
	studied := make(map[string]bool, len(sessionTimes))
	for _, t := range sessionTimes {
		studied[truncateToDay(t).Format(util.DateFormat)] = true
	}
	return studied
}

func truncateToDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
