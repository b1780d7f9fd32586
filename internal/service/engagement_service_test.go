package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngagementScoreWorkedExample(t *testing.T) {
	// 10 + 10 + 5 + 10 + 30 = 65
	in := EngagementInput{
		Streak:         2,
		TotalPoints:    100,
		ForumPosts:     1,
		Achievements:   1,
		RecentSessions: 2,
	}

	score := EngagementScore(in)
	assert.Equal(t, 65, score)
	assert.Equal(t, StatusAtRisk, ClassifyEngagement(score))
}

func TestEngagementScoreClampedToHundred(t *testing.T) {
	in := EngagementInput{
		Streak:         50,
		TotalPoints:    10000,
		ForumPosts:     40,
		Achievements:   20,
		RecentSessions: 30,
	}

	assert.Equal(t, 100, EngagementScore(in))
}

func TestEngagementScoreZeroInput(t *testing.T) {
	score := EngagementScore(EngagementInput{})
	assert.Equal(t, 0, score)
	assert.Equal(t, StatusInactive, ClassifyEngagement(score))
}

func TestEngagementScorePointsDivisorTruncates(t *testing.T) {
	assert.Equal(t, 0, EngagementScore(EngagementInput{TotalPoints: 9}))
	assert.Equal(t, 1, EngagementScore(EngagementInput{TotalPoints: 10}))
	assert.Equal(t, 1, EngagementScore(EngagementInput{TotalPoints: 19}))
}

func TestEngagementScoreMonotone(t *testing.T) {
	base := EngagementInput{Streak: 1, TotalPoints: 50, ForumPosts: 1, Achievements: 1, RecentSessions: 1}
	baseScore := EngagementScore(base)

	bumps := []EngagementInput{
		{Streak: base.Streak + 1, TotalPoints: base.TotalPoints, ForumPosts: base.ForumPosts, Achievements: base.Achievements, RecentSessions: base.RecentSessions},
		{Streak: base.Streak, TotalPoints: base.TotalPoints + 10, ForumPosts: base.ForumPosts, Achievements: base.Achievements, RecentSessions: base.RecentSessions},
		{Streak: base.Streak, TotalPoints: base.TotalPoints, ForumPosts: base.ForumPosts + 1, Achievements: base.Achievements, RecentSessions: base.RecentSessions},
		{Streak: base.Streak, TotalPoints: base.TotalPoints, ForumPosts: base.ForumPosts, Achievements: base.Achievements + 1, RecentSessions: base.RecentSessions},
		{Streak: base.Streak, TotalPoints: base.TotalPoints, ForumPosts: base.ForumPosts, Achievements: base.Achievements, RecentSessions: base.RecentSessions + 1},
	}

	for _, bumped := range bumps {
		assert.GreaterOrEqual(t, EngagementScore(bumped), baseScore)
	}
}

func TestClassifyEngagementBoundaries(t *testing.T) {
	assert.Equal(t, StatusActive, ClassifyEngagement(100))
	assert.Equal(t, StatusActive, ClassifyEngagement(70))
	assert.Equal(t, StatusAtRisk, ClassifyEngagement(69))
	assert.Equal(t, StatusAtRisk, ClassifyEngagement(30))
	assert.Equal(t, StatusInactive, ClassifyEngagement(29))
	assert.Equal(t, StatusInactive, ClassifyEngagement(0))
}
