package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgressPartialCourse(t *testing.T) {
	summary := ComputeProgress(3, 12)

	assert.Equal(t, 12, summary.TotalWeeks)
	assert.Equal(t, 3, summary.CompletedWeeks)
	assert.Equal(t, 4, summary.CurrentWeek)
	assert.InDelta(t, 25.0, summary.PercentComplete, 0.001)
}

func TestComputeProgressNothingCompleted(t *testing.T) {
	summary := ComputeProgress(0, 12)

	assert.Equal(t, 1, summary.CurrentWeek)
	assert.Zero(t, summary.PercentComplete)
}

func TestComputeProgressCourseFinished(t *testing.T) {
	summary := ComputeProgress(12, 12)

	assert.Equal(t, 12, summary.CurrentWeek)
	assert.InDelta(t, 100.0, summary.PercentComplete, 0.001)
}

func TestComputeProgressZeroTotalWeeks(t *testing.T) {
	summary := ComputeProgress(0, 0)

	assert.Equal(t, 0, summary.CurrentWeek)
	assert.Zero(t, summary.PercentComplete)
}
