package service

import (
	"learnhub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLikeRejectsUnknownTargetType(t *testing.T) {
	s := &DiscussionService{}

	liked, err := s.ToggleLike(1, "comment", "some-id")
	assert.ErrorIs(t, err, util.ErrPostNotFound)
	assert.False(t, liked)
}
