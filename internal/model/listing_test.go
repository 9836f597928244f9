package model_test

import (
	"testing"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing_StartsOpen(t *testing.T) {
	listing := model.NewListing("hagwon", "hash")

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, model.StatusOpen, listing.Status)
	assert.Equal(t, model.FeedbackNotAsked, listing.Feedback)
	assert.Nil(t, listing.Feedback.FoundThroughPlatform())
}

func TestParseListingStatus(t *testing.T) {
	testCases := []struct {
		input string
		want  model.ListingStatus
		ok    bool
	}{
		{"OPEN", model.StatusOpen, true},
		{"closed", model.StatusClosed, true},
		{" Open ", model.StatusOpen, true},
		{"PENDING", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := model.ParseListingStatus(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransitionTo_FirstCloseAsksFeedback(t *testing.T) {
	// Given: an open listing
	listing := model.NewListing("student", "hash")

	// When: closing it
	changed, ask := listing.TransitionTo(model.StatusClosed)

	// Then: feedback is asked once
	assert.True(t, changed)
	assert.True(t, ask)
	assert.False(t, listing.ContactVisible())
}

func TestTransitionTo_RepeatedCloseDoesNotAskAgain(t *testing.T) {
	listing := model.NewListing("student", "hash")
	listing.TransitionTo(model.StatusClosed)
	require.NoError(t, listing.RecordFeedback(model.FeedbackSkipped))

	// CLOSED -> CLOSED
	changed, ask := listing.TransitionTo(model.StatusClosed)
	assert.False(t, changed)
	assert.False(t, ask)

	// CLOSED -> OPEN -> CLOSED
	changed, ask = listing.TransitionTo(model.StatusOpen)
	assert.True(t, changed)
	assert.False(t, ask)
	assert.True(t, listing.ContactVisible())

	changed, ask = listing.TransitionTo(model.StatusClosed)
	assert.True(t, changed)
	assert.False(t, ask, "skipped feedback must not be asked again")
}

func TestRecordFeedback(t *testing.T) {
	t.Run("rejected while open", func(t *testing.T) {
		listing := model.NewListing("hagwon", "hash")
		assert.ErrorIs(t, listing.RecordFeedback(model.FeedbackYes), model.ErrFeedbackNotAllowed)
	})

	t.Run("accepted once", func(t *testing.T) {
		listing := model.NewListing("hagwon", "hash")
		listing.TransitionTo(model.StatusClosed)

		require.NoError(t, listing.RecordFeedback(model.FeedbackNo))
		found := listing.Feedback.FoundThroughPlatform()
		require.NotNil(t, found)
		assert.False(t, *found)

		assert.ErrorIs(t, listing.RecordFeedback(model.FeedbackYes), model.ErrFeedbackAlreadyDone)
		assert.Equal(t, model.FeedbackNo, listing.Feedback)
	})

	t.Run("invalid answer", func(t *testing.T) {
		listing := model.NewListing("hagwon", "hash")
		listing.TransitionTo(model.StatusClosed)
		assert.ErrorIs(t, listing.RecordFeedback(model.FeedbackNotAsked), model.ErrInvalidFeedback)
	})
}

func TestLessonFormat_RequiresRegion(t *testing.T) {
	assert.False(t, model.FormatOnline.RequiresRegion())
	assert.True(t, model.FormatOffline.RequiresRegion())
	assert.True(t, model.FormatEither.RequiresRegion())

	_, ok := model.ParseLessonFormat("hybrid")
	assert.False(t, ok)
}
