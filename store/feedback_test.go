package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-food-api/apperrors"
	"campus-food-api/statemachine"
)

func TestSubmitFeedback(t *testing.T) {
	f := setup(t, Options{})

	pending := f.place(t, student)
	cancelled := f.place(t, student)
	_, err := f.store.Cancel(cancelled, statemachine.ActorUser, student.Name)
	require.NoError(t, err)
	ready := f.place(t, student)
	_, err = f.store.MarkReady(ready, admin.Name)
	require.NoError(t, err)
	completed := f.place(t, student)
	_, err = f.store.Complete(completed, admin.Name)
	require.NoError(t, err)

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.store.SubmitFeedback("missing", 5, "")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("only completed orders take feedback", func(t *testing.T) {
		for _, id := range []string{pending, cancelled, ready} {
			_, err := f.store.SubmitFeedback(id, 5, "great")
			assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := f.store.SubmitFeedback(completed, rating, "")
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		}
	})

	t.Run("first submission sticks", func(t *testing.T) {
		f.clock.Advance(time.Hour)
		order, err := f.store.SubmitFeedback(completed, 5, "Loved the khichuri")
		require.NoError(t, err)
		require.NotNil(t, order.Feedback)
		assert.Equal(t, 5, order.Feedback.Rating)
		assert.Equal(t, "Loved the khichuri", order.Feedback.Comment)
		assert.Equal(t, f.clock.Now(), order.Feedback.CreatedAt)

		_, err = f.store.SubmitFeedback(completed, 1, "changed my mind")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

		order, _ = f.store.GetOrder(completed)
		assert.Equal(t, 5, order.Feedback.Rating)
		require.Len(t, f.repo.feedback, 1)
	})
}

func TestFeedbackReport(t *testing.T) {
	f := setup(t, Options{})

	empty := f.store.FeedbackReport()
	assert.Equal(t, 0, empty.TotalFeedback)
	assert.Equal(t, 0.0, empty.AverageRating)
	assert.Equal(t, 0, empty.FeedbackRate)
	assert.Empty(t, empty.Entries)

	ratings := []int{5, 4, 4}
	var ids []string
	for _, r := range ratings {
		id := f.place(t, faculty)
		_, err := f.store.Complete(id, admin.Name)
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
		_, err = f.store.SubmitFeedback(id, r, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}
	f.place(t, student)

	report := f.store.FeedbackReport()
	assert.Equal(t, 3, report.TotalFeedback)
	assert.Equal(t, 4.3, report.AverageRating)
	assert.Equal(t, 75, report.FeedbackRate)
	assert.Equal(t, [5]int{0, 0, 0, 2, 1}, report.Distribution)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, ids[2], report.Entries[0].OrderID)
	assert.Equal(t, ids[0], report.Entries[2].OrderID)
	assert.Equal(t, faculty.Name, report.Entries[0].UserName)
}
