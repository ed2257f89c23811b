package store

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/metrics"
	"campus-food-api/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

// SubmitFeedback attaches a rating to a completed order. Feedback can be given once.
func (s *OrderStore) SubmitFeedback(orderID string, rating int, comment string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return models.Order{}, apperrors.NotFound("order %s", orderID)
	}
	if o.Status != models.StatusCompleted {
		return models.Order{}, apperrors.InvalidState("feedback requires a completed order, order %s is %s", orderID, o.Status)
	}
	if rating < MinRating || rating > MaxRating {
		return models.Order{}, apperrors.Validation("rating must be between %d and %d, got %d", MinRating, MaxRating, rating)
	}
	if o.Feedback != nil {
		return models.Order{}, apperrors.AlreadyExists("feedback for order %s", orderID)
	}

	fb := &models.Feedback{
		OrderID:   orderID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.SaveFeedback(fb); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("submit_feedback").Inc()
		return models.Order{}, apperrors.Storage(err, "save feedback")
	}
	o.Feedback = fb

	metrics.FeedbackSubmittedTotal.Inc()
	s.log.Info("feedback submitted", zap.String("order_id", orderID), zap.Int("rating", rating))

	return o.Clone(), nil
}

type FeedbackEntry struct {
	OrderID   string          `json:"order_id"`
	UserName  string          `json:"user_name"`
	UserRole  models.UserRole `json:"user_role"`
	Rating    int             `json:"rating"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
}

type FeedbackReport struct {
	TotalFeedback int `json:"total_feedback"`
	// AverageRating is rounded to one decimal place
	AverageRating float64 `json:"average_rating"`
	// FeedbackRate is the percentage of all orders that carry feedback
	FeedbackRate int `json:"feedback_rate_percent"`
	// Distribution[i] counts ratings of i+1 stars
	Distribution [MaxRating]int `json:"rating_distribution"`
	Entries      []FeedbackEntry `json:"entries"`
}

// FeedbackReport summarises every feedback entry, newest first
func (s *OrderStore) FeedbackReport() FeedbackReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := FeedbackReport{Entries: []FeedbackEntry{}}
	sum := 0
	for _, id := range s.sequence {
		o := s.orders[id]
		if o.Feedback == nil {
			continue
		}
		report.TotalFeedback++
		sum += o.Feedback.Rating
		report.Distribution[o.Feedback.Rating-1]++
		report.Entries = append(report.Entries, FeedbackEntry{
			OrderID:   o.ID,
			UserName:  o.UserName,
			UserRole:  o.UserRole,
			Rating:    o.Feedback.Rating,
			Comment:   o.Feedback.Comment,
			CreatedAt: o.Feedback.CreatedAt,
		})
	}

	if report.TotalFeedback > 0 {
		avg := float64(sum) / float64(report.TotalFeedback)
		report.AverageRating = math.Round(avg*10) / 10
	}
	if len(s.sequence) > 0 {
		report.FeedbackRate = int(math.Round(float64(report.TotalFeedback) / float64(len(s.sequence)) * 100))
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].CreatedAt.After(report.Entries[j].CreatedAt)
	})
	return report
}
