package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/metrics"
	"campus-food-api/models"
	"campus-food-api/statemachine"
)

// DefaultSweepInterval is how often RunSweeper looks for expired orders
const DefaultSweepInterval = time.Minute

// SweepExpired cancels every pending order whose cancel window has elapsed
// and returns how many it cancelled. Orders in any other status are left alone,
// so running it again is a no-op.
func (s *OrderStore) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	expired := 0
	for _, id := range s.sequence {
		o := s.orders[id]
		if o.Status != models.StatusPending || now.Before(CancelDeadline(o)) {
			continue
		}
		err := s.transitionLocked(o, models.StatusCancelled, statemachine.ActorSystem,
			models.WeatherSystemActor, "Cancellation window elapsed", now)
		if err != nil {
			s.log.Error("failed to expire order", zap.String("order_id", id), zap.Error(err))
			continue
		}
		expired++
	}

	metrics.OrdersExpiredTotal.Add(float64(expired))
	return expired
}

// RunSweeper calls SweepExpired every interval until ctx is cancelled
func (s *OrderStore) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return apperrors.Validation("sweep interval must be positive, got %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("order sweeper started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("order sweeper stopped")
			return nil
		case <-ticker.C:
			if n := s.SweepExpired(); n > 0 {
				s.log.Info("expired pending orders", zap.Int("count", n))
			}
		}
	}
}
