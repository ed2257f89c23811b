package store

import (
	"time"

	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/metrics"
	"campus-food-api/models"
	"campus-food-api/statemachine"
)

// CancelDeadline is the first instant at which o can no longer be cancelled
func CancelDeadline(o *models.Order) time.Time {
	return o.CreatedAt.Add(CancelWindow)
}

// Cancellable reports whether o could be cancelled at now
func Cancellable(o *models.Order, now time.Time) bool {
	return o.Status == models.StatusPending && now.Before(CancelDeadline(o))
}

// Cancellable reports whether the order could be cancelled right now
func (s *OrderStore) Cancellable(o *models.Order) bool {
	return Cancellable(o, s.clock.Now())
}

// UpdateStatus moves an order to status to on behalf of actor. changedBy is
// the display name recorded in the order's history.
func (s *OrderStore) UpdateStatus(id string, to models.OrderStatus, actor statemachine.Actor, changedBy, note string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperrors.NotFound("order %s", id)
	}

	if err := statemachine.CanTransition(o.Status, to, actor); err != nil {
		return models.Order{}, err
	}

	now := s.clock.Now()
	if to == models.StatusCancelled && !now.Before(CancelDeadline(o)) {
		return models.Order{}, statemachine.Rejected(o.Status, to, actor,
			"the cancellation window of "+CancelWindow.String()+" has elapsed")
	}

	if err := s.transitionLocked(o, to, actor, changedBy, note, now); err != nil {
		return models.Order{}, err
	}
	return o.Clone(), nil
}

func (s *OrderStore) MarkReady(id, changedBy string) (models.Order, error) {
	return s.UpdateStatus(id, models.StatusReady, statemachine.ActorAdmin, changedBy, "Order ready for pickup")
}

// Complete hands the order over; admins may complete a pending order without marking it ready first
func (s *OrderStore) Complete(id, changedBy string) (models.Order, error) {
	return s.UpdateStatus(id, models.StatusCompleted, statemachine.ActorAdmin, changedBy, "Order picked up")
}

func (s *OrderStore) Cancel(id string, actor statemachine.Actor, changedBy string) (models.Order, error) {
	return s.UpdateStatus(id, models.StatusCancelled, actor, changedBy, "Order cancelled by "+string(actor))
}

// transitionLocked persists and then applies a transition. Caller holds s.mu.
func (s *OrderStore) transitionLocked(o *models.Order, to models.OrderStatus, actor statemachine.Actor, changedBy, note string, now time.Time) error {
	entry := models.OrderStatusHistory{
		OrderID:    o.ID,
		FromStatus: o.Status,
		ToStatus:   to,
		ChangedBy:  changedBy,
		Note:       note,
		CreatedAt:  now,
	}
	if err := s.repo.UpdateOrderStatus(o.ID, to, &entry); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_status").Inc()
		return apperrors.Storage(err, "update order status")
	}

	from := o.Status
	o.Status = to
	o.UpdatedAt = now
	o.StatusHistory = append(o.StatusHistory, entry)

	if from == models.StatusPending {
		metrics.PendingOrders.Dec()
	}
	metrics.OrderTransitioned(to, string(actor))
	s.log.Info("order status changed",
		zap.String("order_id", o.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("actor", string(actor)),
		zap.String("changed_by", changedBy))

	return nil
}
