// Package store owns every order: placement, queries, lifecycle transitions,
// feedback and the sweep that expires stale pending orders.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/clock"
	"campus-food-api/metrics"
	"campus-food-api/models"
	"campus-food-api/pickup"
)

// CancelWindow bounds how long a pending order may be cancelled, by hand or by the sweep.
// It is deliberately independent of the pickup slot.
const CancelWindow = 30 * time.Minute

type Options struct {
	// VerifyTotal rejects placements whose total differs from the sum of their lines
	VerifyTotal bool
}

type OrderStore struct {
	mu       sync.RWMutex
	orders   map[string]*models.Order
	sequence []string

	repo    Repository
	weather WeatherSource
	clock   clock.Clock
	log     *zap.Logger
	opts    Options
	newID   func() string
}

func New(repo Repository, weather WeatherSource, c clock.Clock, log *zap.Logger, opts Options) *OrderStore {
	return &OrderStore{
		orders:  make(map[string]*models.Order),
		repo:    repo,
		weather: weather,
		clock:   c,
		log:     log,
		opts:    opts,
		newID:   uuid.NewString,
	}
}

// Load replaces the in-memory state with what the repository holds
func (s *OrderStore) Load() error {
	orders, err := s.repo.LoadOrders()
	if err != nil {
		return apperrors.Storage(err, "load orders")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make(map[string]*models.Order, len(orders))
	s.sequence = s.sequence[:0]
	pending := 0
	for i := range orders {
		o := orders[i]
		s.orders[o.ID] = &o
		s.sequence = append(s.sequence, o.ID)
		if o.Status == models.StatusPending {
			pending++
		}
	}
	metrics.PendingOrders.Set(float64(pending))

	s.log.Info("orders loaded", zap.Int("count", len(orders)), zap.Int("pending", pending))
	return nil
}

// PlaceOrder stamps a pickup time from the caller's role and the current
// weather, snapshots identity and items, and stores the order as pending.
func (s *OrderStore) PlaceOrder(identity *models.Identity, items []models.LineItem, total decimal.Decimal) (string, error) {
	if identity == nil || identity.ID == "" {
		return "", apperrors.Validation("user must be logged in to place an order")
	}
	if len(items) == 0 {
		return "", apperrors.Validation("order must contain at least one item")
	}
	if total.IsNegative() {
		return "", apperrors.Validation("total must not be negative, got %s", total.StringFixed(2))
	}

	sum := decimal.Zero
	for i, item := range items {
		if item.Price.IsNegative() {
			return "", apperrors.Validation("item %d (%s) has a negative price", i, item.Name)
		}
		if item.Quantity < 1 {
			return "", apperrors.Validation("item %d (%s) must have quantity of at least 1", i, item.Name)
		}
		sum = sum.Add(item.Subtotal())
	}
	if s.opts.VerifyTotal && !sum.Equal(total) {
		return "", apperrors.Validation("total %s does not match items sum %s", total.StringFixed(2), sum.StringFixed(2))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	isBad := s.weather.Status().IsBad
	minutes := pickup.Minutes(identity.Role, isBad)

	id := s.newID()
	for s.orders[id] != nil {
		id = s.newID()
	}

	snapshot := make([]models.LineItem, len(items))
	for i, item := range items {
		item.RowID = 0
		item.OrderID = id
		snapshot[i] = item
	}

	order := &models.Order{
		ID:         id,
		UserID:     identity.ID,
		UserName:   identity.Name,
		UserRole:   identity.Role,
		Items:      snapshot,
		Status:     models.StatusPending,
		Total:      total,
		PickupTime: clock.AddMinutes(now, minutes),
		CreatedAt:  now,
		UpdatedAt:  now,
		StatusHistory: []models.OrderStatusHistory{{
			OrderID:   id,
			ToStatus:  models.StatusPending,
			ChangedBy: identity.Name,
			Note:      "Order placed",
			CreatedAt: now,
		}},
	}

	if err := s.repo.CreateOrder(order); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("place_order").Inc()
		return "", apperrors.Storage(err, "create order")
	}

	s.orders[id] = order
	s.sequence = append(s.sequence, id)

	metrics.OrderPlaced(identity.Role)
	metrics.PendingOrders.Inc()
	s.log.Info("order placed",
		zap.String("order_id", id),
		zap.String("user_id", identity.ID),
		zap.String("role", string(identity.Role)),
		zap.Bool("bad_weather", isBad),
		zap.Int("pickup_minutes", minutes),
		zap.String("total", total.StringFixed(2)))

	return id, nil
}

func (s *OrderStore) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, apperrors.NotFound("order %s", id)
	}
	return o.Clone(), nil
}

// ListByUser returns the user's orders in creation order
func (s *OrderStore) ListByUser(userID string) []models.Order {
	return s.list(func(o *models.Order) bool { return o.UserID == userID })
}

// ListAll returns every order in creation order
func (s *OrderStore) ListAll() []models.Order {
	return s.list(func(*models.Order) bool { return true })
}

// ListByStatus returns orders currently in status, in creation order
func (s *OrderStore) ListByStatus(status models.OrderStatus) []models.Order {
	return s.list(func(o *models.Order) bool { return o.Status == status })
}

func (s *OrderStore) list(keep func(*models.Order) bool) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		if o := s.orders[id]; keep(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}
