//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
package store

import "campus-food-api/models"

// Repository is the durable side of the store. The in-memory state stays the
// source of truth during a session; each mutation is written through here
// before it is committed in memory.
type Repository interface {
	CreateOrder(order *models.Order) error
	UpdateOrderStatus(orderID string, status models.OrderStatus, entry *models.OrderStatusHistory) error
	SaveFeedback(feedback *models.Feedback) error
	LoadOrders() ([]models.Order, error)
}

// WeatherSource supplies the weather snapshot used at placement
type WeatherSource interface {
	Status() models.WeatherStatus
}
