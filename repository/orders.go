// Package repository persists the campus food domain with gorm.
package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"campus-food-api/apperrors"
	"campus-food-api/models"
)

// OrderRepo writes orders, their status history and feedback through to the database
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder inserts the order together with its line items and initial history
func (r *OrderRepo) CreateOrder(order *models.Order) error {
	return errors.Wrap(r.db.Create(order).Error, "create order")
}

// UpdateOrderStatus changes the status and appends entry in one transaction
func (r *OrderRepo) UpdateOrderStatus(orderID string, status models.OrderStatus, entry *models.OrderStatusHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": entry.CreatedAt,
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "update order status")
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFound("order %s", orderID)
		}
		return errors.Wrap(tx.Create(entry).Error, "create status history")
	})
}

func (r *OrderRepo) SaveFeedback(feedback *models.Feedback) error {
	return errors.Wrap(r.db.Create(feedback).Error, "save feedback")
}

// LoadOrders returns every order with items, feedback and history, oldest first
func (r *OrderRepo) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("row_id asc") }).
		Preload("Feedback").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "load orders")
	}
	return orders, nil
}
