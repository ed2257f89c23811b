package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a campus order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Statuses lists every status in lifecycle order
var Statuses = []OrderStatus{StatusPending, StatusReady, StatusCompleted, StatusCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Order struct {
	ID            string               `json:"id" gorm:"primaryKey;size:36"`
	UserID        string               `json:"user_id" gorm:"index;not null"`
	UserName      string               `json:"user_name"`
	UserRole      UserRole             `json:"user_role"`
	Items         []LineItem           `json:"items" gorm:"foreignKey:OrderID"`
	Status        OrderStatus          `json:"status" gorm:"index;not null;default:'pending'"`
	Total         decimal.Decimal      `json:"total" gorm:"type:decimal(10,2);not null"`
	PickupTime    time.Time            `json:"pickup_time"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Feedback      *Feedback            `json:"feedback,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
}

// Clone returns a deep copy so callers never share slices with the store
func (o *Order) Clone() Order {
	c := *o
	c.Items = append([]LineItem(nil), o.Items...)
	c.StatusHistory = append([]OrderStatusHistory(nil), o.StatusHistory...)
	if o.Feedback != nil {
		fb := *o.Feedback
		c.Feedback = &fb
	}
	return c
}

// LineItem is a cart line snapshotted onto the order at placement
type LineItem struct {
	RowID    uint            `json:"-" gorm:"primaryKey"`
	OrderID  string          `json:"-" gorm:"index;size:36;not null"`
	LineID   string          `json:"id" gorm:"column:line_id"`
	FoodID   string          `json:"food_id" gorm:"not null"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity int             `json:"quantity" gorm:"not null"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Feedback is attached at most once, to a completed order
type Feedback struct {
	OrderID   string    `json:"-" gorm:"primaryKey;size:36"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderStatusHistory tracks every status change
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"index;size:36;not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string      `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
