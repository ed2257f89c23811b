package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"campus-food-api/clock"
	"campus-food-api/middleware"
	"campus-food-api/models"
	"campus-food-api/statemachine"
	"campus-food-api/store"
)

type OrderLineRequest struct {
	ID       string          `json:"id"`
	FoodID   string          `json:"food_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// PlaceOrderRequest carries the checked-out cart. Payment is confirmed before this call.
type PlaceOrderRequest struct {
	Items []OrderLineRequest `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// orderView adds the clock-derived fields shown on order detail
type orderView struct {
	models.Order
	MinutesElapsed  int                  `json:"minutes_elapsed"`
	Cancellable     bool                 `json:"cancellable"`
	CancelDeadline  time.Time            `json:"cancel_deadline"`
	ValidNextStates []models.OrderStatus `json:"valid_next_states"`
}

func (h *Handler) view(o models.Order) orderView {
	next := statemachine.ValidTransitionsFrom(o.Status)
	if next == nil {
		next = []models.OrderStatus{}
	}
	return orderView{
		Order:           o,
		MinutesElapsed:  clock.MinutesSince(h.clock, o.CreatedAt),
		Cancellable:     h.orders.Cancellable(&o),
		CancelDeadline:  store.CancelDeadline(&o),
		ValidNextStates: next,
	}
}

// PlaceOrder creates a pending order for the caller
func (h *Handler) PlaceOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	items := make([]models.LineItem, len(req.Items))
	for i, line := range req.Items {
		items[i] = models.LineItem{
			LineID:   line.ID,
			FoodID:   line.FoodID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	id, err := h.orders.PlaceOrder(identity, items, req.Total)
	if err != nil {
		h.respondError(c, "place_order", err)
		return
	}

	order, err := h.orders.GetOrder(id)
	if err != nil {
		h.respondError(c, "place_order", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"order":       h.view(order),
		"pickup_time": order.PickupTime,
	})
}

// GetMyOrders returns the caller's orders, oldest first
func (h *Handler) GetMyOrders(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	orders := h.orders.ListByUser(identity.ID)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ownOrder loads the order and checks that it belongs to the caller
func (h *Handler) ownOrder(c *gin.Context, operation string) (models.Order, bool) {
	identity := middleware.GetIdentity(c)
	order, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		h.respondError(c, operation, err)
		return order, false
	}
	if order.UserID != identity.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return order, false
	}
	return order, true
}

// GetOrderDetail returns a single order with history and cancel info
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.ownOrder(c, "get_order")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": h.view(order)})
}

// CancelOrder cancels the caller's pending order inside the cancel window
func (h *Handler) CancelOrder(c *gin.Context) {
	order, ok := h.ownOrder(c, "cancel_order")
	if !ok {
		return
	}

	identity := middleware.GetIdentity(c)
	updated, err := h.orders.Cancel(order.ID, statemachine.ActorUser, identity.Name)
	if err != nil {
		h.respondError(c, "cancel_order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   h.view(updated),
	})
}

// SubmitFeedback rates the caller's completed order
func (h *Handler) SubmitFeedback(c *gin.Context) {
	order, ok := h.ownOrder(c, "submit_feedback")
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.orders.SubmitFeedback(order.ID, req.Rating, req.Comment)
	if err != nil {
		h.respondError(c, "submit_feedback", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thank you for your feedback",
		"feedback": updated.Feedback,
	})
}
