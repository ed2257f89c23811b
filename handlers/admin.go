package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"campus-food-api/middleware"
	"campus-food-api/models"
	"campus-food-api/statemachine"
)

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

type SetWeatherRequest struct {
	IsBad *bool `json:"is_bad" binding:"required"`
}

// AdminGetAllOrders returns all orders with a per-status summary
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	var orders []models.Order
	if status := models.OrderStatus(c.Query("status")); status != "" {
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter: " + string(status)})
			return
		}
		orders = h.orders.ListByStatus(status)
	} else {
		orders = h.orders.ListAll()
	}

	summary := map[models.OrderStatus]int{}
	for _, s := range models.Statuses {
		summary[s] = 0
	}
	revenue := decimal.Zero
	for _, o := range orders {
		summary[o.Status]++
		if o.Status == models.StatusCompleted {
			revenue = revenue.Add(o.Total)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": revenue.StringFixed(2),
		"count":         len(orders),
		"orders":        orders,
	})
}

func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		h.respondError(c, "admin_get_order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": h.view(order)})
}

// AdminUpdateOrderStatus drives the kitchen transitions
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	admin := middleware.GetIdentity(c)
	before, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		h.respondError(c, "admin_update_status", err)
		return
	}

	updated, err := h.orders.UpdateStatus(before.ID, req.Status, statemachine.ActorAdmin, admin.Name, req.Note)
	if err != nil {
		h.respondError(c, "admin_update_status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        updated.ID,
		"previous_status": before.Status,
		"current_status":  updated.Status,
	})
}

func (h *Handler) AdminCancelOrder(c *gin.Context) {
	admin := middleware.GetIdentity(c)
	updated, err := h.orders.Cancel(c.Param("id"), statemachine.ActorAdmin, admin.Name)
	if err != nil {
		h.respondError(c, "admin_cancel_order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled by admin",
		"order":   h.view(updated),
	})
}

// AdminSetWeather replaces the weather record. Existing pickup times are not touched.
func (h *Handler) AdminSetWeather(c *gin.Context) {
	var req SetWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	status, err := h.weather.SetStatus(*req.IsBad, middleware.GetIdentity(c))
	if err != nil {
		h.respondError(c, "set_weather", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Weather status updated",
		"weather": status,
	})
}

func (h *Handler) AdminFeedbackReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.FeedbackReport())
}
