package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-food-api/models"
	"campus-food-api/pickup"
	"campus-food-api/statemachine"
	"campus-food-api/store"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Campus Food Ordering API",
		"time":    h.clock.Now(),
	})
}

// GetWeather returns the current weather record and the pickup minutes it implies per role
func (h *Handler) GetWeather(c *gin.Context) {
	status := h.weather.Status()

	minutes := gin.H{}
	for _, role := range []models.UserRole{models.RoleHOD, models.RoleFaculty, models.RoleStudent} {
		minutes[string(role)] = pickup.Minutes(role, status.IsBad)
	}

	c.JSON(http.StatusOK, gin.H{
		"weather":        status,
		"pickup_minutes": minutes,
	})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states":                models.Statuses,
		"transitions":           statemachine.GetAllTransitions(),
		"cancel_window_minutes": int(store.CancelWindow.Minutes()),
		"note":                  "Users may cancel a pending order within the cancel window; expired pending orders are cancelled by the system.",
	})
}
