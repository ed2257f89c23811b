package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/clock"
	"campus-food-api/middleware"
	"campus-food-api/models"
	"campus-food-api/repository"
	"campus-food-api/statemachine"
	"campus-food-api/store"
	"campus-food-api/weather"
)

type MenuStore interface {
	List(filter repository.MenuFilter) ([]models.FoodItem, error)
	Get(id string) (models.FoodItem, error)
	Create(item *models.FoodItem) error
	Update(id string, fields map[string]interface{}) (models.FoodItem, error)
	ToggleAvailability(id string) (models.FoodItem, error)
	Delete(id string) error
}

type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (models.User, error)
	FindByID(id string) (models.User, error)
}

// Handler serves the HTTP API on top of the order store and weather gate
type Handler struct {
	orders  *store.OrderStore
	weather *weather.Gate
	menu    MenuStore
	users   UserStore
	auth    *middleware.Auth
	clock   clock.Clock
	log     *zap.Logger
}

func New(orders *store.OrderStore, gate *weather.Gate, menu MenuStore, users UserStore, auth *middleware.Auth, c clock.Clock, log *zap.Logger) *Handler {
	return &Handler{
		orders:  orders,
		weather: gate,
		menu:    menu,
		users:   users,
		auth:    auth,
		clock:   c,
		log:     log,
	}
}

// respondError maps a domain error onto its HTTP status
func (h *Handler) respondError(c *gin.Context, operation string, err error) {
	if te, ok := statemachine.AsTransitionError(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    te.From,
			"requested":         te.To,
			"reason":            te.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(te.From),
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthorization):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidState), errors.Is(err, apperrors.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("operation", operation), zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
