package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"campus-food-api/models"
	"campus-food-api/repository"
)

type MenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required"`
	Type        models.FoodType `json:"type" binding:"required"`
	Available   *bool           `json:"available"`
	Image       string          `json:"image"`
}

type UpdateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Type        *models.FoodType `json:"type"`
	Image       *string          `json:"image"`
}

// ListMenu returns the catalog, filtered by category, type and availability (public)
func (h *Handler) ListMenu(c *gin.Context) {
	filter := repository.MenuFilter{
		Category:      c.Query("category"),
		Type:          models.FoodType(c.Query("type")),
		AvailableOnly: c.Query("available") == "true",
	}
	if filter.Type != "" && !filter.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be veg or non-veg"})
		return
	}

	items, err := h.menu.List(filter)
	if err != nil {
		h.respondError(c, "list_menu", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

func (h *Handler) AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be veg or non-veg"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	item := models.FoodItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Type:        req.Type,
		Available:   req.Available == nil || *req.Available,
		Image:       req.Image,
	}
	if err := h.menu.Create(&item); err != nil {
		h.respondError(c, "add_menu_item", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be veg or non-veg"})
			return
		}
		fields["type"] = *req.Type
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	item, err := h.menu.Update(c.Param("id"), fields)
	if err != nil {
		h.respondError(c, "update_menu_item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// ToggleMenuItem flips availability
func (h *Handler) ToggleMenuItem(c *gin.Context) {
	item, err := h.menu.ToggleAvailability(c.Param("id"))
	if err != nil {
		h.respondError(c, "toggle_menu_item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "item": item})
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if err := h.menu.Delete(c.Param("id")); err != nil {
		h.respondError(c, "delete_menu_item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
