package repository

import (
	"github.com/shopspring/decimal"

	"campus-food-api/models"
)

func food(name, description string, price int64, category string, kind models.FoodType) models.FoodItem {
	return models.FoodItem{
		Name:        name,
		Description: description,
		Price:       decimal.NewFromInt(price),
		Category:    category,
		Type:        kind,
		Available:   true,
	}
}

// DefaultMenu is the canteen menu a fresh deployment starts with
func DefaultMenu() []models.FoodItem {
	return []models.FoodItem{
		food("Cornflakes, Hot Milk, Banana, Tea", "Healthy breakfast with cornflakes, banana, and hot milk.", 40, "breakfast", models.FoodVeg),
		food("Roti, Sabji, Sweet, Tea", "Traditional breakfast with chapati, vegetables, sweet and tea.", 50, "breakfast", models.FoodVeg),
		food("Idli, Sambar, Chutney, Tea", "South Indian breakfast with idli, sambar, chutney and tea.", 45, "breakfast", models.FoodVeg),
		food("Khichuri, Labra, Chutney, Papad", "Khichuri with mixed veg and chutney.", 60, "lunch", models.FoodVeg),
		food("Rice, Tomato Dal, Aloo Jhinge Posto, Fish Curry", "Bengali-style lunch with fish curry, rice and sabji.", 85, "lunch", models.FoodNonVeg),
		food("Rice, Dal, Mix Veg, Soyabean Curry", "Everyday veg thali.", 70, "lunch", models.FoodVeg),
		food("Rice, Dal, Seasonal Veg, Chicken Curry", "Everyday thali with chicken curry.", 90, "lunch", models.FoodNonVeg),
		food("Veg Sandwich, Tea", "Grilled sandwich with tea.", 35, "snack", models.FoodVeg),
		food("Dabeli, Tea", "Spiced potato bun with tea.", 30, "snack", models.FoodVeg),
		food("Pav Bhaji, Tea", "Buttered pav with bhaji and tea.", 40, "snack", models.FoodVeg),
		food("Rice / Roti, Dal, Seasonal Veg, Egg Curry", "Dinner plate with egg curry.", 70, "dinner", models.FoodNonVeg),
		food("Special Dinner (Paneer)", "Paneer special with rice or roti.", 100, "dinner", models.FoodVeg),
	}
}
