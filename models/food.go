package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "non-veg"
)

func (t FoodType) Valid() bool {
	return t == FoodVeg || t == FoodNonVeg
}

type FoodItem struct {
	ID          string          `json:"id" gorm:"primaryKey;size:36"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" gorm:"index"`
	Type        FoodType        `json:"type" gorm:"not null"`
	Available   bool            `json:"available"`
	Image       string          `json:"image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
