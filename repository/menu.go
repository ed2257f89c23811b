package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"campus-food-api/apperrors"
	"campus-food-api/models"
)

type MenuFilter struct {
	Category      string
	Type          models.FoodType
	AvailableOnly bool
}

type MenuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) List(filter MenuFilter) ([]models.FoodItem, error) {
	query := r.db.Model(&models.FoodItem{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	items := []models.FoodItem{}
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "list menu")
	}
	return items, nil
}

func (r *MenuRepo) Get(id string) (models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, apperrors.NotFound("menu item %s", id)
	}
	return item, errors.Wrap(err, "get menu item")
}

func (r *MenuRepo) Create(item *models.FoodItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return errors.Wrap(r.db.Create(item).Error, "create menu item")
}

// Update applies a partial update; fields are column names
func (r *MenuRepo) Update(id string, fields map[string]interface{}) (models.FoodItem, error) {
	item, err := r.Get(id)
	if err != nil {
		return item, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&item).Updates(fields).Error; err != nil {
			return item, errors.Wrap(err, "update menu item")
		}
	}
	return r.Get(id)
}

func (r *MenuRepo) ToggleAvailability(id string) (models.FoodItem, error) {
	item, err := r.Get(id)
	if err != nil {
		return item, err
	}
	return r.Update(id, map[string]interface{}{"available": !item.Available})
}

func (r *MenuRepo) Delete(id string) error {
	res := r.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete menu item")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("menu item %s", id)
	}
	return nil
}

// Seed inserts items only when the menu is empty and reports how many were added
func (r *MenuRepo) Seed(items []models.FoodItem) (int, error) {
	var count int64
	if err := r.db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count menu")
	}
	if count > 0 {
		return 0, nil
	}
	for i := range items {
		if err := r.Create(&items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
