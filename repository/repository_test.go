package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus-food-api/apperrors"
	"campus-food-api/config"
	"campus-food-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleOrder(id string, createdAt time.Time) *models.Order {
	return &models.Order{
		ID:       id,
		UserID:   "u1",
		UserName: "Asha",
		UserRole: models.RoleStudent,
		Items: []models.LineItem{
			{LineID: "l1", FoodID: "f1", Name: "Dabeli, Tea", Price: decimal.NewFromInt(30), Quantity: 2},
			{LineID: "l2", FoodID: "f2", Name: "Pav Bhaji, Tea", Price: decimal.RequireFromString("40.50"), Quantity: 1},
		},
		Status:     models.StatusPending,
		Total:      decimal.RequireFromString("100.50"),
		PickupTime: createdAt.Add(45 * time.Minute),
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		StatusHistory: []models.OrderStatusHistory{
			{OrderID: id, ToStatus: models.StatusPending, ChangedBy: "Asha", Note: "Order placed", CreatedAt: createdAt},
		},
	}
}

func TestOrderRepoRoundTrip(t *testing.T) {
	repo := NewOrderRepo(openTestDB(t))

	require.NoError(t, repo.CreateOrder(sampleOrder("o2", base.Add(time.Minute))))
	require.NoError(t, repo.CreateOrder(sampleOrder("o1", base)))

	orders, err := repo.LoadOrders()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "o1", first.ID)
	assert.Equal(t, models.RoleStudent, first.UserRole)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, first.PickupTime.Equal(base.Add(45*time.Minute)))
	require.Len(t, first.Items, 2)
	assert.Equal(t, "l1", first.Items[0].LineID)
	assert.Equal(t, 2, first.Items[0].Quantity)
	assert.True(t, first.Items[1].Price.Equal(decimal.RequireFromString("40.50")))
	require.Len(t, first.StatusHistory, 1)
	assert.Equal(t, "Order placed", first.StatusHistory[0].Note)
	assert.Nil(t, first.Feedback)
}

func TestOrderRepoUpdateStatus(t *testing.T) {
	repo := NewOrderRepo(openTestDB(t))
	require.NoError(t, repo.CreateOrder(sampleOrder("o1", base)))

	at := base.Add(10 * time.Minute)
	err := repo.UpdateOrderStatus("o1", models.StatusReady, &models.OrderStatusHistory{
		OrderID: "o1", FromStatus: models.StatusPending, ToStatus: models.StatusReady,
		ChangedBy: "Canteen Admin", CreatedAt: at,
	})
	require.NoError(t, err)

	orders, err := repo.LoadOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusReady, orders[0].Status)
	assert.True(t, orders[0].UpdatedAt.Equal(at))
	require.Len(t, orders[0].StatusHistory, 2)
	assert.Equal(t, models.StatusPending, orders[0].StatusHistory[1].FromStatus)
	assert.Equal(t, "Canteen Admin", orders[0].StatusHistory[1].ChangedBy)
}

func TestOrderRepoUpdateStatusUnknownOrder(t *testing.T) {
	repo := NewOrderRepo(openTestDB(t))

	err := repo.UpdateOrderStatus("missing", models.StatusReady, &models.OrderStatusHistory{
		OrderID: "missing", ToStatus: models.StatusReady, CreatedAt: base,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderRepoFeedback(t *testing.T) {
	repo := NewOrderRepo(openTestDB(t))
	require.NoError(t, repo.CreateOrder(sampleOrder("o1", base)))

	require.NoError(t, repo.SaveFeedback(&models.Feedback{OrderID: "o1", Rating: 4, Comment: "Tasty", CreatedAt: base}))
	assert.Error(t, repo.SaveFeedback(&models.Feedback{OrderID: "o1", Rating: 2, CreatedAt: base}))

	orders, err := repo.LoadOrders()
	require.NoError(t, err)
	require.NotNil(t, orders[0].Feedback)
	assert.Equal(t, 4, orders[0].Feedback.Rating)
	assert.Equal(t, "Tasty", orders[0].Feedback.Comment)
}

func TestWeatherRepo(t *testing.T) {
	repo := NewWeatherRepo(openTestDB(t))

	_, found, err := repo.LoadWeather()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SaveWeather(models.WeatherStatus{IsBad: true, UpdatedAt: base, UpdatedBy: "Canteen Admin"}))
	require.NoError(t, repo.SaveWeather(models.WeatherStatus{IsBad: false, UpdatedAt: base.Add(time.Hour), UpdatedBy: "Night Admin"}))

	status, found, err := repo.LoadWeather()
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, status.IsBad)
	assert.Equal(t, "Night Admin", status.UpdatedBy)
	assert.True(t, status.UpdatedAt.Equal(base.Add(time.Hour)))
}

func TestMenuRepoCRUD(t *testing.T) {
	repo := NewMenuRepo(openTestDB(t))

	item := models.FoodItem{
		Name: "Veg Sandwich, Tea", Price: decimal.NewFromInt(35),
		Category: "snack", Type: models.FoodVeg, Available: true,
	}
	require.NoError(t, repo.Create(&item))
	require.NotEmpty(t, item.ID)

	got, err := repo.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Veg Sandwich, Tea", got.Name)

	updated, err := repo.Update(item.ID, map[string]interface{}{"price": decimal.NewFromInt(38)})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(38)))

	toggled, err := repo.ToggleAvailability(item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Available)

	require.NoError(t, repo.Delete(item.ID))
	_, err = repo.Get(item.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(item.ID), apperrors.ErrNotFound)
}

func TestMenuRepoFilterAndSeed(t *testing.T) {
	repo := NewMenuRepo(openTestDB(t))

	n, err := repo.Seed(DefaultMenu())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultMenu()), n)

	n, err = repo.Seed(DefaultMenu())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultMenu()))

	lunch, err := repo.List(MenuFilter{Category: "lunch", Type: models.FoodNonVeg})
	require.NoError(t, err)
	assert.Len(t, lunch, 2)
	for _, item := range lunch {
		assert.Equal(t, "lunch", item.Category)
		assert.Equal(t, models.FoodNonVeg, item.Type)
	}

	_, err = repo.ToggleAvailability(lunch[0].ID)
	require.NoError(t, err)
	available, err := repo.List(MenuFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, available, len(DefaultMenu())-1)
}

func TestUserRepo(t *testing.T) {
	repo := NewUserRepo(openTestDB(t))

	user := models.User{Name: "Dr. Rao", Email: "rao@campus.edu", PasswordHash: "x", Role: models.RoleHOD}
	require.NoError(t, repo.Create(&user))
	require.NotEmpty(t, user.ID)

	dup := models.User{Name: "Someone", Email: "rao@campus.edu", PasswordHash: "y", Role: models.RoleStudent}
	assert.ErrorIs(t, repo.Create(&dup), apperrors.ErrAlreadyExists)

	byEmail, err := repo.FindByEmail("rao@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, models.RoleHOD, byEmail.Role)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", byID.Name)

	_, err = repo.FindByEmail("nobody@campus.edu")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.FindByID("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
