package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"campus-food-api/models"
)

type WeatherRepo struct {
	db *gorm.DB
}

func NewWeatherRepo(db *gorm.DB) *WeatherRepo {
	return &WeatherRepo{db: db}
}

// SaveWeather upserts the singleton row
func (r *WeatherRepo) SaveWeather(status models.WeatherStatus) error {
	status.ID = models.WeatherStatusRowID
	return errors.Wrap(r.db.Save(&status).Error, "save weather status")
}

// LoadWeather returns the stored record; found is false on a fresh database
func (r *WeatherRepo) LoadWeather() (status models.WeatherStatus, found bool, err error) {
	err = r.db.First(&status, models.WeatherStatusRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WeatherStatus{}, false, nil
	}
	if err != nil {
		return models.WeatherStatus{}, false, errors.Wrap(err, "load weather status")
	}
	return status, true, nil
}
