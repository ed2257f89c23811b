// Package weather owns the weather singleton that stretches pickup times.
package weather

import (
	"sync"

	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/clock"
	"campus-food-api/metrics"
	"campus-food-api/models"
)

// Repository persists the weather record on every change
type Repository interface {
	SaveWeather(status models.WeatherStatus) error
}

// Gate holds the current weather. Reads are concurrent; SetStatus is the only mutator.
type Gate struct {
	mu     sync.RWMutex
	status models.WeatherStatus
	repo   Repository
	clock  clock.Clock
	log    *zap.Logger
}

// Default is the record a fresh deployment starts with
func Default(c clock.Clock) models.WeatherStatus {
	return models.WeatherStatus{
		ID:        models.WeatherStatusRowID,
		IsBad:     false,
		UpdatedAt: c.Now(),
		UpdatedBy: models.WeatherSystemActor,
	}
}

// NewGate starts from initial, typically the persisted record or Default
func NewGate(initial models.WeatherStatus, repo Repository, c clock.Clock, log *zap.Logger) *Gate {
	initial.ID = models.WeatherStatusRowID
	metrics.SetBadWeather(initial.IsBad)
	return &Gate{status: initial, repo: repo, clock: c, log: log}
}

func (g *Gate) Status() models.WeatherStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// SetStatus replaces the whole record. Only admins may call it.
func (g *Gate) SetStatus(isBad bool, actor *models.Identity) (models.WeatherStatus, error) {
	if !actor.IsAdmin() {
		return models.WeatherStatus{}, apperrors.Authorization("only admin can update weather status")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	next := models.WeatherStatus{
		ID:        models.WeatherStatusRowID,
		IsBad:     isBad,
		UpdatedAt: g.clock.Now(),
		UpdatedBy: actor.Name,
	}
	if err := g.repo.SaveWeather(next); err != nil {
		return models.WeatherStatus{}, apperrors.Storage(err, "save weather")
	}
	g.status = next

	metrics.SetBadWeather(isBad)
	g.log.Info("weather status updated",
		zap.Bool("is_bad", isBad),
		zap.String("updated_by", actor.Name))

	return next, nil
}
