package weather

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-food-api/apperrors"
	"campus-food-api/clock"
	"campus-food-api/models"
)

type fakeRepository struct {
	mu    sync.Mutex
	saved []models.WeatherStatus
	err   error
}

func (f *fakeRepository) SaveWeather(status models.WeatherStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, status)
	return nil
}

func setup(t *testing.T) (*Gate, *fakeRepository, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	repo := &fakeRepository{}
	return NewGate(Default(c), repo, c, zap.NewNop()), repo, c
}

func TestDefaultStatus(t *testing.T) {
	gate, _, c := setup(t)

	status := gate.Status()
	assert.False(t, status.IsBad)
	assert.Equal(t, models.WeatherSystemActor, status.UpdatedBy)
	assert.Equal(t, c.Now(), status.UpdatedAt)
}

func TestSetStatus(t *testing.T) {
	gate, repo, c := setup(t)
	admin := &models.Identity{ID: "a1", Name: "Canteen Admin", Role: models.RoleAdmin}

	t.Run("non admin roles are rejected", func(t *testing.T) {
		for _, role := range []models.UserRole{models.RoleStudent, models.RoleFaculty, models.RoleHOD} {
			_, err := gate.SetStatus(true, &models.Identity{ID: "u1", Name: "U", Role: role})
			assert.ErrorIs(t, err, apperrors.ErrAuthorization)
		}
		_, err := gate.SetStatus(true, nil)
		assert.ErrorIs(t, err, apperrors.ErrAuthorization)

		assert.False(t, gate.Status().IsBad)
		assert.Empty(t, repo.saved)
	})

	t.Run("admin replaces the record", func(t *testing.T) {
		c.Advance(10 * time.Minute)

		status, err := gate.SetStatus(true, admin)
		require.NoError(t, err)
		assert.True(t, status.IsBad)
		assert.Equal(t, "Canteen Admin", status.UpdatedBy)
		assert.Equal(t, c.Now(), status.UpdatedAt)
		assert.Equal(t, status, gate.Status())

		require.Len(t, repo.saved, 1)
		assert.Equal(t, status, repo.saved[0])
	})

	t.Run("storage failure leaves the record untouched", func(t *testing.T) {
		before := gate.Status()
		repo.err = errors.New("disk full")

		_, err := gate.SetStatus(false, admin)
		assert.ErrorIs(t, err, apperrors.ErrStorage)
		assert.Equal(t, before, gate.Status())
	})
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	gate, _, _ := setup(t)
	admin := &models.Identity{ID: "a1", Name: "Admin", Role: models.RoleAdmin}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(bad bool) {
			defer wg.Done()
			_, _ = gate.SetStatus(bad, admin)
		}(i%2 == 0)
		go func() {
			defer wg.Done()
			s := gate.Status()
			assert.Contains(t, []string{models.WeatherSystemActor, "Admin"}, s.UpdatedBy)
		}()
	}
	wg.Wait()
}
