package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-food-api/clock"
	"campus-food-api/config"
	"campus-food-api/handlers"
	"campus-food-api/middleware"
	"campus-food-api/repository"
	"campus-food-api/routes"
	"campus-food-api/store"
	"campus-food-api/weather"
)

type application struct {
	router *gin.Engine
	orders *store.OrderStore
	gate   *weather.Gate
}

// newApp restores persisted state and wires the HTTP surface around it
func newApp(cfg config.Config, db *gorm.DB, c clock.Clock, log *zap.Logger) (*application, error) {
	weatherRepo := repository.NewWeatherRepo(db)
	initial, found, err := weatherRepo.LoadWeather()
	if err != nil {
		return nil, err
	}
	if !found {
		initial = weather.Default(c)
	}
	gate := weather.NewGate(initial, weatherRepo, c, log)

	orders := store.New(repository.NewOrderRepo(db), gate, c, log, store.Options{VerifyTotal: cfg.VerifyTotal})
	if err := orders.Load(); err != nil {
		return nil, errors.Wrap(err, "restore orders")
	}

	auth := middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL)
	h := handlers.New(orders, gate, repository.NewMenuRepo(db), repository.NewUserRepo(db), auth, c, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())
	routes.SetupRoutes(r, h, auth)

	return &application{router: r, orders: orders, gate: gate}, nil
}
