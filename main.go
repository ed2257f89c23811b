package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"campus-food-api/apperrors"
	"campus-food-api/clock"
	"campus-food-api/config"
	"campus-food-api/logger"
	"campus-food-api/models"
	"campus-food-api/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:   "campus-food-api",
		Usage:  "campus canteen ordering and pickup API",
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP API and the expiry sweeper", Action: serve},
			{Name: "migrate", Usage: "create or update the database schema", Action: migrate},
			{Name: "seed", Usage: "create the default admin and menu", Action: seed},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, errors.Wrap(err, "init logger")
	}
	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		return err
	}

	app, err := newApp(cfg, db, clock.Real{}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		return app.orders.RunSweeper(gctx, cfg.SweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func migrate(*cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	if _, err := config.OpenDB(cfg.DBPath); err != nil {
		return err
	}
	log.Info("database migrated", zap.String("path", cfg.DBPath))
	return nil
}

func seed(*cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		return err
	}

	created, err := seedAdmin(repository.NewUserRepo(db), cfg)
	if err != nil {
		return err
	}
	log.Info("admin account", zap.String("email", cfg.AdminEmail), zap.Bool("created", created))

	n, err := repository.NewMenuRepo(db).Seed(repository.DefaultMenu())
	if err != nil {
		return err
	}
	log.Info("menu seeded", zap.Int("items_added", n))
	return nil
}

// seedAdmin creates the configured admin unless the email is already registered
func seedAdmin(users *repository.UserRepo, cfg config.Config) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, errors.Wrap(err, "hash admin password")
	}
	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	err = users.Create(&admin)
	if errors.Is(err, apperrors.ErrAlreadyExists) {
		return false, nil
	}
	return err == nil, err
}
