package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "servicehub.com/servicehub/internal/configs"
	httpapi "servicehub.com/servicehub/internal/http"
	middleware "servicehub.com/servicehub/internal/http/middlewares"
	"servicehub.com/servicehub/internal/logging"
	repository "servicehub.com/servicehub/internal/repositories"
	"servicehub.com/servicehub/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the services marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logging.Logger.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init(cfg.LogFile)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		database := config.NewDatabase(cfg.DatabaseDSN)

		users := repository.NewUserRepository(database)
		tasks := repository.NewTaskRepository(database)
		responses := repository.NewResponseRepository(database)
		subscriptions := repository.NewSubscriptionRepository(database)
		reviews := repository.NewReviewRepository(database)
		notificationsRepo := repository.NewNotificationRepository(database)

		notifications := services.NewNotificationService(notificationsRepo)
		auth := services.NewAuthService(users, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
		taskService := services.NewTaskService(users, tasks, responses, notifications)
		listings := services.NewListingService(tasks)
		responseService := services.NewResponseService(users, tasks, responses, notifications)
		offers := services.NewOfferService(tasks, responses, notifications)
		reviewService := services.NewReviewService(tasks, reviews)
		subscriptionService := services.NewSubscriptionService(users, subscriptions)

		e := echo.New()
		e.HideBanner = true

		redisClient, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			logging.Logger.WithError(err).Fatal("failed to create redis client")
		}
		if redisClient != nil {
			defer redisClient.Close()
			e.Use(middleware.RedisRateLimiter(redisClient, cfg.RateLimit, time.Minute))
		} else {
			e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
		}

		handler := httpapi.NewHandler(
			auth, taskService, listings, responseService,
			offers, reviewService, subscriptionService, notifications,
		)
		httpapi.Register(e, handler, auth)

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logging.Logger.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
		logging.Logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
