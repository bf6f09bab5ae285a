package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fastdelivery/cmd"
	nethttp "fastdelivery/internal/adapters/in/http"
	"fastdelivery/internal/adapters/out/postgres/courierrepo"
	"fastdelivery/internal/adapters/out/postgres/orderrepo"
	"fastdelivery/internal/adapters/out/postgres/storerepo"
	"fastdelivery/internal/adapters/out/postgres/userrepo"
	"fastdelivery/internal/adapters/out/redis/sessionstore"
	"fastdelivery/internal/core/application/usecases/commands"
	"fastdelivery/internal/jobs"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLog, err := newLogger(config.LogFile)
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	defer closeLog()

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	sessions := sessionstore.NewRedisSessionStore(
		config.RedisAddr, config.RedisPassword, config.RedisDB, nethttp.SessionTTL,
	)
	defer sessions.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	if err = sessions.Ping(startupCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	root := cmd.NewCompositionRoot(gormDB, sessions)

	if err = ensureAdminUser(startupCtx, &root, config); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}
	logger.Info("Admin user ensured", "username", config.AdminUsername)

	jobManager := jobs.NewJobManager(root.CreateGetOrderBacklogQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := nethttp.NewServer(root.HTTPHandlers(), root.SessionStore(), logger, config.Development())

	e := echo.New()
	e.HideBanner = true
	server.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("HTTP server starting", "addr", addr, "env", config.AppEnv)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", startErr)
			os.Exit(1)
		}
	}()

	waitForShutdown(e, logger)
}

// newLogger writes structured logs to stdout and to the configured log file.
func newLogger(logFile string) (*slog.Logger, func(), error) {
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(os.Stdout, file), nil))
	slog.SetDefault(logger)

	return logger, func() { _ = file.Close() }, nil
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&storerepo.StoreDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return gormDB, nil
}

// ensureAdminUser creates the bootstrap staff account on first start and
// re-hashes its credential if the stored hash no longer matches.
func ensureAdminUser(ctx context.Context, root *cmd.CompositionRoot, config cmd.Config) error {
	command, err := commands.NewEnsureAdminUserCommand(config.AdminUsername, config.AdminPassword)
	if err != nil {
		return err
	}

	handler := root.CreateEnsureAdminUserCommandHandler()
	_, err = handler.Handle(ctx, command)
	return err
}

func waitForShutdown(e *echo.Echo, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
