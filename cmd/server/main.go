package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todo-board/internal/config"
	apphttp "todo-board/internal/http"
	"todo-board/internal/repository"
	"todo-board/internal/repository/memory"
	"todo-board/internal/repository/sqlite"
	"todo-board/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, todos, closeStore, err := buildStore(ctx, cfg.Store.Driver, logger)
	if err != nil {
		logger.Fatalf("setup store: %v", err)
	}
	defer closeStore()
	logger.Infof("using %s store", cfg.Store.Driver)

	userService := service.NewUserService(users)
	todoService := service.NewTodoService(todos)

	gin.SetMode(cfg.Gin.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(userService, todoService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStore returns the repositories for the configured driver and a func
// releasing their resources.
func buildStore(ctx context.Context, driver string, logger *logrus.Logger) (repository.UserRepository, repository.TodoRepository, func(), error) {
	var (
		users   repository.UserRepository
		todos   repository.TodoRepository
		closeFn = func() {}
	)

	switch driver {
	case config.StoreMemory:
		store := memory.NewStore()
		users = memory.NewUserRepository(store)
		todos = memory.NewTodoRepository(store)
	case config.StoreSQLite:
		db, err := sqlite.Open()
		if err != nil {
			return nil, nil, nil, err
		}
		users = sqlite.NewUserRepository(db)
		todos = sqlite.NewTodoRepository(db)
		closeFn = closeDB(db, logger)
	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}

	if err := users.Init(ctx); err != nil {
		closeFn()
		return nil, nil, nil, fmt.Errorf("init user repository: %w", err)
	}
	if err := todos.Init(ctx); err != nil {
		closeFn()
		return nil, nil, nil, fmt.Errorf("init todo repository: %w", err)
	}
	return users, todos, closeFn, nil
}

func closeDB(db *sql.DB, logger *logrus.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warnf("close database: %v", err)
		}
	}
}
