package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crud/inner/common"
	"crud/inner/database"
	"crud/inner/department"
	"crud/inner/employee"
	"crud/inner/info"
	"crud/inner/validator"
	"crud/inner/web"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title       Employee CRUD API
// @version     1.0
// @description Employee records: create, read, partial update, single and batch delete, paginated listing.
// @BasePath    /
func main() {
	var cfg = common.GetConfig(".env")
	var logger = common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing db", zap.Error(err))
		}
	}()

	var server = build(cfg, db, logger)

	go func() {
		logger.Info("HTTP server started", zap.String("port", cfg.AppPort))
		if err := server.App.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.App.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// build собирает репозитории, сервисы и контроллеры и регистрирует маршруты
func build(cfg common.Config, db *sqlx.DB, logger *common.Logger) *web.Server {
	var server = web.NewServer(cfg, logger)
	var vld = validator.New()

	var departmentRepo = department.NewDepartmentRepository(db)
	var departmentService = department.NewService(departmentRepo, logger)
	department.NewController(server, departmentService, logger).RegisterRoutes()

	var employeeRepo = employee.NewEmployeeRepository(db)
	var employeeService = employee.NewService(employeeRepo, vld, logger)
	employee.NewController(server, employeeService, logger).RegisterRoutes()

	info.NewController(server, cfg, db, logger).RegisterRoutes()
	return server
}
