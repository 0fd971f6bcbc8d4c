package main

import (
	"context"
	"flag"
	"time"

	"crud/inner/common"
	"crud/inner/database"
	"crud/inner/department"
	"crud/inner/employee"
	"crud/inner/seeder"
	"crud/inner/validator"

	"go.uber.org/zap"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	count := flag.Int("employees", 100, "number of employees to create")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	schemaOnly := flag.Bool("schema-only", false, "create tables and exit")
	flag.Parse()

	var cfg = common.GetConfig(*envFile)
	var logger = common.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.ConnectDbWithCfg(cfg, logger)
	if err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := database.ApplySchema(ctx, db); err != nil {
		logger.Fatal("Schema creation failed", zap.Error(err))
	}
	if *schemaOnly {
		logger.Info("Schema applied")
		return
	}

	var employeeService = employee.NewService(employee.NewEmployeeRepository(db), validator.New(), logger)
	var s = seeder.New(department.NewDepartmentRepository(db), employeeService, logger, *seed)

	result, err := s.Seed(ctx, seeder.DefaultDepartments, *count)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Seeding finished",
		zap.Int("departments", result.Departments),
		zap.Int("employees", result.Employees),
		zap.Int("skipped", result.Skipped))
}
