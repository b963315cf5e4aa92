package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hisaab-hr/payroll-backend-go/internal/config"
	"github.com/hisaab-hr/payroll-backend-go/internal/domain/user"
	appHTTP "github.com/hisaab-hr/payroll-backend-go/internal/handler/http"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/database"
	"github.com/hisaab-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/hisaab-hr/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/hisaab-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/hisaab-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/hisaab-hr/payroll-backend-go/internal/service/payroll"

	migrate "github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(logger, dsn, cfg.App.MigrationsPath); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	if err := seedAdminUser(logger, userRepo, cfg.Admin); err != nil {
		logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg.App, jwtService, authHandler, employeeHandler, payrollHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server starting", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a short-lived
// database/sql connection; the pgx pool stays untouched.
func runMigrations(logger *slog.Logger, dsn, migrationsPath string) error {
	migrationDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer migrationDB.Close()

	driver, err := migratepg.WithInstance(migrationDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied")
	}
	return nil
}

// seedAdminUser creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set. An existing account with the same email is left
// untouched.
func seedAdminUser(logger *slog.Logger, userRepo user.UserRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	hashStr := string(hash)

	_, err = userRepo.Create(context.Background(), user.User{
		FullName:     "Administrator",
		Email:        cfg.Email,
		PasswordHash: &hashStr,
		Role:         user.RoleAdmin,
	})
	if errors.Is(err, user.ErrEmailExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Admin user seeded", slog.String("email", cfg.Email))
	return nil
}
