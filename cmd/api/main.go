// Package main is the entry point for the Signance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/signance/backend/config"
	"github.com/signance/backend/internal/application/usecase/auth"
	"github.com/signance/backend/internal/application/usecase/budget"
	"github.com/signance/backend/internal/application/usecase/report"
	"github.com/signance/backend/internal/application/usecase/saving"
	"github.com/signance/backend/internal/application/usecase/transaction"
	"github.com/signance/backend/internal/infra/db"
	"github.com/signance/backend/internal/infra/server/router"
	"github.com/signance/backend/internal/integration/adapters"
	"github.com/signance/backend/internal/integration/entrypoint/controller"
	"github.com/signance/backend/internal/integration/entrypoint/middleware"
	"github.com/signance/backend/internal/integration/persistence"
	"github.com/signance/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Signance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.SavingGoalModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	healthController := controller.NewHealthController(database.HealthCheck)

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	tokenRepo := persistence.NewTokenRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())
	savingRepo := persistence.NewSavingRepository(database.DB())
	ledgerRepo := persistence.NewLedgerRepository(database.DB())

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Saving goal use cases
	createSavingUseCase := saving.NewCreateSavingUseCase(savingRepo)
	listSavingsUseCase := saving.NewListSavingsUseCase(savingRepo)
	updateSavingUseCase := saving.NewUpdateSavingUseCase(savingRepo)
	setSavingAmountUseCase := saving.NewSetSavingAmountUseCase(savingRepo)
	deleteSavingUseCase := saving.NewDeleteSavingUseCase(savingRepo)

	// Reporting use cases
	monthlySpendingUseCase := report.NewGetMonthlySpendingUseCase(ledgerRepo)
	categorySpendingUseCase := report.NewGetCategorySpendingUseCase(ledgerRepo)
	trailingSeriesUseCase := report.NewGetTrailingSeriesUseCase(ledgerRepo)
	budgetOverviewUseCase := report.NewGetBudgetOverviewUseCase(budgetRepo, ledgerRepo)
	savingsOverviewUseCase := report.NewGetSavingsOverviewUseCase(savingRepo)

	// Controllers
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshUseCase,
		logoutUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	savingController := controller.NewSavingController(
		createSavingUseCase,
		listSavingsUseCase,
		updateSavingUseCase,
		setSavingAmountUseCase,
		deleteSavingUseCase,
	)
	dashboardController := controller.NewDashboardController(
		monthlySpendingUseCase,
		categorySpendingUseCase,
		trailingSeriesUseCase,
		budgetOverviewUseCase,
		savingsOverviewUseCase,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(newAttemptStore(&cfg.Redis))
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Router and HTTP server
	apiRouter := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		savingController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := apiRouter.Setup(cfg.Server.Environment)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

// newAttemptStore builds the rate limiter backend: Redis when configured,
// otherwise in-process counters.
func newAttemptStore(cfg *config.RedisConfig) middleware.AttemptStore {
	if cfg.URL == "" {
		return middleware.NewMemoryAttemptStore()
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, using in-memory rate limiting", "error", err)
		return middleware.NewMemoryAttemptStore()
	}

	client := redis.NewClient(opts)
	slog.Info("Rate limiting backed by Redis", "addr", opts.Addr)
	return middleware.NewRedisAttemptStore(client)
}
