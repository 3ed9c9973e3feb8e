// Package server assembles repositories, services, middleware and routes
// into a runnable gin engine. The serve command and the e2e tests both build
// the application through NewRouter.
package server

import (
	"net/http"

	"github.com/budgetbuddy/budgetbuddy/internal/config"
	"github.com/budgetbuddy/budgetbuddy/internal/handlers"
	"github.com/budgetbuddy/budgetbuddy/internal/middleware"
	"github.com/budgetbuddy/budgetbuddy/internal/repository"
	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires the full application on top of an already connected and
// migrated database.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	userChallengeRepo := repository.NewUserChallengeRepository(db)
	rewardRepo := repository.NewRewardRepository(db)

	accountService := services.NewAccountService(userRepo, cfg.JWT.Secret, cfg.DefaultBudget)
	ledgerService := services.NewLedgerService(expenseRepo, userRepo)
	challengeService := services.NewChallengeService(challengeRepo, userChallengeRepo, userRepo, rewardRepo, db)
	leaderboardService := services.NewLeaderboardService(userRepo, cfg.LeaderboardSize)
	exportService := services.NewExportService(userRepo, expenseRepo, cfg.ExportSigningKey)

	authMiddleware := middleware.NewAuthMiddleware(accountService, cfg.TestMode)
	adminMiddleware := middleware.NewAdminMiddleware(accountService, cfg.AdminUsers)

	authHandler := handlers.NewAuthHandler(accountService)
	expenseHandler := handlers.NewExpenseHandler(ledgerService, exportService)
	spendingHandler := handlers.NewSpendingHandler(ledgerService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	budgetHandler := handlers.NewBudgetHandler(accountService, ledgerService)
	tipsHandler := handlers.NewTipsHandler()
	adminHandler := handlers.NewAdminHandler(userRepo, rewardRepo)

	router := gin.Default()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("budgetbuddy_session", store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.GET("/dashboard", spendingHandler.Dashboard)
			authenticated.GET("/spending", spendingHandler.Spending)
			authenticated.GET("/tips", tipsHandler.Tip)

			authenticated.POST("/expenses", expenseHandler.AddExpense)
			authenticated.GET("/expenses/recent", expenseHandler.RecentExpenses)
			authenticated.GET("/expenses/export", expenseHandler.ExportCSV)
			authenticated.GET("/expenses/export/signed", expenseHandler.SignedExport)
			authenticated.POST("/expenses/export/verify", expenseHandler.VerifyExport)

			authenticated.GET("/challenges/available", challengeHandler.Available)
			authenticated.POST("/challenges/join", challengeHandler.Join)
			authenticated.GET("/challenges/active", challengeHandler.Active)
			authenticated.POST("/challenges/update", challengeHandler.UpdateProgress)
			authenticated.GET("/rewards/history", challengeHandler.RewardHistory)

			authenticated.GET("/leaderboard", leaderboardHandler.Leaderboard)

			authenticated.GET("/budget/goal", budgetHandler.Goal)
			authenticated.PUT("/budget", budgetHandler.Update)
		}

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(adminMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/rewards", adminHandler.ListRewards)
			admin.PUT("/points/:id", adminHandler.AdjustPoints)
		}
	}

	return router
}
