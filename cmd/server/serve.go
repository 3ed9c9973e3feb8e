package main

import (
	"fmt"
	"log"

	"github.com/budgetbuddy/budgetbuddy/internal/config"
	"github.com/budgetbuddy/budgetbuddy/internal/database"
	"github.com/budgetbuddy/budgetbuddy/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BudgetBuddy API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := database.SeedChallenges(db); err != nil {
		return fmt.Errorf("failed to seed challenge catalog: %w", err)
	}

	router := server.NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting BudgetBuddy server on %s", addr)
	if cfg.TestMode {
		log.Println("TEST MODE ENABLED - Authentication bypassed")
	}
	return router.Run(addr)
}
