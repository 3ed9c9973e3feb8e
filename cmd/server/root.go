package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "budgetbuddy",
	Short: "BudgetBuddy - budget tracking and savings challenges for students",
	Long: `BudgetBuddy is a budget-tracking backend for students.

It provides a REST API for logging expenses, viewing spending summaries,
completing savings challenges and ranking on the reward-point leaderboard.

Run 'budgetbuddy serve' to start the server, or 'budgetbuddy seed' to load
additional challenges into the catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
