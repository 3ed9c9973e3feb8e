package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/budgetbuddy/budgetbuddy/internal/config"
	"github.com/budgetbuddy/budgetbuddy/internal/database"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type ChallengeImport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
}

var (
	seedFile     string
	skipExisting bool
	seedStrict   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the challenge catalog",
	Long: `Seed the challenge catalog.

Without flags this inserts the built-in catalog when the table is empty.
With --file, additional challenges are loaded from a JSON file:

[
  {"title": "No takeout week", "description": "...", "category": "Habits", "points": 80}
]

Existing titles are skipped unless --strict is set, in which case any
duplicate fails the whole run.`,
	Example: `  budgetbuddy seed
  budgetbuddy seed -f challenges.json
  budgetbuddy seed -f challenges.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON file with extra challenges")
	seedCmd.Flags().BoolVar(&skipExisting, "skip-existing", true, "Skip challenges whose title already exists")
	seedCmd.Flags().BoolVar(&seedStrict, "strict", false, "Fail on any duplicate or invalid entry")
}

func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := database.SeedChallenges(db); err != nil {
		return fmt.Errorf("failed to seed built-in catalog: %w", err)
	}

	if seedFile == "" {
		log.Println("Built-in catalog seeded")
		return nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var imports []ChallengeImport
	if err := json.Unmarshal(data, &imports); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	log.Printf("Importing %d challenges from %s", len(imports), seedFile)

	imported := 0
	skipped := 0

	for _, ci := range imports {
		if err := importChallenge(db, ci); err != nil {
			if seedStrict {
				return fmt.Errorf("import failed for %q: %w", ci.Title, err)
			}
			log.Printf("Skipped %q: %v", ci.Title, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Import complete: %d imported, %d skipped", imported, skipped)
	return nil
}

func importChallenge(db *gorm.DB, ci ChallengeImport) error {
	if ci.Title == "" {
		return fmt.Errorf("empty title")
	}
	if ci.Points <= 0 {
		return fmt.Errorf("points must be positive")
	}

	var count int64
	if err := db.Model(&models.Challenge{}).Where("title = ?", ci.Title).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		if skipExisting && !seedStrict {
			return fmt.Errorf("title already exists")
		}
		return fmt.Errorf("duplicate title")
	}

	challenge := models.Challenge{
		Title:       ci.Title,
		Description: ci.Description,
		Category:    ci.Category,
		Points:      ci.Points,
	}
	return db.Create(&challenge).Error
}
