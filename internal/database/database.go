package database

import (
	"fmt"
	"log"

	"github.com/budgetbuddy/budgetbuddy/internal/catalog"
	"github.com/budgetbuddy/budgetbuddy/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(databaseURL string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if databaseURL == "" || databaseURL == ":memory:" {
		db, err = gorm.Open(sqlite.Open(":memory:"), config)
	} else if len(databaseURL) > 10 && databaseURL[:6] == "sqlite" {
		// Strip "sqlite:" prefix for SQLite driver
		dbPath := databaseURL[7:]
		dbPath = dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
		db, err = gorm.Open(sqlite.Open(dbPath), config)
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.RewardEntry{},
	)

	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedChallenges inserts the built-in challenge catalog when the table is
// empty. Running it against an already seeded database is a no-op.
func SeedChallenges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count challenges: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Printf("Seeding challenge catalog with %d entries", len(catalog.SeedChallenges))
	for _, sc := range catalog.SeedChallenges {
		ch := models.Challenge{
			Title:       sc.Title,
			Description: sc.Description,
			Category:    sc.Category,
			Points:      sc.Points,
		}
		if err := db.Create(&ch).Error; err != nil {
			return fmt.Errorf("failed to seed challenge %q: %w", sc.Title, err)
		}
	}
	return nil
}
