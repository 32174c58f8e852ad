package database

import (
	"log"
	"os"
	"path/filepath"

	"production-app/config"
	"production-app/internal/domain/budget"
	"production-app/internal/domain/contracts"
	"production-app/internal/domain/footage"
	"production-app/internal/domain/projects"
	"production-app/internal/domain/roles"
	"production-app/internal/domain/scenes"
	"production-app/internal/domain/team"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	var (
		db  *gorm.DB
		err error
	)

	switch config.DB_DRIVER {
	case "postgres":
		db, err = gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	case "sqlite":
		os.MkdirAll(filepath.Dir(config.SQLITE_PATH), 0755)
		// SQLite only honors ON DELETE actions with the pragma enabled.
		db, err = gorm.Open(sqlite.Open(config.SQLITE_PATH+"?_foreign_keys=on"), &gorm.Config{})
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", config.DB_DRIVER)
	}

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}

// Migrate creates the production schema, parents before children so foreign
// keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// lookup + people
		&roles.ProductionRole{},
		&team.TeamMember{},

		// projects and everything owned by them
		&projects.AudiovisualProject{},
		&scenes.Scene{},
		&footage.RecordedMaterial{},
		&budget.BudgetLineItem{},
		&contracts.TalentContract{},
	)
}
