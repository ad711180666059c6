package services

import (
	"testing"
	"time"

	"gamediary/database"
	"gamediary/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB backs the package globals with an in-memory database so
// the service functions run against real queries.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// An in-memory database lives and dies with its connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Franchise{},
		&models.Genre{},
		&models.Perspective{},
		&models.Game{},
		&models.GameCard{},
		&models.PlayerRequest{},
		&models.FormTemplate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
}

func createTestUser(t *testing.T, username string, role models.Role, private bool) (*models.User, *models.Profile) {
	t.Helper()

	user := models.User{Username: username, Password: "x", Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	profile := models.Profile{UserID: user.ID, RegisterDate: time.Now(), IsPrivate: private}
	if err := database.DB.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile for %s: %v", username, err)
	}
	profile.User = &user
	user.Profile = &profile
	return &user, &profile
}

func createTestGame(t *testing.T, id uint, name, orderingName string) *models.Game {
	t.Helper()

	game := models.Game{ID: id, Name: name, OrderingName: orderingName, Year: 2020}
	if err := database.DB.Create(&game).Error; err != nil {
		t.Fatalf("failed to create game %s: %v", name, err)
	}
	return &game
}
