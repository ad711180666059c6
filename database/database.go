package database

import (
	"fmt"
	"log"
	"time"

	"gamediary/config"
	"gamediary/igdb"
	"gamediary/models"
	"gamediary/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

var AdminUsername = "admin"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// populates the database with default values if needed
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=Europe/Paris", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.User{},
        &models.Profile{},
        &models.Genre{},
        &models.Perspective{},
        &models.Franchise{},
        &models.Game{},
        &models.GameCard{},
        &models.PlayerRequest{},
        &models.FormTemplate{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    Populate()
}

// InitRedis initializes the Redis client used for session caching
func InitRedis() {
    REDIS = redis.NewClient(&redis.Options{
        Addr:     config.RedisAddress,
        Password: config.RedisPassword,
    })
}

// Populate populates the database with default values if needed
func Populate() {
    var countUser int64

    // Check if there is no user in the database
    DB.Model(&models.User{}).Count(&countUser)
    if countUser == 0 {
        // Create default user admin with a default hashed password either from the .env file or the DefaultPassword constant
        password := DefaultPassword
        if config.DefaultPassword != "" {
            password = config.DefaultPassword
        }

        password, err := utils.HashPassword(password)
        if err != nil {
            panic(err)
        }

        user := models.User{
            Username: AdminUsername,
            Password: password,
            Role:     models.RoleAdmin,
        }
        if err := DB.Create(&user).Error; err != nil {
            log.Fatal("failed to create default admin user: ", err)
        }
        profile := models.Profile{
            UserID:       user.ID,
            RegisterDate: time.Now(),
        }
        DB.Create(&profile)
        log.Println("Default user admin created")
    }

    // Sync reference data from the metadata API when the tables are empty
    var countGenre, countPerspective int64
    DB.Model(&models.Genre{}).Count(&countGenre)
    DB.Model(&models.Perspective{}).Count(&countPerspective)

    if config.IGDBClientID == "" {
        if countGenre == 0 || countPerspective == 0 {
            log.Println("IGDB credentials missing, skipping reference data sync")
        }
        return
    }

    client := igdb.NewClient()
    if countGenre == 0 {
        genres, err := client.Genres()
        if err != nil {
            log.Println("Error while syncing genres: ", err)
        } else {
            for _, genre := range genres {
                DB.Create(&models.Genre{ID: genre.ID, Name: genre.Name})
            }
            log.Printf("Synced %d genres from the metadata API", len(genres))
        }
    }
    if countPerspective == 0 {
        perspectives, err := client.Perspectives()
        if err != nil {
            log.Println("Error while syncing perspectives: ", err)
        } else {
            for _, perspective := range perspectives {
                DB.Create(&models.Perspective{ID: perspective.ID, Name: perspective.Name})
            }
            log.Printf("Synced %d perspectives from the metadata API", len(perspectives))
        }
    }
}
