package main

import (
	"log"

	"gamediary/config"
	"gamediary/database"
	"gamediary/middleware"
	v1 "gamediary/routes/v1"

	_ "gamediary/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Game Diary API
// @version 1.0
// @description REST API for the game diary: catalog, profiles, game cards, support requests and form templates
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	middleware.UpdateSystemMetrics()
	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
