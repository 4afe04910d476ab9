package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"faultmesh/internal/api"
	"faultmesh/internal/config"
	"faultmesh/pkg/database"
	"faultmesh/pkg/utils"
)

func main() {
	cfg := config.InitConfig()

	utils.InitJWTSecret(cfg.JWT.Secret)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = "./data.db"
	}
	database.InitDB(dbPath)

	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()
	api.SetupRoutes(router)

	log.Printf("listening on :%s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %s\n", err)
	}
}
