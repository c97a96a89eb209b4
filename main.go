package main

import (
	"log"
	"os"

	"blindboard-backend/db"
	"blindboard-backend/routes"

	"github.com/gin-gonic/gin"
)

// @title Blindboard API
// @version 1.0
// @description REST API for the anonymous community platform
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
