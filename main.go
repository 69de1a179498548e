package main

import (
	"log"

	"opora/config"
	"opora/database"
	authRoutes "opora/routers/authRoutes"
	bookingRoutes "opora/routers/bookingRoutes"
	contentRoutes "opora/routers/contentRoutes"
	reviewRoutes "opora/routers/reviewRoutes"
	siteTextRoutes "opora/routers/siteTextRoutes"
	uploadRoutes "opora/routers/uploadRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,PUT",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	siteTextRoutes.SetupSiteTextRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
