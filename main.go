package main

import (
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/tipsybean/tipsybean-backend-go/config"
	"github.com/tipsybean/tipsybean-backend-go/database"
	"github.com/tipsybean/tipsybean-backend-go/handlers"
	"github.com/tipsybean/tipsybean-backend-go/notify"
	"github.com/tipsybean/tipsybean-backend-go/routes"
	"github.com/tipsybean/tipsybean-backend-go/service"
	"github.com/tipsybean/tipsybean-backend-go/store"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Connect to MongoDB (durable scope)
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Connect to Redis (session scope)
	if err := database.ConnectRedis(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.CloseRedis()

	durable := store.NewMongoStore(database.DB)
	sessionTTL := time.Duration(config.GetEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour
	sessions := store.NewRedisSessions(database.Redis, sessionTTL)

	// Order events are best-effort; without a broker they are dropped.
	var publisher notify.Publisher = notify.NopPublisher{}
	if brokers := config.GetEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher := notify.NewKafkaPublisher(strings.Split(brokers, ","))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Println("Publishing order events to Kafka")
	}

	adminHash, err := bcrypt.GenerateFromPassword(
		[]byte(config.GetEnv("ADMIN_PASSWORD", "Admin@123")),
		bcrypt.DefaultCost,
	)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	h := &handlers.Handler{
		Auth:              service.NewAuthService(durable, sessions, durable),
		Cart:              service.NewCartService(durable),
		Profile:           service.NewProfileService(durable),
		Orders:            service.NewOrderService(durable, durable, durable, durable, publisher),
		Products:          durable,
		AdminEmail:        config.GetEnv("ADMIN_EMAIL", "admin@tipsybean.com"),
		AdminPasswordHash: adminHash,
	}

	// Setup routes
	routes.SetupRoutes(e, h, sessions)

	// Start the server
	port := config.GetEnv("PORT", "3000")
	e.Logger.Fatal(e.Start(":" + port))
}
