package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shakibwebx/GadegtsHub-Server/config"
	orderControllers "github.com/shakibwebx/GadegtsHub-Server/controllers/order"
	"github.com/shakibwebx/GadegtsHub-Server/middleware"
	"github.com/shakibwebx/GadegtsHub-Server/payment"
	"github.com/shakibwebx/GadegtsHub-Server/routes"
	"github.com/shakibwebx/GadegtsHub-Server/stores"
	"github.com/shakibwebx/GadegtsHub-Server/uploader"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Stores
	accounts := stores.NewAccountStore(db, cfg.BcryptSaltRounds)
	catalog := stores.NewCatalogStore(db)
	orders := stores.NewOrderStore(db)

	// Payment gateway + order lifecycle service
	gateway := payment.NewClient(cfg.SSL)
	orderService := orderControllers.NewService(catalog, orders, gateway)

	// Image uploads
	up, err := uploader.New(cfg.CloudinaryURL)
	if err != nil {
		log.Fatalf("❌ Cloudinary setup failed: %v", err)
	}
	if up == nil {
		log.Println("⚠️ CLOUDINARY_URL not set, image uploads disabled")
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.ErrorHandler())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gadgets Hub Server Is Running")
	})

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Cfg:      cfg,
		Accounts: accounts,
		Catalog:  catalog,
		Orders:   orderService,
		Uploader: up,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase connects to MongoDB and returns the database handle.
func initDatabase(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ DB ping failed: %v", err)
	}

	log.Println("✅ Connected to MongoDB")
	return client.Database(cfg.DBName)
}
