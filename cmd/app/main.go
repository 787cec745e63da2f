package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/vaporhub/vape-shop-backend/internal/admin"
	"github.com/vaporhub/vape-shop-backend/internal/catalog"
	"github.com/vaporhub/vape-shop-backend/internal/config"
	"github.com/vaporhub/vape-shop-backend/internal/deals"
	"github.com/vaporhub/vape-shop-backend/internal/favorite"
	"github.com/vaporhub/vape-shop-backend/internal/flavor"
	"github.com/vaporhub/vape-shop-backend/internal/settings"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	migrate(db)

	flavorRepo := flavor.NewPostgresRepository(db)
	flavorService := flavor.NewService(flavorRepo)
	flavorHandler := flavor.NewHandler(flavorService)
	catalogHandler := catalog.NewHandler(flavorService)

	settingsService := settings.NewService(settings.NewPostgresRepository(db))
	settingsHandler := settings.NewHandler(settingsService)

	dealsService := deals.NewService(settingsService, deals.NewPostgresRepository(db))
	dealsHandler := deals.NewHandler(dealsService)

	if err := os.MkdirAll(filepath.Dir(cfg.FavoritesPath), 0755); err != nil {
		log.Fatalf("could not create favorites directory: %v", err)
	}
	favoriteService := favorite.NewService(favorite.NewFileRepository(cfg.FavoritesPath))
	favoriteHandler := favorite.NewHandler(favoriteService)

	adminService, err := admin.NewService(cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("could not initialize admin auth: %v", err)
	}
	adminHandler := admin.NewHandler(adminService)

	adminHandler.RegisterPublicRoutes(app)
	flavorHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	settingsHandler.RegisterPublicRoutes(app)
	dealsHandler.RegisterPublicRoutes(app)
	favoriteHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	flavorHandler.RegisterProtectedRoutes(app)
	settingsHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// migrate runs the idempotent DDL the app needs at boot.
func migrate(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS flavors (
		id TEXT PRIMARY KEY,
		"flavorName" TEXT NOT NULL DEFAULT '',
		manufacturer TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		"shortDescription" TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT 'Both',
		categories TEXT[] NOT NULL DEFAULT '{}',
		variants JSONB NOT NULL DEFAULT '[]',
		"vgPgRatio" TEXT NOT NULL DEFAULT '',
		"imageURL" TEXT,
		"dateAdded" TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		panic(err)
	}

	// speeds up the newest view and the default catalog ordering
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS flavors_date_added_idx ON flavors ("dateAdded" DESC)`); err != nil {
		fmt.Printf("warning: could not create dateAdded index: %v\n", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS flavors_manufacturer_idx ON flavors (manufacturer)`); err != nil {
		fmt.Printf("warning: could not create manufacturer index: %v\n", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		id INT PRIMARY KEY,
		"logoURL" TEXT,
		"lineOfTheMonth" TEXT
	)`); err != nil {
		panic(err)
	}
}
