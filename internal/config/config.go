package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	AdminPassword string
	FavoritesPath string
}

// Load reads configuration from environment variables. ADMIN_PASSWORD may be
// a plain password or a bcrypt hash.
func Load() Config {
	cfg := Config{
		Addr:          os.Getenv("VAPE_SHOP_ADDR"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		FavoritesPath: os.Getenv("FAVORITES_PATH"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.FavoritesPath == "" {
		cfg.FavoritesPath = "./data/favorites.json"
	}
	return cfg
}
