package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"floralblossom/internal/config"
	"floralblossom/internal/domain"
)

// Sample catalog for manual testing. Writing it again is harmless; the
// file is replaced whole.
var sampleProducts = []domain.Product{
	{ID: 1, Title: "Classic Rose Bouquet", Price: 399, Image: "img/rose-bouquet.jpg"},
	{ID: 2, Title: "Tulip Bunch", Price: 249, Image: "img/tulip-bunch.jpg"},
	{ID: 3, Title: "Orchid Pot", Price: 549, Image: "img/orchid-pot.jpg"},
	{ID: 4, Title: "Lily Arrangement", Price: 449, Image: "img/lily-arrangement.jpg"},
	{ID: 5, Title: "Sunflower Basket", Price: 299, Image: "img/sunflower-basket.jpg"},
	{ID: 6, Title: "Mixed Seasonal Bouquet", Price: 349, Image: "img/mixed-seasonal.jpg"},
}

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatalf("create data dir: %v", err)
	}

	raw, err := json.MarshalIndent(sampleProducts, "", "  ")
	if err != nil {
		logger.Fatalf("encode catalog: %v", err)
	}

	path := filepath.Join(cfg.DataDir, "products.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logger.Fatalf("write catalog: %v", err)
	}

	logger.Printf("wrote %d products to %s", len(sampleProducts), path)
}
