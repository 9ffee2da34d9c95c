package main

import (
	"context"
	"os"

	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	catalogpg "github.com/TheSamadAzeez/nexus-backend/internal/catalog/infra/postgres"
	"github.com/TheSamadAzeez/nexus-backend/pkg/config"
	"github.com/TheSamadAzeez/nexus-backend/pkg/logger"
	"github.com/TheSamadAzeez/nexus-backend/pkg/postgres"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name        string
	description string
	imageURL    string
	price       string
	stock       int32
}

var catalog = []seedProduct{
	{"Wireless Headphones", "Over-ear noise-cancelling headphones", "https://picsum.photos/seed/headphones/400", "199.99", 50},
	{"Mechanical Keyboard", "Tenkeyless board with hot-swappable switches", "https://picsum.photos/seed/keyboard/400", "89.99", 35},
	{"USB-C Hub", "7-in-1 hub with HDMI and card reader", "https://picsum.photos/seed/hub/400", "45.50", 120},
	{"Laptop Stand", "Aluminium stand, adjustable height", "https://picsum.photos/seed/stand/400", "34.00", 80},
	{"Webcam", "1080p webcam with privacy shutter", "https://picsum.photos/seed/webcam/400", "59.99", 25},
	{"Desk Mat", "90x40cm stitched-edge desk mat", "https://picsum.photos/seed/mat/400", "19.95", 200},
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "seed", Env: cfg.AppEnv, Level: cfg.LogLevel})

	db, err := postgres.Open(postgres.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	svc := catalogapp.NewService(catalogpg.NewProductRepo(db))
	ctx := context.Background()

	for _, sp := range catalog {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			log.Error("bad seed price", "product", sp.name, "err", err)
			os.Exit(1)
		}

		p, err := svc.CreateProduct(ctx, sp.name, sp.description, sp.imageURL, price, sp.stock)
		if err != nil {
			log.Error("seed product", "product", sp.name, "err", err)
			os.Exit(1)
		}
		log.Info("seeded product", "id", p.ID, "name", p.Name, "stock", p.Stock)
	}

	log.Info("seed complete", "products", len(catalog))
}
