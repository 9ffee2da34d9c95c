package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/TheSamadAzeez/nexus-backend/internal/cart/app"
	cartadapter "github.com/TheSamadAzeez/nexus-backend/internal/cart/infra/adapter"
	cartpg "github.com/TheSamadAzeez/nexus-backend/internal/cart/infra/postgres"
	catalogapp "github.com/TheSamadAzeez/nexus-backend/internal/catalog/app"
	catalogpg "github.com/TheSamadAzeez/nexus-backend/internal/catalog/infra/postgres"
	checkoutapp "github.com/TheSamadAzeez/nexus-backend/internal/checkout/app"
	"github.com/TheSamadAzeez/nexus-backend/internal/checkout/infra/payment"
	"github.com/TheSamadAzeez/nexus-backend/internal/httpapi"
	orderapp "github.com/TheSamadAzeez/nexus-backend/internal/order/app"
	orderpg "github.com/TheSamadAzeez/nexus-backend/internal/order/infra/postgres"
	"github.com/TheSamadAzeez/nexus-backend/pkg/config"
	"github.com/TheSamadAzeez/nexus-backend/pkg/logger"
	"github.com/TheSamadAzeez/nexus-backend/pkg/metrics"
	"github.com/TheSamadAzeez/nexus-backend/pkg/postgres"
	"github.com/TheSamadAzeez/nexus-backend/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db := mustDB(cfg, log)
	defer db.Close()

	catalogRepo := catalogpg.NewProductRepo(db)
	catalogSvc := catalogapp.NewService(catalogRepo)

	cartRepo := cartpg.NewCartRepo(db)
	cartSvc := cartapp.NewService(cartRepo, cartadapter.NewCatalogReader(catalogSvc))

	orderRepo := orderpg.NewOrderRepo(db)
	orderSvc := orderapp.NewService(orderRepo)

	checkoutSvc := checkoutapp.NewService(orderRepo, payment.NewMock(cfg.PaymentDeclineRate))

	m := metrics.New("api")

	router := httpapi.NewRouter(httpapi.Services{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Orders:   orderSvc,
		Checkout: checkoutSvc,
	}, m)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()

	if err := server.Shutdown(stopCtx); err != nil {
		log.Error("shutdown", "err", err)
	}

	wg.Wait()
	log.Info("bye")
}

func mustDB(cfg config.Config, log *slog.Logger) *sql.DB {
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

	if err := postgres.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	return db
}
