package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/balapan-kz/go-storefront/internal/cfg"
	v1Http "github.com/balapan-kz/go-storefront/internal/delivery/v1/http"
	"github.com/balapan-kz/go-storefront/internal/repository/dataset"
	"github.com/balapan-kz/go-storefront/internal/repository/sqlite"
	"github.com/balapan-kz/go-storefront/internal/usecase"
	"github.com/balapan-kz/go-storefront/pkg/closer"
	"github.com/balapan-kz/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	catalogRepo, err := dataset.New()
	if err != nil {
		logger.Errorf(err, "failed to load catalog dataset")
		os.Exit(1)
	}
	logger.Infof("catalog loaded: %d product(s), %d categories", len(catalogRepo.Products()), len(catalogRepo.Categories()))

	cl := closer.New()

	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		logger.Errorf(err, "failed to open local storage at %s", cfg.Storage.Path)
		os.Exit(1)
	}
	cl.Add(func(_ context.Context) error {
		return db.Close()
	})

	stateRepo := sqlite.NewStateRepo(db, cfg.Storage.Namespace, logger)
	orderRepo := sqlite.NewOrderRepo(db, logger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 5*time.Second)
	storeUC := usecase.NewStoreUC(startCtx, catalogRepo, stateRepo, logger)
	startCancel()

	catalogUC := usecase.NewCatalogUC(catalogRepo, cfg.Catalog)
	checkoutUC := usecase.NewCheckoutUC(storeUC, catalogRepo, orderRepo, cfg.Checkout, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(storeUC, catalogUC, checkoutUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Errorf(err, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown finished with errors")
		return
	}
	logger.Infof("shutdown complete")
}
