package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pr-poehali-dev/online-shop-network/internal/authclient"
	"github.com/pr-poehali-dev/online-shop-network/internal/catalog"
	"github.com/pr-poehali-dev/online-shop-network/internal/config"
	"github.com/pr-poehali-dev/online-shop-network/internal/event"
	"github.com/pr-poehali-dev/online-shop-network/internal/handler"
	"github.com/pr-poehali-dev/online-shop-network/internal/middleware"
	"github.com/pr-poehali-dev/online-shop-network/internal/nav"
	"github.com/pr-poehali-dev/online-shop-network/internal/router"
	"github.com/pr-poehali-dev/online-shop-network/internal/service"
	"github.com/pr-poehali-dev/online-shop-network/internal/storage"
)

// App is the client-side core of the marketplace: session store, auth
// gateway client, navigation controller and the state surface the view
// renderer consumes.
type App struct {
	server *http.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := storage.NewFileStore(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	gateway := authclient.New(cfg.AuthURL, nil)
	accounts := service.NewAccountService(store, gateway)
	controller := nav.NewController(accounts)
	cat := catalog.New()
	bus := event.NewBus()

	gate := middleware.NewSessionGate(accounts)
	accountHandler := handler.NewAccountHandler(accounts, controller, bus)
	stateHandler := handler.NewStateHandler(accounts, controller, cat, bus)
	catalogHandler := handler.NewCatalogHandler(cat)
	eventsHandler := handler.NewEventsHandler(bus)

	appRouter := router.New(cfg, gate, router.Handlers{
		Account: accountHandler,
		State:   stateHandler,
		Catalog: catalogHandler,
		Events:  eventsHandler,
	})

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{server: server}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("app server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
