package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/L-RexTech/HROne-ecommerce-backend/internal/config"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/httpserver"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/logging"
	loggingmw "github.com/L-RexTech/HROne-ecommerce-backend/internal/middleware/logging"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/mongodb"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/repo"
	"github.com/L-RexTech/HROne-ecommerce-backend/internal/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Open(ctx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Fatalf("mongo open: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	store := &repo.Mongo{
		Products: mongodb.Products(client, cfg.MongoDatabase),
		Orders:   mongodb.Orders(client, cfg.MongoDatabase),
	}
	catalogSvc := &service.CatalogService{Products: store}
	orderSvc := &service.OrderService{Products: store, Orders: store}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc},
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = client.Disconnect(shutdownCtx)

	log.Println("server stopped")
}
