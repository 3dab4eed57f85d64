package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puramente/internal/blog"
	"puramente/internal/cart"
	"puramente/internal/config"
	"puramente/internal/contact"
	"puramente/internal/infrastructure/logger"
	"puramente/internal/infrastructure/mysql"
	"puramente/internal/order"
	"puramente/internal/product"
	"puramente/internal/server"
	"puramente/internal/uploads"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	store, err := uploads.NewStore(cfg.App.UploadsDir)
	if err != nil {
		zapLogger.Fatal("preparing uploads directory", zap.Error(err))
	}

	mailer := contact.NewMailer(cfg.SMTP, zapLogger)
	if !mailer.Enabled() {
		zapLogger.Warn("SMTP not configured, outgoing email disabled")
	}

	orderCtrl := order.NewModule(db, store, cfg, zapLogger)
	cartCtrl := cart.NewModule(db, store, mailer, cfg, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	blogCtrl := blog.NewModule(db, store, zapLogger)
	contactCtrl := contact.NewController(mailer, zapLogger)

	router := server.NewRouter(orderCtrl, cartCtrl, productCtrl, blogCtrl, contactCtrl, store, cfg.App.FrontendURL)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
