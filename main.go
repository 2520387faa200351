// Package main, serverdir backend uygulamasının giriş noktasıdır.
//
// Wire-up sırası:
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. Database'i aç, embedded migration'ları uygula
//  4. Repository → Service → Handler katmanlarını oluştur
//  5. Router'ı kur, CORS ve request logger ile sar
//  6. HTTP Server'ı başlat, SIGINT/SIGTERM'de graceful shutdown
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/serverdir/config"
	"github.com/akinalp/serverdir/database"
	"github.com/akinalp/serverdir/middleware"
	"github.com/akinalp/serverdir/pkg/logger"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.L.Error("server exited with error", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "serverdir: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─── 2. Logger ───
	if err := logger.Init(cfg.Log.Level, cfg.Log.Production); err != nil {
		return err
	}
	defer logger.Sync()
	logger.L.Info("serverdir starting", zap.Int("port", cfg.Server.Port))

	// ─── 3. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// ─── 4. Katmanlar ───
	repos := initRepositories(db.Conn)
	svcs := initServices(repos, cfg)
	h := initHandlers(svcs)

	// ─── 5. Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, repos.User)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	handler := middleware.RequestLogger(corsHandler.Handler(mux))

	// ─── 6. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.L.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.L.Info("shutting down")

	// Yeni request kabul edilmez, mevcut olanlar 5sn içinde bitmeli.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.L.Info("server stopped gracefully")
	return nil
}
