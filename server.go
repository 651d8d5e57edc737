package tripplanner

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// StartServer starts the HTTP API in the background.
func (a *App) StartServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", a.handleHealth)
	mux.HandleFunc("/api/plan-trip-auto", a.handlePlanTripAuto)
	mux.HandleFunc("/api/plan-trip-with-transport", a.handlePlanTripWithTransport)
	mux.HandleFunc("/api/get-transport-options", a.handleGetTransportOptions)
	mux.HandleFunc("/api/get-nearest-hub", a.handleGetNearestHub)
	mux.HandleFunc("/photo/placePhoto", a.handlePlacePhoto)

	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	a.server = &http.Server{
		Addr:              addr,
		Handler:           withRequestLogging(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the
// server.
func (a *App) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
