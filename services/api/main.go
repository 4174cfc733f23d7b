package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hydrolens/aquaview-demo/services/api/config"
	httpserver "github.com/hydrolens/aquaview-demo/services/api/http"
	"github.com/hydrolens/aquaview-demo/services/api/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessions := session.NewManager(cfg.SessionTTL)
	sessions.Start(ctx)

	srv := httpserver.New(cfg, sessions)
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
