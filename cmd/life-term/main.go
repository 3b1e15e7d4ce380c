package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"cgol/internal/app"
	"cgol/internal/term"
)

func main() {
	cfg := app.NewConfig()
	if err := app.Parse("life-term", cfg, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	console, err := term.NewConsole(cfg.Engine, cfg.Life())
	if err != nil {
		log.Fatalf("console: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := console.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
