package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/Josue-Ribero/meraki-sub000/internal/config"
	apphttp "github.com/Josue-Ribero/meraki-sub000/internal/http"
	"github.com/Josue-Ribero/meraki-sub000/internal/mailer"
	"github.com/Josue-Ribero/meraki-sub000/internal/modules/orders"
	"github.com/Josue-Ribero/meraki-sub000/internal/storefront"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gw := storefront.New(cfg.Storefront, logger)
	svc := orders.NewService(gw, logger)
	mail := mailer.NewSMTPMailer(cfg.SMTP)

	r := apphttp.NewRouter(logger, cfg, svc, mail)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
