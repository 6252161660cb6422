package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/amirasaad/bankledger/infra/store"
	"github.com/amirasaad/bankledger/pkg/config"
	"github.com/amirasaad/bankledger/pkg/ledger"
	"github.com/amirasaad/bankledger/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	fileStore := store.NewFileStore(cfg.Data.File, store.NewKeyCodec(cfg.Data.CodecKey), logger)
	l := ledger.New(fileStore, logger)
	if err := l.Load(); err != nil {
		return fmt.Errorf("failed to restore accounts: %w", err)
	}

	app := webapi.SetupApp(l, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr, "data_file", cfg.Data.File)
	return app.Listen(addr)
}
