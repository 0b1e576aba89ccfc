package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mfigueira/extrato/internal/config"
	"github.com/mfigueira/extrato/internal/database"
	"github.com/mfigueira/extrato/internal/enrich"
	extratoHttp "github.com/mfigueira/extrato/internal/http"
	stmtHandler "github.com/mfigueira/extrato/internal/http/statement"
	txHandler "github.com/mfigueira/extrato/internal/http/transaction"
	"github.com/mfigueira/extrato/internal/importer"
	"github.com/mfigueira/extrato/internal/transaction"
	txStore "github.com/mfigueira/extrato/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		enricher           = enrich.New()
		transactionService = transaction.NewService(txStore.New(db), enricher)
		importService      = importer.NewService()
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		statementH   = stmtHandler.NewHandler(importService, transactionService, cfg.Server.MaxUploadBytes)
	)

	router := extratoHttp.New(transactionH, statementH, cfg.CORS.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
