// Command server exposes statement extraction over HTTP: synchronous and
// job-based asynchronous PDF processing plus per-user transaction listing.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/rs/cors"

	"statement-engine/internal/classify"
	"statement-engine/internal/config"
	"statement-engine/internal/extraction"
	"statement-engine/internal/logger"
	"statement-engine/internal/store"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	var st store.Store
	if cfg.DatabasePath != "" {
		var err error
		st, err = store.NewSQLiteStore(cfg.DatabasePath)
		if err != nil {
			slog.Error("open sqlite store", "path", cfg.DatabasePath, "err", err)
			os.Exit(1)
		}
		slog.Info("using sqlite store", "path", cfg.DatabasePath)
	} else {
		st = store.NewMemoryStore()
		slog.Info("using in-memory store")
	}
	defer st.Close()

	jobs := extraction.NewJobStore(cfg.JobTTL)
	defer jobs.Stop()

	srv := &server{
		cfg:  cfg,
		pipe: extraction.NewPipeline(classify.New(cfg.ModelPath)),
		st:   st,
		jobs: jobs,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/extract", srv.handleExtract)
	mux.HandleFunc("GET /v1/jobs/{id}", srv.handleJob)
	mux.HandleFunc("GET /v1/users/{userId}/transactions", srv.handleListTransactions)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
