// Command suggestd serves suggestion lists over HTTP for remote inputs.
//
//	GET /api/suggest?term=br&limit=5
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"typeahead/internal/domain"
	"typeahead/internal/logging"
	"typeahead/internal/normalize"
)

var defaultItems = []any{
	map[string]any{"value": "PRG", "label": "Prague", "metadata": map[string]any{"region": "Prague"}},
	map[string]any{"value": "BRQ", "label": "Brno", "metadata": map[string]any{"region": "South Moravian"}},
	map[string]any{"value": "OSR", "label": "Ostrava", "metadata": map[string]any{"region": "Moravian-Silesian"}},
	map[string]any{"value": "PLZ", "label": "Plzeň"},
	map[string]any{"value": "OLO", "label": "Olomouc"},
	map[string]any{"value": "LIB", "label": "Liberec"},
	map[string]any{"value": "BRA", "label": "Bratislava"},
}

func main() {
	var (
		addr      string
		itemsPath string
		logLevel  string
	)
	flag.StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")
	flag.StringVar(&itemsPath, "items", "", "JSON file holding an array of suggestions")
	flag.StringVar(&logLevel, "log-level", "info", "Log level")
	flag.Parse()

	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	logging.InitWriter(os.Stderr, lvl)

	if err := run(addr, itemsPath); err != nil {
		logging.Error("suggestd failed", "error", err)
		os.Exit(1)
	}
}

func run(addr, itemsPath string) error {
	items, err := loadItems(itemsPath)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(items).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("listening", "addr", addr, "items", len(items))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	logging.Info("stopped")
	return nil
}

// loadItems reads the suggestion list, falling back to the built-in one
func loadItems(path string) ([]domain.Item, error) {
	if path == "" {
		return normalize.List(defaultItems), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	return normalize.List(raw), nil
}
