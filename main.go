package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/logging"
	"typeahead/internal/registry"
	"typeahead/internal/ui"
)

func main() {
	var (
		configPath string
		endpoint   string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "Path to a TOML or JSON config file")
	flag.StringVar(&endpoint, "endpoint", "", "Remote suggestion endpoint; replaces the configured inputs")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	if err := run(configPath, endpoint, logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, endpoint, logLevel string) error {
	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		return err
	}
	if endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Set up logging
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = "typeahead.log"
	}
	if err := logging.Init(logPath, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer logging.Close()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := registry.New(bus)
	uiModel := ui.NewModel(reg)
	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	// Audit trail and UI forwarding
	forward := func(e eventbus.DomainEvent) {
		logging.Info("event", "type", e.Type(), "detail", fmt.Sprintf("%+v", e))
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventInstanceCreated,
		eventbus.EventInstanceDestroyed,
		eventbus.EventSuggestionsOpened,
		eventbus.EventSuggestionSelected,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Create instances
	transport := cfg.Transport()
	for _, ic := range cfg.InstanceConfigs(transport) {
		if _, err := reg.Create(ic); err != nil {
			return err
		}
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	if os.Getenv("TYPEAHEAD_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	logging.Info("starting UI", "inputs", reg.Len())
	_, err = p.Run()
	reg.DestroyAll()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	logging.Info("UI exited normally")
	return nil
}
