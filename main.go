package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"vaultsearch/internal/config"
	"vaultsearch/internal/domain"
	"vaultsearch/internal/eventbus"
	"vaultsearch/internal/i18n"
	"vaultsearch/internal/logic"
	"vaultsearch/internal/ui"
	"vaultsearch/internal/vault"
)

func main() {
	// Parse command line arguments
	var configPath, vaultPath, lang string
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.StringVar(&vaultPath, "vault", "", "Vault file to open, overrides vault_path from the config")
	flag.StringVar(&lang, "lang", "", "UI language, e.g. en or de")
	flag.Parse()

	// If no vault specified, check for remaining args
	if vaultPath == "" && flag.NArg() > 0 {
		vaultPath = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath, bus)
	} else {
		configSvc = config.NewConfigServiceWithBus(bus)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if vaultPath != "" {
		cfg.VaultPath = vaultPath
	}
	if lang != "" {
		cfg.UISettings.Language = lang
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Printf("Using config %s", configSvc.Path())

	// Load archives into the store
	store := logic.NewMemoryArchiveStore(bus)
	archives, err := vault.LoadFile(cfg.VaultPath)
	if err != nil {
		fmt.Printf("Error loading vault: %v\n", err)
		os.Exit(1)
	}
	for _, a := range archives {
		store.AddArchive(a)
	}
	log.Printf("Loaded %d archives from %s", len(archives), cfg.VaultPath)

	// Selections leave the app through the bus
	bus.Subscribe(eventbus.EventEntrySelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.EntrySelectedEvent); ok {
			log.Printf("Entry selected: %s/%s", event.ArchiveID, event.EntryID)
		}
	})
	bus.Subscribe(eventbus.EventGroupSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.GroupSelectedEvent); ok {
			log.Printf("Group selected: %s/%s", event.ArchiveID, event.GroupID)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})

	// Create UI model
	tr := i18n.New(cfg.UISettings.Language)
	uiModel := ui.NewModel(cfg, bus, store, tr)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	// Open requests reach the model through the program loop
	release := uiModel.Activate(func(e domain.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer release()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	if os.Getenv("VAULTSEARCH_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
