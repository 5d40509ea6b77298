package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/registry"
	"selectbox/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a selectbox.toml config file")
	flag.StringVar(&configPath, "c", "", "Path to a selectbox.toml config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("selectbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Registry enforces single-open-dropdown-at-a-time across fields
	reg := registry.New()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, reg, demoFields())

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventOpened,
		eventbus.EventClosed,
		eventbus.EventSelectionChanged,
		eventbus.EventValidityChanged,
		eventbus.EventNativeMode,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist config changes made during the session
	if cfg.UISettings.AutosaveOnExit && configPath == "" {
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	// Cleanup
	cancel()
}

// demoFields returns the sample form rendered by the demo application
func demoFields() []ui.FieldDef {
	return []ui.FieldDef{
		{
			Label: "Color",
			Groups: []domain.OptionGroup{
				{Options: []domain.Option{
					{Value: "red", Label: "Red"},
					{Value: "green", Label: "Green"},
					{Value: "blue", Label: "Blue"},
					{Value: "cyan", Label: "Cyan"},
					{Value: "magenta", Label: "Magenta"},
					{Value: "yellow", Label: "Yellow"},
				}},
			},
		},
		{
			Label: "Size",
			Groups: []domain.OptionGroup{
				{Options: []domain.Option{
					{Value: "s", Label: "Small"},
					{Value: "m", Label: "Medium"},
					{Value: "l", Label: "Large"},
				}},
			},
		},
		{
			Label: "Country",
			Groups: []domain.OptionGroup{
				{
					Label: "Europe",
					Options: []domain.Option{
						{Value: "de", Label: "Germany"},
						{Value: "fr", Label: "France"},
						{Value: "es", Label: "Spain"},
						{Value: "it", Label: "Italy"},
						{Value: "pl", Label: "Poland"},
						{Value: "se", Label: "Sweden"},
					},
				},
				{
					Label: "Americas",
					Options: []domain.Option{
						{Value: "us", Label: "United States"},
						{Value: "ca", Label: "Canada"},
						{Value: "br", Label: "Brazil"},
						{Value: "ar", Label: "Argentina"},
						{Value: "mx", Label: "Mexico"},
					},
				},
				{
					Label: "Asia",
					Options: []domain.Option{
						{Value: "jp", Label: "Japan"},
						{Value: "kr", Label: "South Korea"},
						{Value: "in", Label: "India"},
						{Value: "vn", Label: "Vietnam"},
					},
				},
			},
		},
		{
			Label:    "Plan",
			Disabled: true,
			Groups: []domain.OptionGroup{
				{Options: []domain.Option{
					{Value: "free", Label: "Free"},
					{Value: "pro", Label: "Pro"},
				}},
			},
		},
	}
}
