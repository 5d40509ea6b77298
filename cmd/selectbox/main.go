package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"selectbox/internal/config"
	"selectbox/internal/domain"
	"selectbox/internal/eventbus"
	"selectbox/internal/registry"
	"selectbox/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("selectbox.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	bus := eventbus.New()
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	reg := registry.New()

	fields := []ui.FieldDef{
		{
			Label: "Fruit",
			Groups: []domain.OptionGroup{
				{Options: []domain.Option{
					{Value: "apple", Label: "Apple"},
					{Value: "banana", Label: "Banana"},
					{Value: "cherry", Label: "Cherry"},
				}},
			},
		},
	}

	uiModel := ui.NewModel(bus, cfg, reg, fields)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
