package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/commands/completion_helper"
	"github.com/thomas-vilte/flighttime/internal/commands/config"
	"github.com/thomas-vilte/flighttime/internal/commands/registry"
	"github.com/thomas-vilte/flighttime/internal/commands/report"
	cfg "github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
	"github.com/thomas-vilte/flighttime/internal/logger"
	"github.com/thomas-vilte/flighttime/internal/tickets"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	logger.Initialize(os.Stderr, false, false)

	cfgApp, err := cfg.LoadConfig("")
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(cfgApp); err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)
	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		return nil, err
	}

	app := report.NewReportCommandFactory(tickets.NewFileSource()).CreateCommand(translations, cfgApp)
	app.Commands = registerCommand.CreateCommands()
	app.EnableShellCompletion = true
	app.ShellComplete = completion_helper.DefaultFlagComplete

	return app, nil
}
