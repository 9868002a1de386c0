package config

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/commands/completion_helper"
	"github.com/thomas-vilte/flighttime/internal/commands/options"
	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
	"github.com/thomas-vilte/flighttime/internal/ui"
)

const flagForce = "force"

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagForce,
				Aliases: []string{"f"},
				Usage:   t.GetMessage("config_force_usage", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action:        initConfigAction(cfg, t),
	}
}

// initConfigAction writes the resolved configuration. Existing files are
// only replaced with --force.
func initConfigAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		out, errOut := command.Root().Writer, command.Root().ErrWriter

		resolved, err := options.Resolve(command, cfg)
		if err != nil {
			return err
		}

		data := map[string]interface{}{"Path": resolved.PathFile}

		_, err = os.Stat(resolved.PathFile)
		switch {
		case err == nil && !command.Bool(flagForce):
			ui.PrintWarning(errOut, t.GetMessage("config_exists", 0, data))
			return nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return err
		}

		if err := config.SaveConfig(resolved); err != nil {
			return err
		}

		ui.PrintSuccess(out, t.GetMessage("config_saved", 0, data))
		return nil
	}
}
