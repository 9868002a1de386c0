package config

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/commands/options"
	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
	"github.com/thomas-vilte/flighttime/internal/ui"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  t.GetMessage("config_show_usage", 0, nil),
		Action: showConfigAction(cfg, t),
	}
}

func showConfigAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		out := command.Root().Writer

		resolved, err := options.Resolve(command, cfg)
		if err != nil {
			return err
		}

		ui.PrintSectionBanner(out, t.GetMessage("config_title", 0, nil))
		ui.PrintKeyValue(out, t.GetMessage("config_route", 0, nil), resolved.Route().String())
		ui.PrintKeyValue(out, t.GetMessage("config_percentile", 0, nil), strconv.Itoa(resolved.Percentile))
		ui.PrintKeyValue(out, t.GetMessage("config_input", 0, nil), resolved.InputPath)
		ui.PrintKeyValue(out, t.GetMessage("config_language", 0, nil), resolved.Language)
		ui.PrintKeyValue(out, t.GetMessage("config_include_negative", 0, nil), strconv.FormatBool(resolved.IncludeNegative))
		return nil
	}
}
