// Package options holds the flags shared by every command and resolves
// them into the run configuration.
package options

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
)

const (
	FlagOrigin          = "origin"
	FlagDestination     = "destination"
	FlagPercentile      = "percentile"
	FlagIncludeNegative = "include-negative"
	FlagLang            = "lang"
	FlagConfig          = "config"
	FlagVerbose         = "verbose"
	FlagDebug           = "debug"
)

// Flags returns the root flags. Defaults are shown from cfg but only flags
// set on the command line override the configuration.
func Flags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagOrigin,
			Aliases:     []string{"o"},
			Usage:       t.GetMessage("flag_origin_usage", 0, nil),
			DefaultText: cfg.Origin,
		},
		&cli.StringFlag{
			Name:        FlagDestination,
			Aliases:     []string{"d"},
			Usage:       t.GetMessage("flag_destination_usage", 0, nil),
			DefaultText: cfg.Destination,
		},
		&cli.IntFlag{
			Name:    FlagPercentile,
			Aliases: []string{"p"},
			Usage:   t.GetMessage("flag_percentile_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagIncludeNegative,
			Usage: t.GetMessage("flag_include_negative_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:        FlagLang,
			Aliases:     []string{"l"},
			Usage:       t.GetMessage("flag_lang_usage", 0, nil),
			DefaultText: cfg.Language,
		},
		&cli.StringFlag{
			Name:        FlagConfig,
			Aliases:     []string{"c"},
			Usage:       t.GetMessage("flag_config_usage", 0, nil),
			DefaultText: cfg.PathFile,
		},
		&cli.BoolFlag{
			Name:  FlagVerbose,
			Usage: t.GetMessage("flag_verbose_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: t.GetMessage("flag_debug_usage", 0, nil),
		},
	}
}

// Resolve returns the configuration for this invocation: base, or the file
// named by --config with environment overrides, then command line flags.
// base is never modified.
func Resolve(cmd *cli.Command, base *config.Config) (*config.Config, error) {
	resolved := *base

	if cmd.IsSet(FlagConfig) {
		loaded, err := config.LoadConfig(cmd.String(FlagConfig))
		if err != nil {
			return nil, err
		}
		if err := config.ApplyEnv(loaded); err != nil {
			return nil, err
		}
		resolved = *loaded
	}

	if cmd.IsSet(FlagOrigin) {
		resolved.Origin = strings.ToUpper(cmd.String(FlagOrigin))
	}
	if cmd.IsSet(FlagDestination) {
		resolved.Destination = strings.ToUpper(cmd.String(FlagDestination))
	}
	if cmd.IsSet(FlagPercentile) {
		resolved.Percentile = int(cmd.Int(FlagPercentile))
	}
	if cmd.IsSet(FlagIncludeNegative) {
		resolved.IncludeNegative = cmd.Bool(FlagIncludeNegative)
	}
	if cmd.IsSet(FlagLang) {
		resolved.Language = cmd.String(FlagLang)
	}

	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	return &resolved, nil
}
