package report

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/flighttime/internal/commands/options"
	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/i18n"
	"github.com/thomas-vilte/flighttime/internal/logger"
	"github.com/thomas-vilte/flighttime/internal/models"
	"github.com/thomas-vilte/flighttime/internal/ports"
	"github.com/thomas-vilte/flighttime/internal/services"
	"github.com/thomas-vilte/flighttime/internal/stats"
	"github.com/thomas-vilte/flighttime/internal/ui"
	"github.com/thomas-vilte/flighttime/internal/version"
)

type ReportCommandFactory struct {
	source ports.TicketSource
}

func NewReportCommandFactory(source ports.TicketSource) *ReportCommandFactory {
	return &ReportCommandFactory{source: source}
}

// CreateCommand builds the root command. It reports on the file given as
// the only argument, or on the configured input file.
func (f *ReportCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "flighttime",
		Usage:       t.GetMessage("app_usage", 0, nil),
		Description: t.GetMessage("app_description", 0, nil),
		Version:     version.Version,
		ArgsUsage:   "[tickets.json]",
		Flags:       options.Flags(t, cfg),
		Action:      f.createAction(cfg, t),
	}
}

func (f *ReportCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		out, errOut := command.Root().Writer, command.Root().ErrWriter

		runCfg, err := options.Resolve(command, cfg)
		if err != nil {
			return err
		}

		log := logger.New(errOut, command.Bool(options.FlagDebug), command.Bool(options.FlagVerbose))
		ctx = logger.WithLogger(ctx, log)

		if err := t.SetLanguage(runCfg.Language); err != nil {
			logger.Warn(ctx, "language not available, keeping current messages", "language", runCfg.Language)
		}

		path := runCfg.InputPath
		if command.Args().Len() == 1 {
			path = command.Args().First()
		}

		processor := services.NewTicketProcessor(f.source, runCfg)
		report, err := processor.Process(ctx, path)
		if err != nil {
			ui.HandleAppError(errOut, err, t)
			return nil
		}

		printReport(out, errOut, report, t)
		return nil
	}
}

func printReport(out, errOut io.Writer, report *models.Report, t *i18n.Translations) {
	for _, number := range report.Invalid {
		ui.PrintLine(errOut, t.GetMessage("ticket_invalid", 0, map[string]interface{}{
			"Number": number,
		}))
	}

	if report.Empty() {
		ui.PrintLine(out, t.GetMessage("report_no_tickets", 0, nil))
		return
	}

	ui.PrintLine(out, t.GetMessage("report_average", 0, map[string]interface{}{
		"Value": stats.Format(report.Mean),
	}))
	ui.PrintLine(out, t.GetMessage("report_percentile", 0, map[string]interface{}{
		"Percentile": report.PercentileRank,
		"Value":      stats.Format(float64(report.Percentile)),
	}))
}
