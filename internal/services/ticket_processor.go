package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/thomas-vilte/flighttime/internal/config"
	"github.com/thomas-vilte/flighttime/internal/logger"
	"github.com/thomas-vilte/flighttime/internal/models"
	"github.com/thomas-vilte/flighttime/internal/ports"
	"github.com/thomas-vilte/flighttime/internal/stats"
	"github.com/thomas-vilte/flighttime/internal/tickets"
)

// TicketProcessor loads a ticket document, keeps the tickets flying the
// configured route and aggregates their durations.
type TicketProcessor struct {
	source          ports.TicketSource
	route           models.Route
	percentile      int
	includeNegative bool
}

func NewTicketProcessor(source ports.TicketSource, cfg *config.Config) *TicketProcessor {
	return &TicketProcessor{
		source:          source,
		route:           cfg.Route(),
		percentile:      cfg.Percentile,
		includeNegative: cfg.IncludeNegative,
	}
}

// Process runs one pass over the document at path. Only loading failures
// are returned as errors; rejected tickets are listed in the report.
func (p *TicketProcessor) Process(ctx context.Context, path string) (*models.Report, error) {
	ctx = logger.With(ctx, "run_id", uuid.NewString())
	logger.Info(ctx, "processing tickets", "path", path, "route", p.route.String(), "percentile", p.percentile)

	records, err := p.source.Load(ctx, path)
	if err != nil {
		logger.Debug(ctx, "could not load tickets", "path", path, "error", err)
		return nil, err
	}

	results := p.Validate(ctx, records)
	report := p.Aggregate(results)

	logger.Info(ctx, "tickets processed",
		"count", report.Count,
		"invalid", len(report.Invalid),
		"negative", len(report.Negative))

	return report, nil
}

// Validate checks every record in order.
func (p *TicketProcessor) Validate(ctx context.Context, records []json.RawMessage) []models.Result {
	results := make([]models.Result, 0, len(records))

	for i, raw := range records {
		result := tickets.Validate(raw, i+1, p.route)
		if !result.Valid {
			logger.Debug(ctx, "ticket rejected", "ticket", result.Number, "reason", result.Reason)
		}
		results = append(results, result)
	}

	return results
}

// Aggregate builds the report from validated results. Negative durations
// are left out unless the processor was configured to include them; they
// are not counted as invalid tickets.
func (p *TicketProcessor) Aggregate(results []models.Result) *models.Report {
	report := &models.Report{
		Route:          p.route,
		PercentileRank: p.percentile,
	}

	durations := make([]int64, 0, len(results))
	for _, result := range results {
		switch {
		case !result.Valid:
			report.Invalid = append(report.Invalid, result.Number)
		case result.Seconds < 0 && !p.includeNegative:
			report.Negative = append(report.Negative, result.Number)
		default:
			durations = append(durations, result.Seconds)
		}
	}

	report.Count = len(durations)
	if report.Empty() {
		return report
	}

	report.Mean = stats.Mean(durations)
	report.Percentile = stats.Percentile(durations, p.percentile)

	return report
}
