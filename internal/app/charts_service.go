package app

import (
	"context"

	"healthtrack/internal/domain"
)

// Measurement filters accepted by ChartsService.GetSeries.
const (
	FilterWeight = "weight"
	FilterWaist  = "waist"
	FilterAll    = "all"
)

// ChartsService builds plot-ready series from the canonical chart feed.
type ChartsService struct {
	entries *EntryService
}

// NewChartsService creates a ChartsService on top of the entry service.
func NewChartsService(entries *EntryService) *ChartsService {
	return &ChartsService{entries: entries}
}

// ChartSeries holds parallel per-date series in canonical units,
// chronological order. A filtered-out series is nil.
type ChartSeries struct {
	Dates      []string  `json:"dates"`
	Weights    []float64 `json:"weights,omitempty"`
	Waists     []float64 `json:"waists,omitempty"`
	WeightUnit string    `json:"weightUnit"`
	WaistUnit  string    `json:"waistUnit"`
}

// GetSeries returns chart series for the optional inclusive date range.
// When several entries share a date, the one with the highest id wins; the
// history list is intentionally left unfiltered, this collapsing applies to
// chart series only.
func (s *ChartsService) GetSeries(ctx context.Context, startDate, endDate, filter string) (*ChartSeries, error) {
	switch filter {
	case FilterWeight, FilterWaist, FilterAll:
	default:
		return nil, domain.NewValidationError("Invalid measurement filter: %s. Must be one of: weight, waist, all", filter)
	}

	records, err := s.entries.ListForCharting(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Records arrive sorted by date then id, so keeping the last record
	// seen per date leaves the highest id.
	perDate := make(map[string]domain.EntryRecord, len(records))
	dates := make([]string, 0, len(records))
	for _, rec := range records {
		if _, seen := perDate[rec.Date]; !seen {
			dates = append(dates, rec.Date)
		}
		perDate[rec.Date] = rec
	}

	series := &ChartSeries{
		Dates:      dates,
		WeightUnit: string(domain.Kilograms),
		WaistUnit:  string(domain.Centimeters),
	}
	if filter == FilterWeight || filter == FilterAll {
		series.Weights = make([]float64, 0, len(dates))
	}
	if filter == FilterWaist || filter == FilterAll {
		series.Waists = make([]float64, 0, len(dates))
	}
	for _, d := range dates {
		rec := perDate[d]
		if series.Weights != nil {
			series.Weights = append(series.Weights, rec.WeightKg)
		}
		if series.Waists != nil {
			series.Waists = append(series.Waists, rec.WaistCm)
		}
	}
	return series, nil
}
