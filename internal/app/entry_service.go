package app

import (
	"context"
	"sort"

	"healthtrack/internal/domain"
)

// EntryService encapsulates the health-entry use cases: saving a new dated
// measurement pair and reading history back in the caller's display units.
type EntryService struct {
	repo domain.EntryRepository
}

// NewEntryService creates an EntryService backed by the given repository.
func NewEntryService(repo domain.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

// Save validates a new entry in the caller's units, converts it to the
// canonical storage units (kg, cm) and persists it, returning the generated
// id. Any validation failure aborts before the storage call.
func (s *EntryService) Save(ctx context.Context, date string, weightValue float64, weightUnit string, waistValue float64, waistUnit string) (int64, error) {
	wu, err := domain.ParseWeightUnit(weightUnit)
	if err != nil {
		return 0, err
	}
	au, err := domain.ParseWaistUnit(waistUnit)
	if err != nil {
		return 0, err
	}

	weight, err := domain.NewWeightMeasurement(weightValue, wu)
	if err != nil {
		return 0, err
	}
	waist, err := domain.NewWaistMeasurement(waistValue, au)
	if err != nil {
		return 0, err
	}

	entry, err := domain.NewHealthEntry(date, weight, waist)
	if err != nil {
		return 0, err
	}

	weightKg := domain.ConvertWeight(weight.Value, weight.Unit, domain.Kilograms)
	waistCm := domain.ConvertWaist(waist.Value, waist.Unit, domain.Centimeters)

	return s.repo.InsertEntry(ctx, entry.Date, weightKg, waistCm)
}

// ListByDateRange returns entries in the optional inclusive date range,
// converted from canonical units to the requested display units, newest
// first. An empty bound means unbounded on that side.
func (s *EntryService) ListByDateRange(ctx context.Context, startDate, endDate, weightUnit, waistUnit string) ([]domain.HealthEntry, error) {
	wu, err := domain.ParseWeightUnit(weightUnit)
	if err != nil {
		return nil, err
	}
	au, err := domain.ParseWaistUnit(waistUnit)
	if err != nil {
		return nil, err
	}
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	records, err := s.repo.EntriesByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].ID > records[j].ID
	})

	entries := make([]domain.HealthEntry, 0, len(records))
	for _, rec := range records {
		// Reads project canonical values into display units without
		// re-running range validation; a stored-legal value may convert
		// to just outside the display unit's round-number bounds.
		weight := domain.WeightMeasurement{
			Value: domain.ConvertWeight(rec.WeightKg, domain.Kilograms, wu),
			Unit:  wu,
		}
		waist := domain.WaistMeasurement{
			Value: domain.ConvertWaist(rec.WaistCm, domain.Centimeters, au),
			Unit:  au,
		}
		entries = append(entries, domain.ReconstituteHealthEntry(rec.ID, rec.Date, weight, waist, rec.CreatedAt))
	}
	return entries, nil
}

// ListForCharting returns raw canonical-unit records in the optional
// inclusive date range, oldest first. Charting always operates in canonical
// units so multiple series stay comparable.
func (s *EntryService) ListForCharting(ctx context.Context, startDate, endDate string) ([]domain.EntryRecord, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	records, err := s.repo.EntriesByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// DeleteByDate removes every entry recorded for the given date and returns
// the number of rows removed. Corrections are delete-and-reinsert.
func (s *EntryService) DeleteByDate(ctx context.Context, date string) (int64, error) {
	if !domain.ValidDateString(date) {
		return 0, domain.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	return s.repo.DeleteEntriesByDate(ctx, date)
}

func validateRange(startDate, endDate string) error {
	if startDate != "" && !domain.ValidDateString(startDate) {
		return domain.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	if endDate != "" && !domain.ValidDateString(endDate) {
		return domain.NewValidationError("Date must be in YYYY-MM-DD format")
	}
	return nil
}
