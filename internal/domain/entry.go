package domain

import (
	"context"
	"regexp"
	"time"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDateString reports whether s is a well-formed YYYY-MM-DD calendar
// date.
func ValidDateString(s string) bool {
	if !dateFormat.MatchString(s) {
		return false
	}
	_, err := time.ParseInLocation("2006-01-02", s, time.Local)
	return err == nil
}

// HealthEntry is a single dated pair of weight and waist measurements.
// Entries are never mutated after construction; corrections are modeled as
// delete-and-reinsert. ID and CreatedAt are zero until the entry has been
// persisted.
type HealthEntry struct {
	ID        int64             `json:"id"`
	Date      string            `json:"date"`
	Weight    WeightMeasurement `json:"weight"`
	Waist     WaistMeasurement  `json:"waist"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewHealthEntry builds an unpersisted entry from already-validated
// measurements, enforcing the entry-level date rules.
func NewHealthEntry(date string, weight WeightMeasurement, waist WaistMeasurement) (HealthEntry, error) {
	if !ValidDateString(date) {
		return HealthEntry{}, NewValidationError("Date must be in YYYY-MM-DD format")
	}
	entryDate, _ := time.ParseInLocation("2006-01-02", date, time.Local)

	now := time.Now().In(time.Local)
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
	if entryDate.After(endOfToday) {
		return HealthEntry{}, NewValidationError("Entry date cannot be in the future")
	}

	return HealthEntry{Date: date, Weight: weight, Waist: waist}, nil
}

// ReconstituteHealthEntry rebuilds an entry from storage. Stored values
// were validated on the way in; the read path does not re-check ranges, as
// a converted display value may legitimately fall outside the display
// unit's round-number bounds.
func ReconstituteHealthEntry(id int64, date string, weight WeightMeasurement, waist WaistMeasurement, createdAt time.Time) HealthEntry {
	return HealthEntry{ID: id, Date: date, Weight: weight, Waist: waist, CreatedAt: createdAt}
}

// EntryRecord is the canonical storage record: weight in kilograms and
// waist in centimeters regardless of the unit the user entered. Display
// units are a read-time projection, never persisted.
type EntryRecord struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	WeightKg  float64   `json:"weightKg"`
	WaistCm   float64   `json:"waistCm"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryRepository is the port for health-entry persistence. Implementations
// may return records in any order; callers own sorting.
type EntryRepository interface {
	InsertEntry(ctx context.Context, date string, weightKg, waistCm float64) (int64, error)
	EntriesByDateRange(ctx context.Context, startDate, endDate string) ([]EntryRecord, error)
	DeleteEntriesByDate(ctx context.Context, date string) (int64, error)
}
