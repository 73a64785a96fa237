package postgres

import (
	"context"
	"time"

	"healthtrack/internal/domain"
)

// InsertEntry persists a canonical-unit record and returns the generated id.
func (d *DB) InsertEntry(ctx context.Context, date string, weightKg, waistCm float64) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO health_entries(date, weight_kg, waist_cm, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		date, weightKg, waistCm, time.Now().UTC(),
	).Scan(&id)
	return id, err
}

// EntriesByDateRange returns canonical records within the inclusive range.
// Either bound may be empty for "unbounded on that side". Order is
// unspecified; the service layer sorts.
func (d *DB) EntriesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.EntryRecord, error) {
	query := "SELECT id, date, weight_kg, waist_cm, created_at FROM health_entries"
	var args []any
	switch {
	case startDate != "" && endDate != "":
		query += " WHERE date >= $1 AND date <= $2"
		args = append(args, startDate, endDate)
	case startDate != "":
		query += " WHERE date >= $1"
		args = append(args, startDate)
	case endDate != "":
		query += " WHERE date <= $1"
		args = append(args, endDate)
	}
	query += ";"

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EntryRecord
	for rows.Next() {
		var rec domain.EntryRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.WeightKg, &rec.WaistCm, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteEntriesByDate removes all entries for a date and reports how many
// rows went away.
func (d *DB) DeleteEntriesByDate(ctx context.Context, date string) (int64, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM health_entries WHERE date = $1;", date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
