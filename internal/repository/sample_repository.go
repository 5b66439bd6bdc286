package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ramdani/geocell-backend-go/internal/models"
)

// SampleRepository handles database operations for drive-test samples
type SampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository
func NewSampleRepository(db *sql.DB) *SampleRepository {
	return &SampleRepository{db: db}
}

// ReplaceAll replaces all measurement samples in one transaction.
func (r *SampleRepository) ReplaceAll(samples []models.MeasurementSample) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM measurement_samples"); err != nil {
		return fmt.Errorf("failed to clear measurement samples: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO measurement_samples
		(cellname, lat, lon, rsrp) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range samples {
		if _, err := stmt.Exec(s.Cellname, s.Position.Lat, s.Position.Lon, s.RSRP); err != nil {
			return fmt.Errorf("failed to insert sample for cell %s: %w", s.Cellname, err)
		}
	}

	return tx.Commit()
}

// GetAll retrieves measurement samples with filtering, in insertion order.
func (r *SampleRepository) GetAll(filter models.SampleFilter) ([]models.MeasurementSample, error) {
	query := `SELECT id, cellname, lat, lon, rsrp FROM measurement_samples`

	var conditions []string
	var args []interface{}

	if filter.Cellname != "" {
		conditions = append(conditions, "cellname = ?")
		args = append(args, filter.Cellname)
	}
	if filter.MinRSRP != 0 {
		conditions = append(conditions, "rsrp >= ?")
		args = append(args, filter.MinRSRP)
	}
	if filter.MaxRSRP != 0 {
		conditions = append(conditions, "rsrp <= ?")
		args = append(args, filter.MaxRSRP)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY id"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurement samples: %w", err)
	}
	defer rows.Close()

	var samples []models.MeasurementSample
	for rows.Next() {
		var s models.MeasurementSample
		if err := rows.Scan(&s.ID, &s.Cellname, &s.Position.Lat, &s.Position.Lon, &s.RSRP); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
