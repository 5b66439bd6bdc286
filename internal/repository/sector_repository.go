package repository

import (
	"database/sql"
	"fmt"

	"github.com/ramdani/geocell-backend-go/internal/models"
)

// SectorRepository handles database operations for antenna sectors
type SectorRepository struct {
	db *sql.DB
}

// NewSectorRepository creates a new sector repository
func NewSectorRepository(db *sql.DB) *SectorRepository {
	return &SectorRepository{db: db}
}

// ReplaceAll replaces the loaded site list with the given sectors in one
// transaction. A site list is loaded whole; partial updates would leave
// stale cells behind.
func (r *SectorRepository) ReplaceAll(sectors []models.AntennaSector) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM antenna_sectors"); err != nil {
		return fmt.Errorf("failed to clear antenna sectors: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO antenna_sectors
		(cellname, siteid, nodeid, lat, lon, azimuth_deg, beamwidth_deg, radius_km)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare sector insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sectors {
		if _, err := stmt.Exec(s.Cellname, s.SiteID, s.NodeID,
			s.Position.Lat, s.Position.Lon,
			s.AzimuthDeg, s.BeamwidthDeg, s.RadiusKm); err != nil {
			return fmt.Errorf("failed to insert sector %s: %w", s.Cellname, err)
		}
	}

	return tx.Commit()
}

// GetAll retrieves all loaded antenna sectors ordered by cellname.
func (r *SectorRepository) GetAll() ([]models.AntennaSector, error) {
	rows, err := r.db.Query(`SELECT id, cellname, siteid, nodeid, lat, lon,
		azimuth_deg, beamwidth_deg, radius_km
		FROM antenna_sectors ORDER BY cellname`)
	if err != nil {
		return nil, fmt.Errorf("failed to query antenna sectors: %w", err)
	}
	defer rows.Close()

	var sectors []models.AntennaSector
	for rows.Next() {
		var s models.AntennaSector
		if err := rows.Scan(&s.ID, &s.Cellname, &s.SiteID, &s.NodeID,
			&s.Position.Lat, &s.Position.Lon,
			&s.AzimuthDeg, &s.BeamwidthDeg, &s.RadiusKm); err != nil {
			return nil, fmt.Errorf("failed to scan sector: %w", err)
		}
		sectors = append(sectors, s)
	}

	return sectors, rows.Err()
}
