// Package sector derives coverage footprints from antenna sector records.
package sector

import (
	"errors"
	"fmt"

	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/spatial"
)

// ErrInvalidGeometry reports a sector whose radius or beamwidth cannot
// describe a coverage wedge. The offending sector is skipped; the pass
// continues.
var ErrInvalidGeometry = errors.New("invalid sector geometry")

// ArcSteps is the number of points used to approximate the coverage arc.
// 50 renders a visually smooth arc without inflating the polygon.
const ArcSteps = 50

// Build computes the coverage footprint for one antenna sector: a pie-slice
// polygon closed through the antenna position, plus the boresight point.
//
// The boresight is projected independently at exactly the azimuth bearing,
// not taken from the interpolated arc, so the step count never perturbs it.
// A zero beamwidth degenerates to a line and a zero radius collapses the
// whole footprint onto the antenna position; both are allowed.
func Build(s models.AntennaSector) (models.SectorFootprint, error) {
	if s.RadiusKm < 0 {
		return models.SectorFootprint{}, fmt.Errorf("%w: cell %s has negative radius %.3f km", ErrInvalidGeometry, s.Cellname, s.RadiusKm)
	}
	if s.BeamwidthDeg < 0 || s.BeamwidthDeg > 360 {
		return models.SectorFootprint{}, fmt.Errorf("%w: cell %s has beamwidth %.1f deg outside [0, 360]", ErrInvalidGeometry, s.Cellname, s.BeamwidthDeg)
	}

	startAngle := s.AzimuthDeg - s.BeamwidthDeg/2
	angleStep := s.BeamwidthDeg / float64(ArcSteps-1)

	polygon := make([]models.GeoPoint, 0, ArcSteps+2)
	polygon = append(polygon, s.Position)
	for i := 0; i < ArcSteps; i++ {
		bearing := startAngle + float64(i)*angleStep
		lat, lon := spatial.Project(s.Position.Lat, s.Position.Lon, bearing, s.RadiusKm)
		polygon = append(polygon, models.GeoPoint{Lat: lat, Lon: lon})
	}
	// Close the slice back through the antenna position.
	polygon = append(polygon, s.Position)

	boresightLat, boresightLon := spatial.Project(s.Position.Lat, s.Position.Lon, s.AzimuthDeg, s.RadiusKm)

	return models.SectorFootprint{
		Cellname:  s.Cellname,
		SiteID:    s.SiteID,
		Polygon:   polygon,
		Boresight: models.GeoPoint{Lat: boresightLat, Lon: boresightLon},
	}, nil
}
