package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ramdani/geocell-backend-go/internal/coverage"
	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/palette"
	"github.com/ramdani/geocell-backend-go/internal/repository"
	"github.com/ramdani/geocell-backend-go/internal/sector"
	"github.com/ramdani/geocell-backend-go/internal/stats"
)

// Pass holds everything derived from one generation of loaded data:
// footprints, the boresight index, the color assignment and the map
// center. It is computed once, read-only afterwards, and replaced
// wholesale when sectors or samples are reloaded.
type Pass struct {
	ID         string
	Footprints []models.SectorFootprint
	Index      coverage.Index
	Colors     palette.Assignment
	Center     models.GeoPoint
	Skipped    []string // cellnames rejected for invalid geometry
}

// FootprintView is a footprint plus its assigned rendering color.
type FootprintView struct {
	models.SectorFootprint
	Color string `json:"color"`
}

// CoverageService owns the visualization pass lifecycle: loading site
// and drive-test data, deriving the pass, and answering rendering
// queries from it.
type CoverageService struct {
	sectors *repository.SectorRepository
	samples *repository.SampleRepository

	mu   sync.Mutex
	pass *Pass
}

// NewCoverageService creates a new coverage service
func NewCoverageService(sectors *repository.SectorRepository, samples *repository.SampleRepository) *CoverageService {
	return &CoverageService{sectors: sectors, samples: samples}
}

// LoadSectors replaces the site list and invalidates the current pass.
func (s *CoverageService) LoadSectors(in []models.AntennaSector) error {
	for _, sec := range in {
		if err := validateSector(sec); err != nil {
			return err
		}
	}
	if err := s.sectors.ReplaceAll(in); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// LoadSamples replaces the drive-test samples and invalidates the
// current pass (the identifier set feeding the color assignment may
// have changed).
func (s *CoverageService) LoadSamples(in []models.MeasurementSample) error {
	for _, m := range in {
		if err := validatePosition(m.Position); err != nil {
			return fmt.Errorf("sample for cell %s: %w", m.Cellname, err)
		}
	}
	if err := s.samples.ReplaceAll(in); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Sectors lists the loaded site list.
func (s *CoverageService) Sectors() ([]models.AntennaSector, error) {
	return s.sectors.GetAll()
}

// Footprints returns the pass footprints with their per-cell colors.
func (s *CoverageService) Footprints() ([]FootprintView, error) {
	pass, err := s.currentPass()
	if err != nil {
		return nil, err
	}

	views := make([]FootprintView, 0, len(pass.Footprints))
	for _, fp := range pass.Footprints {
		views = append(views, FootprintView{
			SectorFootprint: fp,
			Color:           pass.Colors.Color(fp.Cellname),
		})
	}
	return views, nil
}

// Samples lists samples decorated with both category and signal-bucket
// colors, so the frontend picks either without re-asking.
func (s *CoverageService) Samples(filter models.SampleFilter) ([]models.RenderedSample, error) {
	pass, err := s.currentPass()
	if err != nil {
		return nil, err
	}
	raw, err := s.samples.GetAll(filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.RenderedSample, 0, len(raw))
	for _, m := range raw {
		bucketColor, bucketLabel := palette.ClassifySignal(m.RSRP, palette.DefaultRSRPScale)
		out = append(out, models.RenderedSample{
			MeasurementSample: m,
			CellColor:         pass.Colors.Color(m.Cellname),
			BucketColor:       bucketColor,
			BucketLabel:       bucketLabel,
		})
	}
	return out, nil
}

// Spider builds the spider-graph segments joining each sample to its
// serving cell's boresight point. Samples served by cells outside the
// loaded site list produce no segment.
func (s *CoverageService) Spider(ctx context.Context) ([]models.AssociationSegment, error) {
	pass, err := s.currentPass()
	if err != nil {
		return nil, err
	}
	samples, err := s.samples.GetAll(models.SampleFilter{})
	if err != nil {
		return nil, err
	}
	return coverage.LinkParallel(ctx, samples, pass.Index, pass.Colors)
}

// CategoryStats aggregates samples per serving cell.
func (s *CoverageService) CategoryStats() ([]models.CategoryStatistic, error) {
	pass, err := s.currentPass()
	if err != nil {
		return nil, err
	}
	samples, err := s.samples.GetAll(models.SampleFilter{})
	if err != nil {
		return nil, err
	}
	return coverage.CategoryStatistics(samples, pass.Colors), nil
}

// BucketStats aggregates samples per RSRP bucket.
func (s *CoverageService) BucketStats() ([]models.BucketStatistic, error) {
	if _, err := s.currentPass(); err != nil {
		return nil, err
	}
	samples, err := s.samples.GetAll(models.SampleFilter{})
	if err != nil {
		return nil, err
	}
	return coverage.BucketStatistics(samples, palette.DefaultRSRPScale), nil
}

// Scene summarizes the pass for map centering and legend rendering.
func (s *CoverageService) Scene() (models.SceneSummary, error) {
	pass, err := s.currentPass()
	if err != nil {
		return models.SceneSummary{}, err
	}
	samples, err := s.samples.GetAll(models.SampleFilter{})
	if err != nil {
		return models.SceneSummary{}, err
	}

	return models.SceneSummary{
		PassID:      pass.ID,
		Center:      pass.Center,
		SectorCount: len(pass.Footprints),
		SampleCount: len(samples),
		CellColors:  pass.Colors.Colors(),
		Skipped:     pass.Skipped,
	}, nil
}

// SignalScale exposes the bucket table the pass classifies with.
func (s *CoverageService) SignalScale() palette.SignalScale {
	return palette.DefaultRSRPScale
}

// currentPass returns the cached pass, computing it under the lock when
// the data generation changed. The lock guarantees at most one
// computation per generation even under concurrent rendering requests.
func (s *CoverageService) currentPass() (*Pass, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pass != nil {
		return s.pass, nil
	}

	sectors, err := s.sectors.GetAll()
	if err != nil {
		return nil, err
	}

	pass := &Pass{ID: uuid.NewString()}

	var lats, lons []float64
	names := make([]string, 0, len(sectors))
	for _, sec := range sectors {
		fp, err := sector.Build(sec)
		if err != nil {
			if errors.Is(err, sector.ErrInvalidGeometry) {
				log.Printf("Skipping sector %s: %v", sec.Cellname, err)
				pass.Skipped = append(pass.Skipped, sec.Cellname)
				continue
			}
			return nil, err
		}
		pass.Footprints = append(pass.Footprints, fp)
		names = append(names, sec.Cellname)
		lats = append(lats, sec.Position.Lat)
		lons = append(lons, sec.Position.Lon)
	}

	colors, err := palette.AssignCategorical(names)
	if err != nil {
		if !errors.Is(err, palette.ErrEmptyDomain) {
			return nil, err
		}
		// Zero-sector scene: keep an empty assignment.
		colors = palette.Assignment{}
	}

	pass.Colors = colors
	pass.Index = coverage.BuildIndex(pass.Footprints)
	pass.Center = models.GeoPoint{Lat: stats.Mean(lats), Lon: stats.Mean(lons)}

	s.pass = pass
	return s.pass, nil
}

// invalidate drops the cached pass so the next query recomputes it.
func (s *CoverageService) invalidate() {
	s.mu.Lock()
	s.pass = nil
	s.mu.Unlock()
}

func validateSector(sec models.AntennaSector) error {
	if sec.Cellname == "" {
		return fmt.Errorf("sector missing cellname")
	}
	if err := validatePosition(sec.Position); err != nil {
		return fmt.Errorf("sector %s: %w", sec.Cellname, err)
	}
	return nil
}

func validatePosition(p models.GeoPoint) error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %.6f out of range", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %.6f out of range", p.Lon)
	}
	return nil
}
