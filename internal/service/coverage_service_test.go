package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramdani/geocell-backend-go/internal/database"
	"github.com/ramdani/geocell-backend-go/internal/models"
	"github.com/ramdani/geocell-backend-go/internal/repository"
	"github.com/ramdani/geocell-backend-go/internal/sector"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func testService(t *testing.T) *CoverageService {
	t.Helper()
	db := testDB(t)
	return NewCoverageService(repository.NewSectorRepository(db), repository.NewSampleRepository(db))
}

func loadFixture(t *testing.T, s *CoverageService) {
	t.Helper()

	require.NoError(t, s.LoadSectors([]models.AntennaSector{
		{
			Cellname: "JKT001_1", SiteID: "JKT001", NodeID: "N1",
			Position:   models.GeoPoint{Lat: -6.2, Lon: 106.8},
			AzimuthDeg: 90, BeamwidthDeg: 60, RadiusKm: 1,
		},
		{
			Cellname: "JKT001_2", SiteID: "JKT001", NodeID: "N1",
			Position:   models.GeoPoint{Lat: -6.2, Lon: 106.8},
			AzimuthDeg: 210, BeamwidthDeg: 60, RadiusKm: 1,
		},
		{
			// Broken geometry; must be skipped, not fatal.
			Cellname: "JKT002_1", SiteID: "JKT002", NodeID: "N2",
			Position:   models.GeoPoint{Lat: -6.21, Lon: 106.81},
			AzimuthDeg: 0, BeamwidthDeg: 60, RadiusKm: -2,
		},
	}))

	require.NoError(t, s.LoadSamples([]models.MeasurementSample{
		{Cellname: "JKT001_1", Position: models.GeoPoint{Lat: -6.199, Lon: 106.805}, RSRP: -78},
		{Cellname: "JKT001_1", Position: models.GeoPoint{Lat: -6.198, Lon: 106.806}, RSRP: -97},
		{Cellname: "JKT001_2", Position: models.GeoPoint{Lat: -6.203, Lon: 106.797}, RSRP: -108},
		{Cellname: "FOREIGN", Position: models.GeoPoint{Lat: -6.25, Lon: 106.75}, RSRP: -120},
	}))
}

func TestCoverageService(t *testing.T) {
	t.Parallel()

	t.Run("footprints carry colors and skip broken sectors", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		views, err := s.Footprints()
		require.NoError(t, err)
		require.Len(t, views, 2)

		for _, v := range views {
			assert.Len(t, v.Polygon, sector.ArcSteps+2)
			assert.NotEqual(t, "black", v.Color)
		}
		assert.NotEqual(t, views[0].Color, views[1].Color)
	})

	t.Run("scene reports center, counts and skipped cells", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		scene, err := s.Scene()
		require.NoError(t, err)

		assert.Equal(t, 2, scene.SectorCount)
		assert.Equal(t, 4, scene.SampleCount)
		assert.Equal(t, []string{"JKT002_1"}, scene.Skipped)
		assert.InDelta(t, -6.2, scene.Center.Lat, 1e-9)
		assert.InDelta(t, 106.8, scene.Center.Lon, 1e-9)
		assert.Len(t, scene.CellColors, 2)
		assert.NotEmpty(t, scene.PassID)
	})

	t.Run("pass is cached until data reloads", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		first, err := s.Scene()
		require.NoError(t, err)
		second, err := s.Scene()
		require.NoError(t, err)
		assert.Equal(t, first.PassID, second.PassID)

		require.NoError(t, s.LoadSamples(nil))
		third, err := s.Scene()
		require.NoError(t, err)
		assert.NotEqual(t, first.PassID, third.PassID)
	})

	t.Run("spider links only samples inside the site list", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		segments, err := s.Spider(context.Background())
		require.NoError(t, err)
		require.Len(t, segments, 3)
		for _, seg := range segments {
			assert.NotEqual(t, "FOREIGN", seg.Cellname)
		}
	})

	t.Run("samples carry both color views", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		samples, err := s.Samples(models.SampleFilter{})
		require.NoError(t, err)
		require.Len(t, samples, 4)

		assert.Equal(t, "blue", samples[0].BucketColor) // -78 dBm
		assert.NotEqual(t, "black", samples[0].CellColor)
		assert.Equal(t, "black", samples[3].CellColor) // FOREIGN cell
		assert.Equal(t, "red", samples[3].BucketColor) // -120 dBm
	})

	t.Run("statistics cover all samples", func(t *testing.T) {
		t.Parallel()
		s := testService(t)
		loadFixture(t, s)

		cells, err := s.CategoryStats()
		require.NoError(t, err)
		require.Len(t, cells, 3)
		assert.Equal(t, "JKT001_1", cells[0].Cellname)
		assert.Equal(t, 2, cells[0].Count)

		buckets, err := s.BucketStats()
		require.NoError(t, err)
		var total int
		for _, b := range buckets {
			total += b.Count
		}
		assert.Equal(t, 4, total)
	})

	t.Run("empty scene recovers with empty colors", func(t *testing.T) {
		t.Parallel()
		s := testService(t)

		scene, err := s.Scene()
		require.NoError(t, err)
		assert.Zero(t, scene.SectorCount)
		assert.Empty(t, scene.CellColors)

		views, err := s.Footprints()
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("rejects out of range positions at load", func(t *testing.T) {
		t.Parallel()
		s := testService(t)

		err := s.LoadSectors([]models.AntennaSector{{
			Cellname: "BAD", SiteID: "S", NodeID: "N",
			Position: models.GeoPoint{Lat: 91, Lon: 0},
		}})
		assert.Error(t, err)
	})
}
