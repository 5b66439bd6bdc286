package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	t.Parallel()

	t.Run("round trip distance matches haversine", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			lat, lon, bearing, distanceKm float64
		}{
			{0, 0, 90, 1},
			{0, 0, 0, 10},
			{-6.2, 106.8, 45, 2.5},
			{51.5, -0.12, 200, 7},
			{80, 10, 350, 3},
		}

		for _, tc := range cases {
			lat2, lon2 := Project(tc.lat, tc.lon, tc.bearing, tc.distanceKm)
			back := HaversineDistanceKm(tc.lat, tc.lon, lat2, lon2)
			assert.InDelta(t, tc.distanceKm, back, 1e-6)
		}
	})

	t.Run("zero distance returns origin", func(t *testing.T) {
		t.Parallel()
		lat, lon := Project(-6.2, 106.8, 123, 0)
		assert.InDelta(t, -6.2, lat, 1e-9)
		assert.InDelta(t, 106.8, lon, 1e-9)
	})

	t.Run("east bearing at equator moves longitude only", func(t *testing.T) {
		t.Parallel()
		lat, lon := Project(0, 0, 90, 1)
		assert.InDelta(t, 0, lat, 1e-9)
		assert.Greater(t, lon, 0.0)
	})

	t.Run("bearing normalized mod 360", func(t *testing.T) {
		t.Parallel()
		lat1, lon1 := Project(10, 20, 450, 5)
		lat2, lon2 := Project(10, 20, 90, 5)
		assert.InDelta(t, lat2, lat1, 1e-12)
		assert.InDelta(t, lon2, lon1, 1e-12)
	})
}

func TestNormalizeBearing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, NormalizeBearing(360))
	assert.Equal(t, 90.0, NormalizeBearing(450))
	assert.Equal(t, 270.0, NormalizeBearing(-90))
	assert.Equal(t, 0.0, NormalizeBearing(0))
}

func TestBearing(t *testing.T) {
	t.Parallel()

	t.Run("due east", func(t *testing.T) {
		t.Parallel()
		b := Bearing(0, 0, 0, 1)
		assert.InDelta(t, 90, b, 1e-9)
	})

	t.Run("due north", func(t *testing.T) {
		t.Parallel()
		b := Bearing(0, 0, 1, 0)
		assert.InDelta(t, 0, b, 1e-9)
	})

	t.Run("projection and bearing agree", func(t *testing.T) {
		t.Parallel()
		lat2, lon2 := Project(12.3, 45.6, 135, 4)
		b := Bearing(12.3, 45.6, lat2, lon2)
		assert.InDelta(t, 135, b, 1e-3)
	})
}
