// Package coverage associates drive-test samples with serving-cell
// footprints and aggregates per-cell and per-bucket statistics.
package coverage

import "github.com/ramdani/geocell-backend-go/internal/models"

// Index maps a cell identifier to its boresight point. Built once per
// visualization pass after all footprints are computed; consumers only
// read it, so concurrent association queries need no coordination.
type Index map[string]models.GeoPoint

// BuildIndex collects boresight points keyed by cellname. Duplicate
// cellnames overwrite last-wins; a cellname is unique within one loaded
// site list, so duplicates only occur on malformed input.
func BuildIndex(footprints []models.SectorFootprint) Index {
	idx := make(Index, len(footprints))
	for _, fp := range footprints {
		idx[fp.Cellname] = fp.Boresight
	}
	return idx
}

// Boresight looks up the boresight point for a cellname.
func (idx Index) Boresight(cellname string) (models.GeoPoint, bool) {
	p, ok := idx[cellname]
	return p, ok
}
