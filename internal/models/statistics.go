package models

// CategoryStatistic aggregates samples per serving cell, ordered by
// descending count for "largest contributor first" legends.
type CategoryStatistic struct {
	Cellname   string  `json:"cellname"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BucketStatistic aggregates samples per signal bucket, in scale order
// so legend ordering stays stable.
type BucketStatistic struct {
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SceneSummary is the per-pass overview the frontend uses to center the
// map and build its legends.
type SceneSummary struct {
	PassID      string            `json:"pass_id"`
	Center      GeoPoint          `json:"center"`
	SectorCount int               `json:"sector_count"`
	SampleCount int               `json:"sample_count"`
	CellColors  map[string]string `json:"cell_colors"`
	Skipped     []string          `json:"skipped_cells,omitempty"` // sectors rejected for bad geometry
}
