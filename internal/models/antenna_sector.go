package models

// GeoPoint is a position in decimal degrees.
// Latitude is in [-90, 90], longitude in [-180, 180].
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AntennaSector represents one cell of a site: its position plus the
// antenna orientation and coverage geometry. Loaded in bulk from the
// site list and treated as immutable for the duration of a pass.
type AntennaSector struct {
	ID       int64  `json:"id,omitempty" db:"id"`
	Cellname string `json:"cellname" db:"cellname"` // unique within a loaded site list
	SiteID   string `json:"siteid" db:"siteid"`
	NodeID   string `json:"nodeid" db:"nodeid"`

	Position GeoPoint `json:"position"`

	AzimuthDeg   float64 `json:"azimuth_deg" db:"azimuth_deg"`     // [0, 360)
	BeamwidthDeg float64 `json:"beamwidth_deg" db:"beamwidth_deg"` // (0, 360]
	RadiusKm     float64 `json:"radius_km" db:"radius_km"`         // > 0
}
