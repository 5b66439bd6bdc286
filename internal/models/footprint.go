package models

// SectorFootprint is the coverage wedge derived from one AntennaSector:
// a closed pie-slice polygon (first and last vertex are the antenna
// position) plus the boresight point at the azimuth bearing and radius.
// Computed once per visualization pass and never mutated.
type SectorFootprint struct {
	Cellname  string     `json:"cellname"`
	SiteID    string     `json:"siteid,omitempty"`
	Polygon   []GeoPoint `json:"polygon"`
	Boresight GeoPoint   `json:"boresight"`
}

// AssociationSegment is one spider-graph link: a sample position joined
// to its serving cell's boresight point. Produced for rendering only.
type AssociationSegment struct {
	Cellname string   `json:"cellname"`
	From     GeoPoint `json:"from"` // sample position
	To       GeoPoint `json:"to"`   // serving cell boresight
	Color    string   `json:"color"`
}
