package models

// MeasurementSample is one drive-test record: where it was measured,
// which cell served it, and the received signal strength.
type MeasurementSample struct {
	ID       int64    `json:"id,omitempty" db:"id"`
	Cellname string   `json:"cellname" db:"cellname"` // serving cell; may be outside the loaded site list
	Position GeoPoint `json:"position"`
	RSRP     float64  `json:"rsrp" db:"rsrp"` // dBm
}

// RenderedSample is a MeasurementSample plus the rendering metadata the
// frontend needs to color it either by serving cell or by signal bucket.
type RenderedSample struct {
	MeasurementSample
	CellColor   string `json:"cell_color"`
	BucketColor string `json:"bucket_color"`
	BucketLabel string `json:"bucket_label"`
}

// SampleFilter represents query parameters for listing samples.
type SampleFilter struct {
	Cellname string  `form:"cellname"`
	MinRSRP  float64 `form:"minRsrp"`
	MaxRSRP  float64 `form:"maxRsrp"`
	Limit    int     `form:"limit"`
}
