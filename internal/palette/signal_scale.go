package palette

// SignalBucket is one entry of a signal scale: any value at or above
// Floor falls into this bucket unless an earlier entry claimed it.
type SignalBucket struct {
	Floor float64 `json:"floor"`
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// SignalScale is an ordered bucket table, bounds strictly decreasing.
// The last entry doubles as the catch-all for values below every bound,
// so classification is total over the reals.
type SignalScale []SignalBucket

// DefaultRSRPScale buckets RSRP (dBm) for drive-test coloring.
var DefaultRSRPScale = SignalScale{
	{Floor: -80, Color: "blue", Label: "RSRP >= -80"},
	{Floor: -95, Color: "#14380A", Label: "-95 <= RSRP < -80"},
	{Floor: -100, Color: "#93FC7C", Label: "-100 <= RSRP < -95"},
	{Floor: -110, Color: "yellow", Label: "-110 <= RSRP < -100"},
	{Floor: -115, Color: "red", Label: "RSRP < -110"},
}

// ClassifySignal scans the scale in order and returns the first bucket
// whose floor the value meets or exceeds; values below every floor get
// the last bucket.
func ClassifySignal(value float64, scale SignalScale) (color, label string) {
	if len(scale) == 0 {
		return UnknownColor, ""
	}
	b := scale[ClassifyIndex(value, scale)]
	return b.Color, b.Label
}

// ClassifyIndex returns the index of the bucket ClassifySignal would
// pick. The scale must be non-empty.
func ClassifyIndex(value float64, scale SignalScale) int {
	for i, b := range scale {
		if value >= b.Floor {
			return i
		}
	}
	return len(scale) - 1
}
