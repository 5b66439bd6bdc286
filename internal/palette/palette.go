// Package palette assigns deterministic colors to cell identifiers and
// signal-strength buckets for map rendering.
package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrEmptyDomain reports a categorical assignment over zero identifiers.
// Callers typically recover by using an empty assignment.
var ErrEmptyDomain = errors.New("no identifiers to assign colors to")

// UnknownColor is returned for identifiers outside an assignment.
const UnknownColor = "black"

// Assignment maps cell identifiers to hex colors. Keys() preserves the
// sorted order used during assignment.
type Assignment struct {
	colors map[string]string
	keys   []string
}

// Color returns the color for id, or UnknownColor when id was not part
// of the assignment domain.
func (a Assignment) Color(id string) string {
	if c, ok := a.colors[id]; ok {
		return c
	}
	return UnknownColor
}

// Contains reports whether id was part of the assignment domain.
func (a Assignment) Contains(id string) bool {
	_, ok := a.colors[id]
	return ok
}

// Keys returns the identifiers in assignment (sorted) order.
func (a Assignment) Keys() []string {
	return a.keys
}

// Len returns the number of assigned identifiers.
func (a Assignment) Len() int {
	return len(a.keys)
}

// Colors returns the identifier to color mapping.
func (a Assignment) Colors() map[string]string {
	out := make(map[string]string, len(a.colors))
	for k, v := range a.colors {
		out[k] = v
	}
	return out
}

// AssignCategorical maps each identifier to a hue evenly spaced around
// the HSV color wheel at full saturation and value, so adjacent indices
// stay maximally distinguishable. Identifiers are sorted first, making
// the mapping stable across reloads regardless of input order.
func AssignCategorical(identifiers []string) (Assignment, error) {
	if len(identifiers) == 0 {
		return Assignment{}, ErrEmptyDomain
	}

	keys := make([]string, len(identifiers))
	copy(keys, identifiers)
	sort.Strings(keys)

	colors := make(map[string]string, len(keys))
	n := float64(len(keys))
	for i, id := range keys {
		r, g, b := hsvToRGB(float64(i)/n, 1.0, 1.0)
		colors[id] = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}

	return Assignment{colors: colors, keys: keys}, nil
}

// hsvToRGB converts HSV (h, s, v in [0, 1]) to 8-bit RGB channels.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
