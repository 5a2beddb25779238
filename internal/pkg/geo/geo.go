package geo

import (
	"fmt"
	"math"
)

// FormatCoordinates renders a lat/lon pair as a human-readable string. Used as
// the address fallback when reverse geocoding is unavailable.
func FormatCoordinates(lat, lon float64) string {
	latHemi := "N"
	if lat < 0 {
		latHemi = "S"
	}
	lonHemi := "E"
	if lon < 0 {
		lonHemi = "W"
	}
	return fmt.Sprintf("%.4f°%s, %.4f°%s", math.Abs(lat), latHemi, math.Abs(lon), lonHemi)
}
