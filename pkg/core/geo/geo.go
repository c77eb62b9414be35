package geo

import (
	"math"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula
const earthRadiusMiles = 3959.0

// DefaultSpeedMPH is the assumed average road speed for travel estimates,
// reflecting mixed urban/rural driving between home visits
const DefaultSpeedMPH = 22.0

// Distance returns the great-circle distance in miles between two coordinates
// using the haversine formula.
func Distance(a, b model.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLong := (b.Long - a.Long) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLong/2)*math.Sin(deltaLong/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// TravelMinutes estimates driving time in whole minutes for the given
// distance at the given average speed. The result is rounded and never
// negative. A non-positive speed falls back to DefaultSpeedMPH.
func TravelMinutes(miles, speedMPH float64) int {
	if miles <= 0 {
		return 0
	}
	if speedMPH <= 0 {
		speedMPH = DefaultSpeedMPH
	}
	minutes := int(math.Round(miles / speedMPH * 60))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// TravelMinutesBetween estimates driving time between two optional
// coordinates. Returns false when either coordinate is unknown: travel must
// then be treated as unknown by the caller, never as zero.
func TravelMinutesBetween(a, b *model.Coordinate, speedMPH float64) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return TravelMinutes(Distance(*a, *b), speedMPH), true
}
