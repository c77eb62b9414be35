package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarjCP365/rota-DomSL-sub003/pkg/core/model"
)

func TestDistance_SamePoint(t *testing.T) {
	p := model.Coordinate{Lat: 51.5615, Long: 0.0731}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_Symmetry(t *testing.T) {
	a := model.Coordinate{Lat: 51.5615, Long: 0.0731} // Ilford
	b := model.Coordinate{Lat: 51.5762, Long: 0.1780} // Romford

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-12)
}

func TestDistance_KnownPair(t *testing.T) {
	// London to Birmingham, roughly 100 miles great-circle
	london := model.Coordinate{Lat: 51.5074, Long: -0.1278}
	birmingham := model.Coordinate{Lat: 52.4862, Long: -1.8904}

	d := Distance(london, birmingham)
	assert.InDelta(t, 101, d, 2)
}

func TestTravelMinutes_Rounding(t *testing.T) {
	// 11 miles at 22 mph = 30 minutes exactly
	assert.Equal(t, 30, TravelMinutes(11, 22))

	// 1 mile at 22 mph = 2.7 minutes, rounds to 3
	assert.Equal(t, 3, TravelMinutes(1, 22))
}

func TestTravelMinutes_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, TravelMinutes(-5, 22))
	assert.Equal(t, 0, TravelMinutes(0, 22))
}

func TestTravelMinutes_ZeroSpeedFallsBack(t *testing.T) {
	assert.Equal(t, TravelMinutes(11, DefaultSpeedMPH), TravelMinutes(11, 0))
}

func TestTravelMinutesBetween_UnknownCoordinate(t *testing.T) {
	a := &model.Coordinate{Lat: 51.5, Long: 0.1}

	_, ok := TravelMinutesBetween(a, nil, 22)
	assert.False(t, ok)

	_, ok = TravelMinutesBetween(nil, a, 22)
	assert.False(t, ok)

	mins, ok := TravelMinutesBetween(a, a, 22)
	assert.True(t, ok)
	assert.Equal(t, 0, mins)
}
