package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// one degree of latitude is roughly 111.19 km
	d := CalculateHaversineDistance(32.0, 34.75, 33.0, 34.75)
	assert.InDelta(t, 111190, d, 200)

	assert.Zero(t, CalculateHaversineDistance(32.05, 34.75, 32.05, 34.75))
}

func TestAirDistanceMatchesHaversine(t *testing.T) {
	a := Coordinate{Lat: 32.0500, Lon: 34.7500}
	b := Coordinate{Lat: 32.1000, Lon: 34.8000}

	air := AirDistance(a, b)
	hav := CalculateHaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)

	// both are great-circle distances on slightly different earth models
	assert.InDelta(t, hav, air, hav*0.01)
	assert.Greater(t, air, 0.0)
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(32.05, 34.75, 0, 1.0) // 1 km due north

	d := CalculateHaversineDistance(32.05, 34.75, lat, lon)
	assert.InDelta(t, 1000, d, 10)
	assert.Greater(t, lat, 32.05)
	assert.InDelta(t, 34.75, lon, 1e-6)
}
