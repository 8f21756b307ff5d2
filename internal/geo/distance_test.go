package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

var samplePoints = []Point{
	{Lat: 0, Lon: 0},
	{Lat: -1.29, Lon: 36.82},
	{Lat: 1.0, Lon: 36.0},
	{Lat: 89.9, Lon: -179.9},
	{Lat: -90, Lon: 180},
	{Lat: 51.5, Lon: -0.12},
	{Lat: -33.86, Lon: 151.21},
}

func TestDistanceKm_SymmetricAndNonNegative(t *testing.T) {
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			ab := DistanceKm(a, b)
			ba := DistanceKm(b, a)
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.InDelta(t, ab, ba, 1e-6, "distance %v -> %v", a, b)
		}
	}
}

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	for _, p := range samplePoints {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_KnownValues(t *testing.T) {
	// one degree of latitude on a 6371 km sphere
	assert.InDelta(t, 111.195, DistanceKm(Point{0, 0}, Point{1, 0}), 0.001)
	// Nairobi CBD to Jomo Kenyatta airport
	assert.InDelta(t, 12.82, DistanceKm(Point{-1.2864, 36.8172}, Point{-1.3192, 36.9278}), 0.05)
	// antipodes
	assert.InDelta(t, math.Pi*EarthRadiusKm, DistanceKm(Point{0, 0}, Point{0, 180}), 1e-6)
}

func TestOffset_RoundTrip(t *testing.T) {
	origin := Point{Lat: -1.29, Lon: 36.82}
	for _, km := range []float64{0.5, 3, 12, 49.9} {
		for _, bearing := range []float64{0, 45, 90, 200} {
			p := Offset(origin, km, bearing)
			assert.InDelta(t, km, DistanceKm(origin, p), 1e-6)
		}
	}
}

func TestPoint_Validate(t *testing.T) {
	assert.NoError(t, Point{Lat: 90, Lon: -180}.Validate())
	assert.NoError(t, Point{Lat: -1.29, Lon: 36.82}.Validate())

	for _, p := range []Point{{Lat: 90.01}, {Lat: -91}, {Lon: 180.5}, {Lon: -200}, {Lat: math.NaN()}} {
		err := p.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	}
}

func TestPoint_EWKB(t *testing.T) {
	data, err := Point{Lat: -1.29, Lon: 36.82}.EWKB()
	require.NoError(t, err)

	g, err := ewkb.Unmarshal(data)
	require.NoError(t, err)
	pt, ok := g.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, SRID, pt.SRID())
	assert.Equal(t, 36.82, pt.X())
	assert.Equal(t, -1.29, pt.Y())
}

func TestBoundingBoxAround(t *testing.T) {
	center := Point{Lat: -1.29, Lon: 36.82}
	box := BoundingBoxAround(center, 5)

	assert.True(t, box.Contains(center))
	for _, bearing := range []float64{0, 90, 180, 270, 45, 135} {
		assert.True(t, box.Contains(Offset(center, 4.99, bearing)), "bearing %v", bearing)
	}
	assert.False(t, box.Contains(Offset(center, 8, 0)))

	polar := BoundingBoxAround(Point{Lat: 89.99, Lon: 10}, 5)
	assert.Equal(t, -180.0, polar.MinLon)
	assert.Equal(t, 180.0, polar.MaxLon)
	assert.Equal(t, 90.0, polar.MaxLat)
}
