package geo

import "math"

// BBox is an axis-aligned lat/lon envelope.
type BBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether p lies inside the box (edges included).
func (b BBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// BoundingBoxAround returns an envelope that contains every point within radiusKm
// of center. It over-covers and is meant as a pre-filter before DistanceKm.
// Near the poles or the antimeridian the longitude span widens to the full range.
func BoundingBoxAround(center Point, radiusKm float64) BBox {
	dLat := radiusKm / EarthRadiusKm * 180 / math.Pi

	box := BBox{
		MinLat: math.Max(-90, center.Lat-dLat),
		MaxLat: math.Min(90, center.Lat+dLat),
		MinLon: -180,
		MaxLon: 180,
	}

	cosLat := math.Cos(toRadians(math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))))
	if cosLat < 1e-9 {
		return box
	}
	dLon := dLat / cosLat
	if center.Lon-dLon < -180 || center.Lon+dLon > 180 {
		return box
	}
	box.MinLon = center.Lon - dLon
	box.MaxLon = center.Lon + dLon
	return box
}

// Offset returns the point distanceKm away from p along the given bearing
// (degrees clockwise from north).
func Offset(p Point, distanceKm, bearingDeg float64) Point {
	lat1 := toRadians(p.Lat)
	lon1 := toRadians(p.Lon)
	brng := toRadians(bearingDeg)
	d := distanceKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(math.Sin(brng)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return Point{Lat: lat2 * 180 / math.Pi, Lon: lon2 * 180 / math.Pi}
}
