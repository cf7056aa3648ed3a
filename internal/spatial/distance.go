package spatial

import "github.com/golang/geo/s2"

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Distance calculates the great-circle distance between two points in meters.
func Distance(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Center returns the centroid of the points as an s2 point projected back to
// lat/lon. Returns false when the slice is empty.
func Center(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var sum s2.Point
	for _, p := range points {
		ll := s2.LatLngFromDegrees(p.Lat, p.Lon)
		v := s2.PointFromLatLng(ll)
		sum.X += v.X
		sum.Y += v.Y
		sum.Z += v.Z
	}
	ll := s2.LatLngFromPoint(s2.Point{Vector: sum.Vector.Normalize()})
	return Point{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()}, true
}

// Span returns the largest pairwise great-circle distance in meters.
// Quadratic, fine for cluster counts.
func Span(points []Point) float64 {
	var max float64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d > max {
				max = d
			}
		}
	}
	return max
}
