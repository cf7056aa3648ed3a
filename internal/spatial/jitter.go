package spatial

import (
	"math"
	"math/rand"
)

// JitterConfig bounds the random radial offset, in degrees.
type JitterConfig struct {
	MinRadius float64
	MaxRadius float64
}

// DefaultJitter matches the city-centroid separation used by the dashboard.
var DefaultJitter = JitterConfig{MinRadius: 0.0005, MaxRadius: 0.05}

// Jitter offsets points that share an exact coordinate pair so map markers
// do not fully overlap. The first point at each coordinate keeps its original
// position; every later duplicate moves by a uniform random angle and a
// radius drawn from [MinRadius, MaxRadius]. Points are modified in place, so
// callers pass a working copy, never dataset coordinates.
func Jitter(points []Point, cfg JitterConfig, rng *rand.Rand) {
	if cfg.MaxRadius < cfg.MinRadius {
		cfg.MaxRadius = cfg.MinRadius
	}
	seen := make(map[Point]struct{}, len(points))
	for i := range points {
		p := points[i]
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			continue
		}
		angle := rng.Float64() * 2 * math.Pi
		radius := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		points[i].Lat += math.Cos(angle) * radius
		points[i].Lon += math.Sin(angle) * radius
	}
}
