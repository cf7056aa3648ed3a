package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/spatial"
)

// Continental-US framing used when there is nothing to fit the viewport to.
const (
	defaultCenterLat = 39.8283
	defaultCenterLon = -98.5795
)

// markerScale is the reference marker diameter for bubble-area scaling.
const markerScale = 50.0

// AggregateMap groups the geolocatable rows of a filtered view into map
// clusters keyed by location label. Duplicate-coordinate rows are jittered
// first so co-located markers separate; the jitter perturbs a working copy
// of the coordinates, never the dataset.
func AggregateMap(rows []models.FilteredEvent, cfg spatial.JitterConfig, rng *rand.Rand) *models.MapResult {
	res := &models.MapResult{
		SizeRef: 1,
		View:    models.MapView{CenterLat: defaultCenterLat, CenterLon: defaultCenterLon},
	}

	var geo []models.FilteredEvent
	var coords []spatial.Point
	for _, row := range rows {
		if !row.HasCoordinates() {
			continue
		}
		geo = append(geo, row)
		coords = append(coords, spatial.Point{Lat: *row.Lat, Lon: *row.Lon})
	}
	if len(geo) == 0 {
		res.NoGeoData = len(rows) > 0
		return res
	}

	spatial.Jitter(coords, cfg, rng)

	type group struct {
		cluster  models.LocationCluster
		events   []string
		titles   []string
		sizeSum  float64
		sizeRows int
	}
	var order []string
	groups := make(map[string]*group)

	for i, row := range geo {
		g, ok := groups[row.LocationLabel]
		if !ok {
			g = &group{cluster: models.LocationCluster{
				LocationLabel: row.LocationLabel,
				Lat:           coords[i].Lat,
				Lon:           coords[i].Lon,
			}}
			groups[row.LocationLabel] = g
			order = append(order, row.LocationLabel)
		}
		g.cluster.Count++
		g.events = append(g.events, EventLabel(row.Event))
		if title := cleanText(row.Title); title != "" {
			g.titles = append(g.titles, title)
		} else {
			g.titles = append(g.titles, unknown)
		}
		if row.SizeMean != nil {
			g.sizeSum += *row.SizeMean
			g.sizeRows++
		}
	}

	var maxSize float64
	var clusterPoints []spatial.Point
	for _, label := range order {
		g := groups[label]
		c := g.cluster
		c.EventList = strings.Join(g.events, "<br><br>")
		c.Titles = strings.Join(g.titles, "; ")
		c.Hover = fmt.Sprintf("<b>%s</b><br>Events at this site: %d<br><br><b>Events:</b><br>%s",
			c.LocationLabel, c.Count, c.EventList)
		if g.sizeRows > 0 {
			mean := g.sizeSum / float64(g.sizeRows)
			c.SizeMean = &mean
			if mean > maxSize {
				maxSize = mean
			}
			res.HasSize = append(res.HasSize, c)
		} else {
			res.NoSize = append(res.NoSize, c)
		}
		clusterPoints = append(clusterPoints, spatial.Point{Lat: c.Lat, Lon: c.Lon})
	}

	// Bubble-area scaling: area, not radius, proportional to mean size
	if maxSize > 0 {
		res.SizeRef = 2.0 * maxSize / (markerScale * markerScale)
	}

	if center, ok := spatial.Center(clusterPoints); ok {
		res.View = models.MapView{
			CenterLat:  center.Lat,
			CenterLon:  center.Lon,
			SpanMeters: spatial.Span(clusterPoints),
		}
	}

	return res
}
