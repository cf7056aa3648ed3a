package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/spatial"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestAggregateMapPartitionsGeolocatableRows(t *testing.T) {
	rows := filtered(
		models.Event{Title: "A", Location: "Site One", Lat: fptr(34.0), Lon: fptr(-118.0), SizeMean: fptr(50)},
		models.Event{Title: "B", Location: "Site One", Lat: fptr(34.0), Lon: fptr(-118.0)},
		models.Event{Title: "C", Location: "Site Two", Lat: fptr(40.7), Lon: fptr(-74.0)},
		models.Event{Title: "D", Location: "No Coords"},
	)

	res := AggregateMap(rows, spatial.DefaultJitter, testRand())

	clusters := append(append([]models.LocationCluster{}, res.HasSize...), res.NoSize...)
	seen := make(map[string]bool)
	total := 0
	for _, c := range clusters {
		if seen[c.LocationLabel] {
			t.Errorf("label %q appears in more than one cluster", c.LocationLabel)
		}
		seen[c.LocationLabel] = true
		total += c.Count
	}
	if total != 3 {
		t.Errorf("cluster counts sum to %d, want 3 geolocatable rows", total)
	}
	if res.NoGeoData {
		t.Error("NoGeoData set even though geolocatable rows exist")
	}
}

func TestAggregateMapClusterContents(t *testing.T) {
	rows := filtered(
		models.Event{Title: "A", Date: dptr("2025-01-01"), Location: "Site", Organizations: "org one",
			Lat: fptr(34.0), Lon: fptr(-118.0), SizeMean: fptr(100)},
		models.Event{Title: "B", Date: dptr("2025-01-02"), Location: "Site", Organizations: "org two",
			Lat: fptr(35.0), Lon: fptr(-117.0), SizeMean: fptr(300)},
	)

	res := AggregateMap(rows, spatial.DefaultJitter, testRand())
	if len(res.HasSize) != 1 || len(res.NoSize) != 0 {
		t.Fatalf("expected one sized cluster, got %d/%d", len(res.HasSize), len(res.NoSize))
	}

	c := res.HasSize[0]
	if c.Count != 2 {
		t.Errorf("cluster count = %d, want 2", c.Count)
	}
	// Representative coordinates come from the first row of the group
	if c.Lat != 34.0 || c.Lon != -118.0 {
		t.Errorf("representative coords = (%v, %v), want first row's", c.Lat, c.Lon)
	}
	if c.SizeMean == nil || *c.SizeMean != 200 {
		t.Errorf("cluster mean size = %v, want 200", c.SizeMean)
	}
	wantList := "A (2025-01-01)<br>Org: org one<br><br>B (2025-01-02)<br>Org: org two"
	if c.EventList != wantList {
		t.Errorf("event list = %q, want %q", c.EventList, wantList)
	}
	if c.Titles != "A; B" {
		t.Errorf("titles = %q, want %q", c.Titles, "A; B")
	}
	wantHover := "<b>Site</b><br>Events at this site: 2<br><br><b>Events:</b><br>" + wantList
	if c.Hover != wantHover {
		t.Errorf("hover = %q, want %q", c.Hover, wantHover)
	}
}

func TestAggregateMapNoGeoData(t *testing.T) {
	rows := filtered(
		models.Event{Title: "A", State: "CA"},
		models.Event{Title: "B", State: "NY"},
	)

	res := AggregateMap(rows, spatial.DefaultJitter, testRand())
	if !res.NoGeoData {
		t.Error("expected NoGeoData for rows without coordinates")
	}
	if len(res.HasSize) != 0 || len(res.NoSize) != 0 {
		t.Error("expected no clusters")
	}
	// Distinguishable from an empty row set
	empty := AggregateMap(nil, spatial.DefaultJitter, testRand())
	if empty.NoGeoData {
		t.Error("empty row set must not report NoGeoData")
	}
}

func TestAggregateMapJitterSeparatesDuplicates(t *testing.T) {
	rows := filtered(
		models.Event{Title: "A", Location: "One", Lat: fptr(34.0), Lon: fptr(-118.0)},
		models.Event{Title: "B", Location: "Two", Lat: fptr(34.0), Lon: fptr(-118.0)},
	)

	cfg := spatial.JitterConfig{MinRadius: 0.0005, MaxRadius: 0.05}
	res := AggregateMap(rows, cfg, testRand())

	if len(res.NoSize) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(res.NoSize))
	}
	first, second := res.NoSize[0], res.NoSize[1]
	if first.Lat != 34.0 || first.Lon != -118.0 {
		t.Errorf("first duplicate must keep original coords, got (%v, %v)", first.Lat, first.Lon)
	}
	dLat := second.Lat - 34.0
	dLon := second.Lon - -118.0
	radius := math.Hypot(dLat, dLon)
	if radius < cfg.MinRadius || radius > cfg.MaxRadius {
		t.Errorf("jitter radius %v outside [%v, %v]", radius, cfg.MinRadius, cfg.MaxRadius)
	}
}

func TestAggregateMapSizeRef(t *testing.T) {
	rows := filtered(
		models.Event{Title: "A", Location: "One", Lat: fptr(34.0), Lon: fptr(-118.0), SizeMean: fptr(5000)},
	)
	res := AggregateMap(rows, spatial.DefaultJitter, testRand())
	want := 2.0 * 5000 / (50.0 * 50.0)
	if res.SizeRef != want {
		t.Errorf("SizeRef = %v, want %v", res.SizeRef, want)
	}

	// Zero and negative max sizes must not divide the scale away
	rows = filtered(
		models.Event{Title: "B", Location: "Two", Lat: fptr(34.0), Lon: fptr(-118.0), SizeMean: fptr(0)},
	)
	res = AggregateMap(rows, spatial.DefaultJitter, testRand())
	if res.SizeRef != 1 {
		t.Errorf("SizeRef guard = %v, want 1", res.SizeRef)
	}
}

func TestAggregateMapDoesNotMutateCoordinates(t *testing.T) {
	lat, lon := 34.0, -118.0
	rows := filtered(
		models.Event{Title: "A", Location: "One", Lat: &lat, Lon: &lon},
		models.Event{Title: "B", Location: "Two", Lat: &lat, Lon: &lon},
	)

	AggregateMap(rows, spatial.DefaultJitter, testRand())
	if lat != 34.0 || lon != -118.0 {
		t.Fatalf("jitter leaked into source coordinates: (%v, %v)", lat, lon)
	}
}
