package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `title,date,state,organizations,targets,location,locality,lat,lon,size_mean,participant_injuries,police_injuries,arrests,participant_deaths,police_deaths,property_damage,notables,claims_summary,participant_measures,police_measures,notes
March for Justice,2025-01-01,CA,Resist Now; Local Org,Trump,City Hall,Los Angeles,34.05,-118.24,100,0,,unspecified,,,broken windows,,claims,,,some notes
Quiet Vigil,2025-01-03,NY,Other Group,TRUMP,,New York,40.71,-74.0,200,2,,,,,,,,,,
No Date Rally,not-a-date,TX,,,,,,,abc,,,,,,,,,,,
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	ds, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(ds.Events))
	}

	first := ds.Events[0]
	if first.Title != "March for Justice" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Organizations != "resist now; local org" {
		t.Errorf("organizations not lowercased: %q", first.Organizations)
	}
	if first.Targets != "trump" {
		t.Errorf("targets not lowercased: %q", first.Targets)
	}
	if first.Date == nil || first.Date.Format("2006-01-02") != "2025-01-01" {
		t.Errorf("unexpected date %v", first.Date)
	}
	if first.SizeMean == nil || *first.SizeMean != 100 {
		t.Errorf("unexpected size_mean %v", first.SizeMean)
	}
	if first.Lat == nil || *first.Lat != 34.05 {
		t.Errorf("unexpected lat %v", first.Lat)
	}
	// "unspecified" coerces to nil but the raw text is retained
	if first.Arrests != nil {
		t.Errorf("expected nil arrests, got %v", *first.Arrests)
	}
	if first.ArrestsRaw != "unspecified" {
		t.Errorf("unexpected arrests raw %q", first.ArrestsRaw)
	}
	if first.PropertyDamage != "broken windows" {
		t.Errorf("unexpected property damage %q", first.PropertyDamage)
	}

	third := ds.Events[2]
	if third.Date != nil {
		t.Errorf("unparseable date should be nil, got %v", third.Date)
	}
	if third.SizeMean != nil {
		t.Errorf("unparseable size should be nil, got %v", third.SizeMean)
	}
}

func TestLoadMeta(t *testing.T) {
	ds, err := Load(writeSample(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	meta := ds.Meta()
	if meta.RowCount != 3 {
		t.Errorf("expected row count 3, got %d", meta.RowCount)
	}
	want := []string{"CA", "NY", "TX"}
	if len(meta.States) != len(want) {
		t.Fatalf("expected states %v, got %v", want, meta.States)
	}
	for i, s := range want {
		if meta.States[i] != s {
			t.Errorf("expected states %v, got %v", want, meta.States)
			break
		}
	}
	if meta.MinDate != "2025-01-01" || meta.MaxDate != "2025-01-03" {
		t.Errorf("unexpected date bounds %s..%s", meta.MinDate, meta.MaxDate)
	}
}

func TestLoadRetainsSourceColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.csv")
	csv := "title,date,state,trump_stance,size_low\n" +
		"March,2025-01-01,CA,oppose,50\n" +
		"Vigil,2025-01-02,NY,support,\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantHeader := []string{"title", "date", "state", "trump_stance", "size_low"}
	if len(ds.Header) != len(wantHeader) {
		t.Fatalf("expected header %v, got %v", wantHeader, ds.Header)
	}
	for i, name := range wantHeader {
		if ds.Header[i] != name {
			t.Fatalf("expected header %v, got %v", wantHeader, ds.Header)
		}
	}
	if len(ds.Raw) != 2 {
		t.Fatalf("expected 2 raw records, got %d", len(ds.Raw))
	}
	if ds.Raw[0][3] != "oppose" || ds.Raw[1][3] != "support" {
		t.Error("unmodeled column values not retained")
	}
	for i := range ds.Events {
		if ds.Events[i].Row != i {
			t.Errorf("event %d carries row index %d", i, ds.Events[i].Row)
		}
	}

	rec := ds.ExportRecord(&ds.Events[0])
	if len(rec) != len(wantHeader) {
		t.Fatalf("export record has %d columns, want %d", len(rec), len(wantHeader))
	}
	if rec[3] != "oppose" {
		t.Errorf("export record lost unmodeled column value, got %q", rec[3])
	}
	if rec[1] != "2025-01-01" {
		t.Errorf("modeled column not normalized, got %q", rec[1])
	}
}

func TestLoadExcludesNullMarkerState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nanstate.csv")
	csv := "title,date,state\n" +
		"March,2025-01-01,CA\n" +
		"Mystery Rally,2025-01-02,nan\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.States) != 1 || ds.States[0] != "CA" {
		t.Errorf("expected states [CA], got %v", ds.States)
	}
	// The record itself still loads; only the filter option is dropped
	if len(ds.Events) != 2 || ds.Events[1].State != "nan" {
		t.Error("null-marker row should load unchanged")
	}
}

func TestLoadToleratesMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	csv := "title,date\nSmall March,2025-02-01\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(ds.Events))
	}
	e := ds.Events[0]
	if e.SizeMean != nil || e.Lat != nil || e.Lon != nil {
		t.Error("missing columns should load as nil fields")
	}
	if e.State != "" || e.Organizations != "" {
		t.Error("missing text columns should load as empty strings")
	}
}
