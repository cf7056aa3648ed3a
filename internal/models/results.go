package models

// LocationCluster is one map marker: all geolocatable filtered events that
// resolved to the same location label.
type LocationCluster struct {
	LocationLabel string   `json:"location_label"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	Count         int      `json:"count"`
	EventList     string   `json:"event_list"` // per-event hover lines, "<br><br>"-joined
	Titles        string   `json:"titles"`     // semicolon-joined event titles
	SizeMean      *float64 `json:"size_mean,omitempty"`
	Hover         string   `json:"hover"`
}

// MapView describes the viewport the presentation layer should frame the
// clusters with.
type MapView struct {
	CenterLat  float64 `json:"center_lat"`
	CenterLon  float64 `json:"center_lon"`
	SpanMeters float64 `json:"span_meters"`
}

// MapResult is the spatial aggregation output. Clusters are split by
// presence of a mean size so the two classes can be styled independently.
type MapResult struct {
	HasSize   []LocationCluster `json:"has_size"`
	NoSize    []LocationCluster `json:"no_size"`
	SizeRef   float64           `json:"size_ref"` // bubble-area scaling reference
	View      MapView           `json:"view"`
	NoGeoData bool              `json:"no_geo_data"` // true when no row had coordinates
}

// TrendLine is the degree-1 least-squares fit over the momentum series.
type TrendLine struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Values    []float64 `json:"values"` // fitted momentum per date-axis bucket
}

// TimeSeriesResult holds the daily series over the filtered data's date
// span. All slices share the Dates axis; pointer entries are nil where the
// series is undefined for that day.
type TimeSeriesResult struct {
	Dates             []string   `json:"dates"` // YYYY-MM-DD, dense daily buckets
	Momentum          []float64  `json:"momentum"`
	Rolling7          []*float64 `json:"rolling7"`
	Daily             []int      `json:"daily"`
	Cumulative        []int      `json:"cumulative"`
	DailyParticipants []*float64 `json:"daily_participants"`
	Trend             *TrendLine `json:"trend,omitempty"`
}

// KPISet holds the scalar metrics for one filtered view.
type KPISet struct {
	TotalEvents         int     `json:"total_events"`
	PeakDayParticipants float64 `json:"peak_day_participants"`
	PercentUSPopulation float64 `json:"percent_us_population"`
	MeanSize            float64 `json:"mean_size"`
	PercentMissingSize  float64 `json:"percent_missing_size"`
	LargestEvent        float64 `json:"largest_event"`
	LargestDay          float64 `json:"largest_day"`
}

// DatasetMeta feeds the filter controls of the presentation layer.
type DatasetMeta struct {
	States   []string `json:"states"`
	MinDate  string   `json:"min_date,omitempty"`
	MaxDate  string   `json:"max_date,omitempty"`
	RowCount int      `json:"row_count"`
}
