package geo

// Location is a picked delivery point. Coordinates are nil for locations
// typed in by hand rather than picked from the map or a suggestion.
type Location struct {
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Name string   `json:"name"`
}

// Place is one forward-search suggestion.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Reverse lookup outcomes for points that cannot become a selection.
const (
	ReasonOutsideCountry = "outside_country"
	ReasonUnknownPlace   = "unknown_place"
)

// ReverseResult is the outcome of a reverse lookup. Usable is false when
// the point is outside the delivery country or has no recognizable state;
// Location is nil in that case and Reason says which.
type ReverseResult struct {
	Usable   bool      `json:"usable"`
	Reason   string    `json:"reason,omitempty"`
	Location *Location `json:"location"`
}

// MapConfig is the static map setup handed to clients.
type MapConfig struct {
	Bounds           [2][2]float64 `json:"bounds"`
	Center           [2]float64    `json:"center"`
	DefaultZoom      int           `json:"default_zoom"`
	MinZoom          int           `json:"min_zoom"`
	MaxZoom          int           `json:"max_zoom"`
	SavedZoom        int           `json:"saved_zoom"`
	PickZoom         int           `json:"pick_zoom"`
	SearchDebounceMS int           `json:"search_debounce_ms"`
}

// DefaultMapConfig bounds the map to Egypt and centers it on Cairo.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Bounds:           [2][2]float64{{21.7, 24.7}, {31.7, 37.3}},
		Center:           [2]float64{30.0444, 31.2357},
		DefaultZoom:      9,
		MinZoom:          6,
		MaxZoom:          19,
		SavedZoom:        10,
		PickZoom:         15,
		SearchDebounceMS: 400,
	}
}
