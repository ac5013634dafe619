package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// countryCode restricts reverse and forward lookups to Egypt.
const countryCode = "eg"

// searchLimit caps forward-search suggestions.
const searchLimit = 10

// Client talks to a Nominatim-compatible geocoder.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a geocoding client. An empty baseURL targets the
// public Nominatim instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseResponse struct {
	Address map[string]string `json:"address"`
}

// Reverse resolves a coordinate into a named location. Points outside
// Egypt or without a recognizable state come back unusable, not as
// errors.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (ReverseResult, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("accept-language", "ar")
	q.Set("zoom", "18")

	var resp reverseResponse
	if err := c.get(ctx, "/reverse", q, &resp); err != nil {
		return ReverseResult{}, err
	}

	addr := resp.Address
	if addr == nil || addr["country_code"] != countryCode {
		return ReverseResult{Reason: ReasonOutsideCountry}, nil
	}

	state := addr["state"]
	if state == "" {
		state = addr["county"]
	}
	if state == "" {
		return ReverseResult{Reason: ReasonUnknownPlace}, nil
	}

	place := firstNonEmpty(
		addr["road"],
		addr["neighbourhood"],
		addr["suburb"],
		addr["village"],
		addr["city_district"],
		addr["city"],
		addr["town"],
	)

	name := state
	if place != "" && place != state {
		name = state + ", " + place
	}

	return ReverseResult{
		Usable:   true,
		Location: &Location{Lat: &lat, Lng: &lng, Name: name},
	}, nil
}

type searchResponse struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// countrySuffix strips the trailing country from suggestion names.
var countrySuffix = regexp.MustCompile(`(?i), (Egypt|مصر)`)

// Search returns up to ten Egypt-restricted suggestions for a free-text
// query. An empty slice means no results, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("countrycodes", countryCode)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", strconv.Itoa(searchLimit))
	q.Set("accept-language", "ar")

	var resp []searchResponse
	if err := c.get(ctx, "/search", q, &resp); err != nil {
		return nil, err
	}

	if len(resp) > searchLimit {
		resp = resp[:searchLimit]
	}

	places := make([]Place, 0, len(resp))
	for _, r := range resp {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		places = append(places, Place{
			Name: countrySuffix.ReplaceAllString(r.DisplayName, ""),
			Lat:  lat,
			Lng:  lng,
		})
	}
	return places, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
