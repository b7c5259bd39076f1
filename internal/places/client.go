// Package places looks up nearby points of interest through the Geoapify
// Places API and converts them into schedulable activities.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Errors returned by the client.
var (
	ErrMissingAPIKey = errors.New("geoapify api key not configured")
	ErrRequestFailed = errors.New("places request failed")
)

const (
	defaultBaseURL = "https://api.geoapify.com"
	defaultRadiusM = 5000
	maxResults     = 20
	// Rough meters-per-degree at the equator, good enough for a
	// neighborhood-scale bounding box.
	metersPerDegree = 111320.0
)

// Place is one point of interest returned by a nearby search.
type Place struct {
	ID         string
	Name       string
	Address    string
	Categories []string
	Lat        float64
	Lng        float64
	Phone      string
	Website    string
	OpenHours  string
	DistanceKm float64
}

// Client queries the Geoapify Places and Geocoding APIs.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Geoapify client. The key is required for live calls
// and checked lazily so a keyless client can still be constructed.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// geoapify GeoJSON shapes, limited to the fields we read.
type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		Name         string   `json:"name"`
		Formatted    string   `json:"formatted"`
		AddressLine1 string   `json:"address_line1"`
		AddressLine2 string   `json:"address_line2"`
		City         string   `json:"city"`
		Postcode     string   `json:"postcode"`
		Country      string   `json:"country"`
		Categories   []string `json:"categories"`
		PlaceID      string   `json:"place_id"`
		OpeningHours string   `json:"opening_hours"`
		Phone        string   `json:"phone"`
		Website      string   `json:"website"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lng, lat]
	} `json:"geometry"`
}

// SearchNearby returns up to 20 places within radiusM meters of the given
// coordinates, nearest first. kinds filters by activity kind (see Kinds);
// an empty list searches a broad default category set.
func (c *Client) SearchNearby(ctx context.Context, lat, lng float64, radiusM int, kinds []Kind) ([]Place, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if radiusM <= 0 {
		radiusM = defaultRadiusM
	}

	categories := categoriesFor(kinds)

	// Geoapify filters by rectangle, so widen the radius into a bounding
	// box and trim by true distance afterwards.
	deg := float64(radiusM) / metersPerDegree
	rect := fmt.Sprintf("rect:%s,%s,%s,%s",
		formatCoord(lng-deg), formatCoord(lat-deg),
		formatCoord(lng+deg), formatCoord(lat+deg))

	q := url.Values{}
	q.Set("filter", rect)
	q.Set("categories", categories)
	q.Set("limit", "50")
	q.Set("apiKey", c.apiKey)

	var fc featureCollection
	if err := c.getJSON(ctx, "/v2/places?"+q.Encode(), &fc); err != nil {
		return nil, err
	}

	radiusKm := float64(radiusM) / 1000
	places := make([]Place, 0, len(fc.Features))
	for i, f := range fc.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		plng, plat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		dist := haversineKm(lat, lng, plat, plng)
		if dist > radiusKm {
			continue
		}

		id := f.Properties.PlaceID
		if id == "" {
			id = fmt.Sprintf("geoapify-%d-%d-%d",
				int(math.Round(plat*1000)), int(math.Round(plng*1000)), i)
		}
		name := f.Properties.Name
		if name == "" {
			name = "Unnamed Location"
		}

		places = append(places, Place{
			ID:         id,
			Name:       name,
			Address:    formatAddress(f),
			Categories: f.Properties.Categories,
			Lat:        plat,
			Lng:        plng,
			Phone:      f.Properties.Phone,
			Website:    f.Properties.Website,
			OpenHours:  f.Properties.OpeningHours,
			DistanceKm: dist,
		})
	}

	sort.Slice(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})
	if len(places) > maxResults {
		places = places[:maxResults]
	}
	return places, nil
}

// ReverseGeocode returns a human-readable address for the coordinates,
// falling back to "lat, lng" when the lookup yields nothing.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	fallback := fmt.Sprintf("%.4f, %.4f", lat, lng)
	if c.apiKey == "" {
		return fallback, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lng))
	q.Set("apiKey", c.apiKey)

	var fc featureCollection
	if err := c.getJSON(ctx, "/v1/geocode/reverse?"+q.Encode(), &fc); err != nil {
		return fallback, err
	}
	if len(fc.Features) == 0 || fc.Features[0].Properties.Formatted == "" {
		return fallback, nil
	}
	return fc.Features[0].Properties.Formatted, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAddress(f feature) string {
	if f.Properties.Formatted != "" {
		return f.Properties.Formatted
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{
		f.Properties.AddressLine1,
		f.Properties.AddressLine2,
		f.Properties.City,
		f.Properties.Postcode,
		f.Properties.Country,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Address not available"
	}
	addr := parts[0]
	for _, p := range parts[1:] {
		addr += ", " + p
	}
	return addr
}

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
