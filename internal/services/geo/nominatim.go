// Package geo resolves free-form place names to coordinates through the
// OpenStreetMap Nominatim API, with an optional Redis-backed cache in front.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vigil/internal/models"
)

const (
	// DefaultBaseURL is the public Nominatim endpoint. Self-hosted
	// deployments override it with NOMINATIM_BASE_URL.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// userAgent identifies the service, required by the Nominatim usage
	// policy.
	userAgent = "vigil-fraud-api/1.0"

	requestTimeout = 10 * time.Second
)

// NominatimResolver geocodes place names with the Nominatim search API.
type NominatimResolver struct {
	baseURL string
	client  *http.Client
}

func NewNominatimResolver(baseURL string) *NominatimResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NominatimResolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the best-ranked coordinate for a place name. A place
// Nominatim does not know yields ErrPlaceNotFound.
func (r *NominatimResolver) Resolve(ctx context.Context, place string) (*models.Coordinate, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return nil, ErrPlaceNotFound
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.baseURL, url.QueryEscape(place))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(places) == 0 {
		return nil, ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", places[0].Lon, err)
	}

	return &models.Coordinate{Latitude: lat, Longitude: lon}, nil
}
