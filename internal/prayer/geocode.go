package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FallbackCityLabel is shown when reverse geocoding fails. Display only.
const FallbackCityLabel = "Lokasi Tersimpan"

// Geocoder resolves a coordinate into a human-readable locality name.
// Used purely for display labeling, never for calculation.
type Geocoder struct {
	httpClient *http.Client
	// BaseURL is exported for tests with httptest.
	BaseURL string
}

// NewGeocoder creates a reverse-geocoding client.
func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		BaseURL:    baseURL,
	}
}

type geocodeResponse struct {
	City     string `json:"city"`
	Locality string `json:"locality"`
}

// ReverseGeocode returns the locality name for a coordinate. On any
// failure it returns the generic fallback label instead of an error: the
// label is cosmetic and must never block saving a location.
func (g *Geocoder) ReverseGeocode(ctx context.Context, loc Location) string {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", loc.Lat))
	params.Set("longitude", fmt.Sprintf("%f", loc.Lng))
	params.Set("localityLanguage", "id")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", g.BaseURL, params.Encode()), nil)
	if err != nil {
		return FallbackCityLabel
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return FallbackCityLabel
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackCityLabel
	}

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return FallbackCityLabel
	}

	if result.City != "" {
		return result.City
	}
	if result.Locality != "" {
		return result.Locality
	}
	return FallbackCityLabel
}
