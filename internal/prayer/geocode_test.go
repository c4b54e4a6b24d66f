package prayer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseGeocode_City(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id", r.URL.Query().Get("localityLanguage"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city": "Jakarta Selatan", "locality": "Kebayoran Baru"}`))
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)
	assert.Equal(t, "Jakarta Selatan", g.ReverseGeocode(context.Background(), DefaultLocation))
}

func TestReverseGeocode_LocalityFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city": "", "locality": "Kebayoran Baru"}`))
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)
	assert.Equal(t, "Kebayoran Baru", g.ReverseGeocode(context.Background(), DefaultLocation))
}

func TestReverseGeocode_NeverErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := NewGeocoder(server.URL)
	assert.Equal(t, FallbackCityLabel, g.ReverseGeocode(context.Background(), DefaultLocation))

	// Unreachable server degrades the same way.
	server.Close()
	assert.Equal(t, FallbackCityLabel, g.ReverseGeocode(context.Background(), DefaultLocation))
}
