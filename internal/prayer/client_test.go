package prayer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTimings_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NotEmpty(t, r.URL.Query().Get("latitude"))
		assert.NotEmpty(t, r.URL.Query().Get("longitude"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {
				"timings": {
					"Fajr": "04:41",
					"Sunrise": "05:57",
					"Dhuhr": "12:04",
					"Asr": "15:09",
					"Maghrib": "18:07",
					"Isha": "19:15"
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	date := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	timings, err := client.FetchTimings(context.Background(), date, DefaultLocation)
	require.NoError(t, err)

	assert.Equal(t, "/timings/11-03-2024", gotPath)
	assert.Equal(t, "04:41", timings.Fajr)
	assert.Equal(t, "18:07", timings.Maghrib)
}

func TestFetchTimings_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchTimings(context.Background(), time.Now(), DefaultLocation)
	assert.Error(t, err)
}

func TestFetchTimings_APIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 400, "status": "Bad Request", "data": {"timings": {}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchTimings(context.Background(), time.Now(), DefaultLocation)
	assert.Error(t, err)
}

func TestFetchTimings_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchTimings(context.Background(), time.Now(), DefaultLocation)
	assert.Error(t, err)
}
