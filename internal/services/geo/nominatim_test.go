package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominatimResolver_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Chennai Central", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"13.0836939","lon":"80.270186","display_name":"Chennai, India"}]`))
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL)

	coord, err := resolver.Resolve(context.Background(), "Chennai Central")

	assert.NoError(t, err)
	assert.InDelta(t, 13.0836939, coord.Latitude, 1e-9)
	assert.InDelta(t, 80.270186, coord.Longitude, 1e-9)
}

func TestNominatimResolver_PlaceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL)

	coord, err := resolver.Resolve(context.Background(), "Atlantis")

	assert.Nil(t, coord)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestNominatimResolver_EmptyPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty place name")
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL)

	coord, err := resolver.Resolve(context.Background(), "   ")

	assert.Nil(t, coord)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestNominatimResolver_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL)

	coord, err := resolver.Resolve(context.Background(), "Chennai")

	assert.Nil(t, coord)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlaceNotFound)
}

func TestNominatimResolver_MalformedCoordinate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"not-a-number","lon":"80.270186"}]`))
	}))
	defer server.Close()

	resolver := NewNominatimResolver(server.URL)

	coord, err := resolver.Resolve(context.Background(), "Chennai")

	assert.Nil(t, coord)
	assert.Error(t, err)
}
