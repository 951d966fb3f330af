package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKM(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		switch r.URL.Query().Get("q") {
		case "Kyiv, Ukraine":
			w.Write([]byte(`[{"lat":"50.4501","lon":"30.5234"}]`))
		case "Warsaw, Poland":
			w.Write([]byte(`[{"lat":"52.2297","lon":"21.0122"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	r := NewNominatimResolver(srv.URL, "skyport-test", time.Second)

	km, err := r.DistanceKM(context.Background(), "Kyiv, Ukraine", "Warsaw, Poland")
	require.NoError(t, err)
	// Great-circle Kyiv-Warsaw is roughly 690 km.
	assert.InDelta(t, 690, km, 15)
	assert.EqualValues(t, 2, atomic.LoadInt64(&calls))
}

func TestDistanceKMPlaceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	r := NewNominatimResolver(srv.URL, "skyport-test", time.Second)

	_, err := r.DistanceKM(context.Background(), "Nowhere", "Atlantis")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestDistanceKMGeocoderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewNominatimResolver(srv.URL, "skyport-test", time.Second)

	_, err := r.DistanceKM(context.Background(), "Kyiv, Ukraine", "Warsaw, Poland")
	assert.Error(t, err)
}

func TestHaversineZeroDistance(t *testing.T) {
	p := point{lat: 50.4501, lon: 30.5234}
	assert.InDelta(t, 0, haversineKM(p, p), 0.001)
}
