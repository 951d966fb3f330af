// Package geo resolves great-circle distances between named places using
// the OpenStreetMap Nominatim geocoder.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

var ErrPlaceNotFound = errors.New("place not found")

// NominatimResolver geocodes place names and computes the distance
// between them in whole kilometers.
type NominatimResolver struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimResolver(baseURL, userAgent string, timeout time.Duration) *NominatimResolver {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NominatimResolver{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type point struct {
	lat, lon float64
}

// DistanceKM geocodes both places and returns the great-circle distance
// between them, truncated to whole kilometers.
func (r *NominatimResolver) DistanceKM(ctx context.Context, from, to string) (int, error) {
	const op = "geo.NominatimResolver.DistanceKM"

	a, err := r.geocode(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", op, from, err)
	}
	b, err := r.geocode(ctx, to)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", op, to, err)
	}

	return int(haversineKM(a, b)), nil
}

func (r *NominatimResolver) geocode(ctx context.Context, place string) (point, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return point{}, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return point{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return point{}, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return point{}, err
	}
	if len(results) == 0 {
		return point{}, ErrPlaceNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return point{}, err
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return point{}, err
	}
	return point{lat: lat, lon: lon}, nil
}

const earthRadiusKM = 6371.0

func haversineKM(a, b point) float64 {
	lat1 := a.lat * math.Pi / 180
	lat2 := b.lat * math.Pi / 180
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKM * math.Asin(math.Sqrt(h))
}
