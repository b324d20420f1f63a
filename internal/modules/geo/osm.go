// README: Default provider: Nominatim for search/reverse, OpenRouteService
// for driving distance.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

const osmUserAgent = "EzySafar/1.0"

type OSMProvider struct {
	client       *http.Client
	nominatimURL string
	openRouteURL string
	openRouteKey string
}

func NewOSMProvider(nominatimURL, openRouteURL, openRouteKey string, timeout time.Duration) *OSMProvider {
	return &OSMProvider{
		client:       &http.Client{Timeout: timeout},
		nominatimURL: nominatimURL,
		openRouteURL: openRouteURL,
		openRouteKey: openRouteKey,
	}
}

// Nominatim serializes coordinates as strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (p *OSMProvider) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))

	var results []nominatimResult
	if err := p.getJSON(ctx, p.nominatimURL+"/search?"+q.Encode(), nil, &results); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		places = append(places, Place{DisplayName: r.DisplayName, Lat: lat, Lng: lng})
	}
	return places, nil
}

func (p *OSMProvider) Reverse(ctx context.Context, pt types.Point) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(pt.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(pt.Lng, 'f', -1, 64))

	var result nominatimResult
	if err := p.getJSON(ctx, p.nominatimURL+"/reverse?"+q.Encode(), nil, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("%w: no address at coordinates", ErrUpstream)
	}
	return result.DisplayName, nil
}

type orsDirections struct {
	Features []struct {
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// RouteMeters asks OpenRouteService for the driving-car route and returns
// the first segment's distance in meters, as the original client did.
func (p *OSMProvider) RouteMeters(ctx context.Context, from, to types.Point) (float64, error) {
	q := url.Values{}
	q.Set("start", fmt.Sprintf("%v,%v", from.Lng, from.Lat))
	q.Set("end", fmt.Sprintf("%v,%v", to.Lng, to.Lat))

	headers := map[string]string{
		"Authorization": p.openRouteKey,
		"Accept":        "application/json, application/geo+json",
	}
	var resp orsDirections
	if err := p.getJSON(ctx, p.openRouteURL+"/v2/directions/driving-car?"+q.Encode(), headers, &resp); err != nil {
		return 0, err
	}
	if len(resp.Features) == 0 || len(resp.Features[0].Properties.Segments) == 0 {
		return 0, fmt.Errorf("%w: no route found", ErrUpstream)
	}
	return resp.Features[0].Properties.Segments[0].Distance, nil
}

func (p *OSMProvider) getJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", osmUserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
