// README: Google provider backed by the official maps client.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/DHARAV-9/EzySafar/internal/types"
)

type GoogleProvider struct {
	client *maps.Client
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

func (p *GoogleProvider) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	resp, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	places := make([]Place, 0, limit)
	for _, r := range resp {
		places = append(places, Place{
			DisplayName: r.FormattedAddress,
			Lat:         r.Geometry.Location.Lat,
			Lng:         r.Geometry.Location.Lng,
		})
		if len(places) >= limit {
			break
		}
	}
	return places, nil
}

func (p *GoogleProvider) Reverse(ctx context.Context, pt types.Point) (string, error) {
	resp, err := p.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: pt.Lat, Lng: pt.Lng},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("%w: no address at coordinates", ErrUpstream)
	}
	return resp[0].FormattedAddress, nil
}

func (p *GoogleProvider) RouteMeters(ctx context.Context, from, to types.Point) (float64, error) {
	resp, err := p.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%v,%v", from.Lat, from.Lng)},
		Destinations: []string{fmt.Sprintf("%v,%v", to.Lat, to.Lng)},
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: no route found", ErrUpstream)
	}
	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return 0, fmt.Errorf("%w: route status %s", ErrUpstream, elem.Status)
	}
	return float64(elem.Distance.Meters), nil
}
