package geocoder

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/jfertaj/t1d-centers-app/schema"
)

const (
	logPrefix      = "geocoder"
	defaultTimeout = 5 * time.Second
)

// ErrNoResults indicates the service returned no candidate at all for the
// queried address.
var ErrNoResults = errors.New("no geocoding results")

// Result is one geocoding outcome. Partial marks an ambiguous match which
// the center registry treats as a blocking failure.
type Result struct {
	Partial          bool
	FormattedAddress string
	Location         schema.Location
}

// Geocoder - interface to resolve free-text addresses into coordinates
type Geocoder interface {
	Search(address string) (*Result, error)
}

type googleGeocoder struct {
	client *maps.Client
}

func (g googleGeocoder) Search(address string) (*Result, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geocoding")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	top := results[0]
	return &Result{
		Partial:          top.PartialMatch,
		FormattedAddress: top.FormattedAddress,
		Location: schema.Location{
			Latitude:  top.Geometry.Location.Lat,
			Longitude: top.Geometry.Location.Lng,
		},
	}, nil
}

// New - new Geocoder backed by the Google Maps geocoding API
func New(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &googleGeocoder{
		client: client,
	}, nil
}

// JoinParts assembles the free-text geocoding query from address pieces,
// dropping the empty ones.
func JoinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}
