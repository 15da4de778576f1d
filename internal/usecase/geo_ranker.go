package usecase

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula
	EarthRadiusKm = 6371.0

	// DefaultMaxStores is how many stores are listed per product
	DefaultMaxStores = 5
)

// HaversineDistance returns the great-circle distance in kilometers between two points.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// storeKey identifies a store across products
type storeKey struct {
	name    string
	address string
}

// distanceCache memoizes user-to-store distances for a single Rank call.
// It must never outlive the call: keys are not qualified by user.
type distanceCache map[storeKey]float64

// rankedStore is a store with its distance from the user
type rankedStore struct {
	store    domain.Store
	distance float64
}

// GeoRanker renders, for each product, its nearest stores to the user.
type GeoRanker struct {
	maxStores int
	distance  func(lat1, lon1, lat2, lon2 float64) float64
	logger    zerolog.Logger
}

// NewGeoRanker creates a ranker listing at most maxStores stores per product.
// A non-positive maxStores falls back to DefaultMaxStores.
func NewGeoRanker(maxStores int, logger zerolog.Logger) *GeoRanker {
	if maxStores <= 0 {
		maxStores = DefaultMaxStores
	}
	return &GeoRanker{
		maxStores: maxStores,
		distance:  HaversineDistance,
		logger:    logger.With().Str("component", "geo_ranker").Logger(),
	}
}

// Rank builds the stores block: one line per Product record, in input order.
// A nil origin means no distance can be computed, so every product gets the
// no-data line.
func (g *GeoRanker) Rank(records []domain.GraphRecord, origin *domain.GeoPoint) string {
	cache := make(distanceCache)
	var lines []string

	for _, record := range records {
		if record.Kind != domain.KindProduct {
			continue
		}
		lines = append(lines, g.productLine(record, origin, cache))
	}

	return strings.Join(lines, "\n")
}

func (g *GeoRanker) productLine(product domain.GraphRecord, origin *domain.GeoPoint, cache distanceCache) string {
	title := product.Title
	if title == "" {
		title = "Unknown Product"
	}

	ranked := g.rankStores(product, origin, cache)

	var line string
	if len(ranked) == 0 {
		line = fmt.Sprintf("graph_context: Product: %s | No store with geo-data.", title)
	} else {
		fragments := make([]string, len(ranked))
		for i, rs := range ranked {
			fragments[i] = fmt.Sprintf("%d. Store: %s | Address: %s | Distance: %.2f km",
				i+1, rs.store.Name, rs.store.Address, rs.distance)
		}
		line = fmt.Sprintf("graph_context: Product: %s | %s", title, strings.Join(fragments, " | "))
	}

	if product.AmazonLink != "" {
		line += " | Amazon Link: " + product.AmazonLink
	}
	return line
}

// rankStores returns the product's geo-valid stores, nearest first, truncated
// to maxStores. Stores without usable coordinates are skipped.
func (g *GeoRanker) rankStores(product domain.GraphRecord, origin *domain.GeoPoint, cache distanceCache) []rankedStore {
	if origin == nil {
		return nil
	}

	ranked := make([]rankedStore, 0, len(product.Stores))
	for _, s := range product.Stores {
		lat, lon, ok := storeCoordinates(s)
		if !ok {
			g.logger.Debug().Str("product", product.Title).Str("store", s.Name).Msg("skipping store without geo-data")
			continue
		}

		key := storeKey{name: s.Name, address: s.Address}
		dist, cached := cache[key]
		if !cached {
			dist = g.distance(origin.Latitude, origin.Longitude, lat, lon)
			cache[key] = dist
		}
		ranked = append(ranked, rankedStore{store: s, distance: dist})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	if len(ranked) > g.maxStores {
		ranked = ranked[:g.maxStores]
	}
	return ranked
}

func storeCoordinates(s domain.Store) (float64, float64, bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return 0, 0, false
	}
	lat, lon := *s.Latitude, *s.Longitude
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return 0, 0, false
	}
	return lat, lon, true
}
