//go:build unit

package geo_test

import (
	"testing"

	"campfinder/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	paris := geo.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	london := geo.Coordinates{Latitude: 51.5074, Longitude: -0.1278}

	assert.InDelta(t, 343.5, geo.Distance(paris, london), 1.0)
	assert.InDelta(t, geo.Distance(paris, london), geo.Distance(london, paris), 1e-9)
	assert.Zero(t, geo.Distance(paris, paris))
}

func TestNewCoordinates(t *testing.T) {
	_, err := geo.NewCoordinates(90, 180)
	require.NoError(t, err)

	_, err = geo.NewCoordinates(90.1, 0)
	require.ErrorIs(t, err, geo.ErrInvalidCoordinates)

	_, err = geo.NewCoordinates(0, -180.5)
	require.ErrorIs(t, err, geo.ErrInvalidCoordinates)
}

// =============================================================================
// Permission evaluation
// =============================================================================

var (
	rules = geo.RuleBook{
		Countries: map[string]string{
			"Sweden":  "Allowed under the right to roam.",
			"Germany": "Wild camping is generally prohibited.",
		},
		Default: "Rules not available for this location.",
	}

	sites = []geo.KnownSite{
		{
			Name:        "Lake Siljan Shore",
			Country:     "Sweden",
			Description: "Open shoreline",
			PermitType:  "Right to Roam",
			Status:      geo.StatusPermitted,
			Point:       geo.Coordinates{Latitude: 60.85, Longitude: 14.75},
		},
		{
			Name:       "Black Forest Camp",
			Country:    "Germany",
			PermitType: "Designated Site",
			Status:     geo.StatusPermitted,
			Point:      geo.Coordinates{Latitude: 48.0, Longitude: 8.2},
		},
		{
			Name:       "Gorges du Verdon",
			Country:    "France",
			PermitType: "Designated Site",
			Status:     geo.StatusPermitted,
			Point:      geo.Coordinates{Latitude: 43.75, Longitude: 6.35},
		},
	}
)

func TestEvaluator(t *testing.T) {
	e := geo.NewEvaluator(sites, rules)

	t.Run("very close to a known site uses the site", func(t *testing.T) {
		a := e.Evaluate(geo.Coordinates{Latitude: 60.851, Longitude: 14.751})

		assert.Equal(t, geo.StatusPermitted, a.Status)
		assert.Equal(t, "Lake Siljan Shore", a.SiteName)
		assert.Equal(t, "Right to Roam", a.PermitType)
		require.NotNil(t, a.DistanceKm)
		assert.Less(t, *a.DistanceKm, 1.0)
	})

	t.Run("a few km away falls back to the country rule", func(t *testing.T) {
		// roughly 5 km from the Black Forest site
		a := e.Evaluate(geo.Coordinates{Latitude: 48.045, Longitude: 8.2})

		assert.Equal(t, geo.StatusProhibited, a.Status)
		assert.Equal(t, geo.PermitTypeCountry, a.PermitType)
		assert.Equal(t, "Germany", a.Country)
		assert.Equal(t, "Wild camping is generally prohibited.", a.Description)
		assert.Empty(t, a.SiteName)
		assert.Nil(t, a.DistanceKm)
	})

	t.Run("France is tolerated with the default text", func(t *testing.T) {
		a := e.Evaluate(geo.Coordinates{Latitude: 44.2, Longitude: 6.35})

		assert.Equal(t, geo.StatusTolerated, a.Status)
		assert.Nil(t, a.Status.IsPermitted())
		assert.Equal(t, rules.Default, a.Description)
	})

	t.Run("nothing within 200 km is unknown", func(t *testing.T) {
		a := e.Evaluate(geo.Coordinates{Latitude: 0, Longitude: 0})

		assert.Equal(t, geo.StatusUnknown, a.Status)
		assert.Equal(t, geo.PermitTypeUnknown, a.PermitType)
		assert.Equal(t, geo.UnknownCountry, a.Country)
	})
}

func TestCountryStatus(t *testing.T) {
	cases := map[string]geo.Status{
		"Sweden":      geo.StatusPermitted,
		"Norway":      geo.StatusPermitted,
		"Scotland":    geo.StatusPermitted,
		"France":      geo.StatusTolerated,
		"Spain":       geo.StatusProhibited,
		"Netherlands": geo.StatusProhibited,
	}
	for country, want := range cases {
		t.Run(country, func(t *testing.T) {
			assert.Equal(t, want, geo.CountryStatus(country))
		})
	}

	require.NotNil(t, geo.StatusPermitted.IsPermitted())
	assert.True(t, *geo.StatusPermitted.IsPermitted())
	assert.False(t, *geo.StatusProhibited.IsPermitted())
	assert.Nil(t, geo.StatusUnknown.IsPermitted())
}
