//go:build unit

package campsite_test

import (
	"strings"
	"testing"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CampsiteBuilder)
	errIs  error
}

func TestCampsite(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCampsiteBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, campsite.DefaultPhoto, actual.Photo())
		assert.Nil(t, actual.AverageRating())
		assert.Nil(t, actual.AverageCost())
		// formatted address falls back to the raw address
		assert.Equal(t, actual.Address(), actual.Location().FormattedAddress)
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "maximum length",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Name = strings.Repeat("n", campsite.MaxNameLength) },
			},
			{
				name:   "too long",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Name = strings.Repeat("n", campsite.MaxNameLength+1) },
				errIs:  campsite.ErrNameTooLong,
			},
			{
				name:   "blank",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Name = " " },
				errIs:  campsite.ErrEmptyName,
			},
		})
	})

	t.Run("description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "too long",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Description = strings.Repeat("d", campsite.MaxDescriptionLength+1) },
				errIs:  campsite.ErrDescriptionTooLong,
			},
			{
				name:   "missing",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Description = "" },
				errIs:  campsite.ErrEmptyDescription,
			},
		})
	})

	t.Run("location validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "latitude out of range",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Latitude = 91 },
				errIs:  campsite.ErrInvalidCoordinates,
			},
			{
				name:   "longitude out of range",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Longitude = -181 },
				errIs:  campsite.ErrInvalidCoordinates,
			},
			{
				name:   "missing address",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Address = "" },
				errIs:  campsite.ErrEmptyAddress,
			},
		})
	})

	t.Run("facility validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "duplicates collapse",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Facilities = []string{"WiFi", "WiFi", "Pool"} },
			},
			{
				name:   "unknown facility",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Facilities = []string{"Helipad"} },
				errIs:  campsite.ErrUnknownFacility,
			},
			{
				name:   "none",
				mutate: func(b *builder.CampsiteBuilder) { b.Draft.Facilities = nil },
				errIs:  campsite.ErrNoFacilities,
			},
		})

		f, err := campsite.NewFacilities([]string{"WiFi", "WiFi", "Pool"})
		require.NoError(t, err)
		assert.Equal(t, []campsite.Facility{campsite.FacilityWiFi, campsite.FacilityPool}, f)
	})

	t.Run("cost validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative cost",
				mutate: func(b *builder.CampsiteBuilder) { b.WithAverageCost(-1) },
				errIs:  campsite.ErrNegativeCost,
			},
			{
				name:   "cost above cap",
				mutate: func(b *builder.CampsiteBuilder) { b.WithAverageCost(campsite.MaxAverageCost + 0.01) },
				errIs:  campsite.ErrCostTooLarge,
			},
			{
				name:   "most expensive allowed",
				mutate: func(b *builder.CampsiteBuilder) { b.WithAverageCost(campsite.MaxAverageCost) },
			},
			{
				name:   "free site",
				mutate: func(b *builder.CampsiteBuilder) { b.WithAverageCost(0) },
			},
		})
	})

	t.Run("revise keeps identity and rating", func(t *testing.T) {
		rating := 4.5
		c := builder.NewCampsiteBuilder().WithAverageRating(rating).BuildReconstructed()
		createdAt := c.CreatedAt()

		d := c.Draft()
		d.Name = "Renamed Meadow"
		later := createdAt.Add(24 * time.Hour)
		require.NoError(t, c.Revise(d, later))

		assert.Equal(t, "Renamed Meadow", c.Name().String())
		assert.Equal(t, createdAt, c.CreatedAt())
		assert.Equal(t, later, c.UpdatedAt())
		require.NotNil(t, c.AverageRating())
		assert.InDelta(t, 4.5, *c.AverageRating(), 1e-9)
	})

	t.Run("failed revise leaves the campsite intact", func(t *testing.T) {
		c := builder.NewCampsiteBuilder().BuildReconstructed()
		before := c.Name().String()

		d := c.Draft()
		d.Name = "ok"
		d.Latitude = 120
		require.ErrorIs(t, c.Revise(d, time.Now()), campsite.ErrInvalidCoordinates)
		assert.Equal(t, before, c.Name().String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCampsiteBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
