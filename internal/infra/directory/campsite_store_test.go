//go:build unit

package directory

import (
	"context"
	"testing"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/geo"
	"campfinder/internal/infra"
	"campfinder/internal/usecase/shared"
	"campfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "campfinder_test." + CollectionName

func docOf(t *testing.T, c *campsite.Campsite) bson.D {
	t.Helper()
	raw, err := bson.Marshal(toDocument(c))
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))
	return d
}

func okResponse(n int) bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: n}, {Key: "nModified", Value: n}}
}

// =============================================================================
// Document mapping
// =============================================================================

func TestDocumentRoundTrip(t *testing.T) {
	original := builder.NewCampsiteBuilder().WithAverageCost(25).WithAverageRating(4).BuildReconstructed()

	doc := toDocument(original)
	assert.Equal(t, []float64{original.Location().Point.Longitude(), original.Location().Point.Latitude()}, doc.Location.Coordinates)
	assert.Equal(t, "Point", doc.Location.Type)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, original.ID(), back.ID())
	assert.Equal(t, original.Name(), back.Name())
	assert.Equal(t, original.Facilities(), back.Facilities())
	assert.Equal(t, original.AverageCost(), back.AverageCost())
	assert.Equal(t, original.AverageRating(), back.AverageRating())
}

// =============================================================================
// CampsiteStore
// =============================================================================

func TestCampsiteStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock).DatabaseName("campfinder_test"))
	ctx := context.Background()

	mt.Run("FindByID returns the decoded campsite", func(mt *mtest.T) {
		c := builder.NewCampsiteBuilder().BuildReconstructed()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docOf(mt.T, c)))

		got, err := NewCampsiteStore(mt.DB).FindByID(ctx, c.ID())
		require.NoError(mt, err)
		assert.Equal(mt, c.ID(), got.ID())
		assert.Equal(mt, "Pine Hollow", got.Name().String())
	})

	mt.Run("FindByID maps no documents to not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewCampsiteStore(mt.DB).FindByID(ctx, uuid.New())
		require.Error(mt, err)
		assert.True(mt, infra.IsKind(err, infra.KindNotFound))
	})

	mt.Run("Insert maps duplicate names to duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := NewCampsiteStore(mt.DB).Insert(ctx, builder.NewCampsiteBuilder().BuildReconstructed())
		require.Error(mt, err)
		assert.True(mt, infra.IsKind(err, infra.KindDuplicateKey))
	})

	mt.Run("Delete of a missing campsite is not found", func(mt *mtest.T) {
		mt.AddMockResponses(okResponse(0))

		err := NewCampsiteStore(mt.DB).Delete(ctx, uuid.New())
		assert.True(mt, infra.IsKind(err, infra.KindNotFound))
	})

	mt.Run("Update succeeds when the campsite matches", func(mt *mtest.T) {
		mt.AddMockResponses(okResponse(1))

		err := NewCampsiteStore(mt.DB).Update(ctx, builder.NewCampsiteBuilder().BuildReconstructed())
		assert.NoError(mt, err)
	})

	mt.Run("SetAverageRating with nil unsets the field", func(mt *mtest.T) {
		mt.AddMockResponses(okResponse(1))

		err := NewCampsiteStore(mt.DB).SetAverageRating(ctx, uuid.New(), nil)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
		assert.Contains(mt, started.Command.String(), "$unset")
	})

	mt.Run("List returns the page and the total", func(mt *mtest.T) {
		a := builder.NewCampsiteBuilder().WithName("Alder Creek").BuildReconstructed()
		b := builder.NewCampsiteBuilder().WithName("Birch Point").BuildReconstructed()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docOf(mt.T, a), docOf(mt.T, b)),
		)

		list, total, err := NewCampsiteStore(mt.DB).List(ctx, shared.CampsiteFilter{Limit: 10})
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), total)
		require.Len(mt, list, 2)
		assert.Equal(mt, "Alder Creek", list[0].Name().String())
	})

	mt.Run("Within sends a centerSphere query in radians", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		at, err := geo.NewCoordinates(54.6, -3.1)
		require.NoError(mt, err)
		_, err = NewCampsiteStore(mt.DB).Within(ctx, at, 63.781)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Contains(mt, started.Command.String(), "$centerSphere")
	})

	mt.Run("FindByIDs with no ids skips the query", func(mt *mtest.T) {
		got, err := NewCampsiteStore(mt.DB).FindByIDs(ctx, nil)
		require.NoError(mt, err)
		assert.Empty(mt, got)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

// =============================================================================
// Filters
// =============================================================================

func TestListFilter(t *testing.T) {
	minRating := 3.5
	owner := uuid.New()

	got := listFilter(shared.CampsiteFilter{
		Name:       "pine (north)",
		Facilities: []string{"WiFi", "Pool"},
		MinRating:  &minRating,
		OwnerID:    &owner,
	})

	assert.Equal(t, bson.M{"$regex": `pine \(north\)`, "$options": "i"}, got["name"])
	assert.Equal(t, bson.M{"$all": []string{"WiFi", "Pool"}}, got["facilities"])
	assert.Equal(t, bson.M{"$gte": 3.5}, got["average_rating"])
	assert.Equal(t, owner.String(), got["owner_id"])
	assert.NotContains(t, got, "average_cost")
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "average_cost", Value: -1}, {Key: "_id", Value: 1}}, sortSpec("-averageCost"))
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}, sortSpec("name"))
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}, sortSpec("bogus"))
}
