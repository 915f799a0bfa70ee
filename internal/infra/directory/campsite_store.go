package directory

import (
	"context"
	"regexp"
	"strings"
	"time"

	"campfinder/internal/domain/campsite"
	"campfinder/internal/domain/geo"
	"campfinder/internal/infra"
	"campfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "campsites"

	// $centerSphere takes radians; MongoDB documents 6378.1 km as the equatorial radius.
	mongoEarthRadiusKm = 6378.1
	defaultPageSize    = 25
	maxPageSize        = 100
)

type CampsiteStore struct {
	coll *mongo.Collection
}

func NewCampsiteStore(db *mongo.Database) *CampsiteStore {
	return &CampsiteStore{coll: db.Collection(CollectionName)}
}

func (s *CampsiteStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := s.coll.Indexes().CreateMany(ctx, models); err != nil {
		return infra.WrapRepoErr("failed to create campsite indexes", err)
	}
	return nil
}

func (s *CampsiteStore) Insert(ctx context.Context, c *campsite.Campsite) error {
	if _, err := s.coll.InsertOne(ctx, toDocument(c)); err != nil {
		return infra.WrapRepoErr("failed to insert campsite", err)
	}
	return nil
}

func (s *CampsiteStore) Update(ctx context.Context, c *campsite.Campsite) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": c.ID().String()}, toDocument(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update campsite", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("campsite not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *CampsiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to delete campsite", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("campsite not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *CampsiteStore) FindByID(ctx context.Context, id uuid.UUID) (*campsite.Campsite, error) {
	var doc campsiteDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find campsite", err)
	}
	c, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt campsite document", err, infra.KindDBFailure)
	}
	return c, nil
}

// FindByIDs returns the campsites that exist; missing ids are simply absent.
func (s *CampsiteStore) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*campsite.Campsite, error) {
	out := make(map[uuid.UUID]*campsite.Campsite, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	list, err := s.find(ctx, bson.M{"_id": bson.M{"$in": keys}}, options.Find())
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		out[c.ID()] = c
	}
	return out, nil
}

func (s *CampsiteStore) List(ctx context.Context, f shared.CampsiteFilter) ([]*campsite.Campsite, int64, error) {
	filter := listFilter(f)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count campsites", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	page := max(f.Page, 1)

	opts := options.Find().
		SetSort(sortSpec(f.Sort)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	list, err := s.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Nearby returns campsites ordered by distance, closest first.
func (s *CampsiteStore) Nearby(ctx context.Context, at geo.Coordinates, radiusKm float64, limit int) ([]*campsite.Campsite, error) {
	filter := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{at.Longitude, at.Latitude},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return s.find(ctx, filter, opts)
}

func (s *CampsiteStore) Within(ctx context.Context, at geo.Coordinates, radiusKm float64) ([]*campsite.Campsite, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{at.Longitude, at.Latitude},
					radiusKm / mongoEarthRadiusKm,
				},
			},
		},
	}
	return s.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// SetAverageRating stores the rating, or removes it when rating is nil.
func (s *CampsiteStore) SetAverageRating(ctx context.Context, id uuid.UUID, rating *float64) error {
	update := bson.M{"$unset": bson.M{"average_rating": ""}}
	if rating != nil {
		update = bson.M{"$set": bson.M{"average_rating": *rating}}
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return infra.WrapRepoErr("failed to update campsite rating", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("campsite not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *CampsiteStore) find(ctx context.Context, filter any, opts *options.FindOptions) ([]*campsite.Campsite, error) {
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query campsites", err)
	}
	defer cursor.Close(ctx)

	var out []*campsite.Campsite
	for cursor.Next(ctx) {
		var doc campsiteDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode campsite", err)
		}
		c, err := doc.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt campsite document", err, infra.KindDBFailure)
		}
		out = append(out, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, infra.WrapRepoErr("campsite cursor error", err)
	}
	return out, nil
}

func listFilter(f shared.CampsiteFilter) bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Name), "$options": "i"}
	}
	if len(f.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": f.Facilities}
	}
	if f.MaxCost != nil {
		filter["average_cost"] = bson.M{"$lte": *f.MaxCost}
	}
	if f.MinRating != nil {
		filter["average_rating"] = bson.M{"$gte": *f.MinRating}
	}
	if f.Country != "" {
		filter["place.country"] = f.Country
	}
	if f.OwnerID != nil {
		filter["owner_id"] = f.OwnerID.String()
	}
	return filter
}

var sortFields = map[string]string{
	"name":          "name",
	"createdAt":     "created_at",
	"averageCost":   "average_cost",
	"averageRating": "average_rating",
}

// sortSpec accepts a field name with an optional leading "-" for descending order.
func sortSpec(s string) bson.D {
	field, dir := strings.TrimPrefix(s, "-"), 1
	if strings.HasPrefix(s, "-") {
		dir = -1
	}
	col, ok := sortFields[field]
	if !ok {
		return bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: col, Value: dir}, {Key: "_id", Value: 1}}
}
