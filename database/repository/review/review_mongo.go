package reviewRepo

import (
	"context"
	"fmt"

	"wetopinie/database"
	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	scoped *mongo.Collection
	flat   *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{
		scoped: database.Collection(database.CollClinicReviews),
		flat:   database.Collection(database.CollReviews),
	}
}

func (r *MongoReviewRepo) ListByClinic(ctx context.Context, clinicID string) ([]models.Review, error) {
	return r.list(ctx, r.scoped, clinicID, models.ReviewSourceClinic)
}

func (r *MongoReviewRepo) ListGlobalByClinic(ctx context.Context, clinicID string) ([]models.Review, error) {
	return r.list(ctx, r.flat, clinicID, models.ReviewSourceGlobal)
}

func (r *MongoReviewRepo) list(ctx context.Context, coll *mongo.Collection, clinicID, source string) ([]models.Review, error) {
	cursor, err := coll.Find(ctx, bson.M{"clinicId": clinicID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for clinic %s: %w", clinicID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		rv.Source = source
		reviews = append(reviews, rv)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) CountByClinic(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$clinicId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.flat.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews per clinic: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int)
	for cursor.Next(ctx) {
		var row struct {
			ClinicID string `bson:"_id"`
			Count    int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode count row: %w", err)
		}
		if row.ClinicID != "" {
			counts[row.ClinicID] = row.Count
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return counts, nil
}
