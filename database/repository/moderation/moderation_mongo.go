package moderationRepo

import (
	"context"
	"fmt"

	"wetopinie/database"
	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoModerationRepo implements Repository using MongoDB.
type MongoModerationRepo struct {
	clinics       *mongo.Collection
	clinicReviews *mongo.Collection
	reviews       *mongo.Collection
	log           *mongo.Collection
}

// NewMongoModerationRepo creates a new instance of Repository using MongoDB.
func NewMongoModerationRepo() Repository {
	return &MongoModerationRepo{
		clinics:       database.Collection(database.CollClinics),
		clinicReviews: database.Collection(database.CollClinicReviews),
		reviews:       database.Collection(database.CollReviews),
		log:           database.Collection(database.CollModerationLog),
	}
}

func (r *MongoModerationRepo) UpsertClinic(ctx context.Context, clinic *models.Clinic) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.clinics.ReplaceOne(ctx, bson.M{"id": clinic.ID}, clinic, opts); err != nil {
		return fmt.Errorf("failed to write approved clinic %s: %w", clinic.ID, err)
	}
	return nil
}

func (r *MongoModerationRepo) MergeClinic(ctx context.Context, clinicID string, fields map[string]any) error {
	result, err := r.clinics.UpdateOne(ctx, bson.M{"id": clinicID}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("failed to merge approved edit onto clinic %s: %w", clinicID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("clinic %s not found for approved edit", clinicID)
	}
	return nil
}

func (r *MongoModerationRepo) AppendLog(ctx context.Context, entry *models.AuditEntry) error {
	if _, err := r.log.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append moderation log entry: %w", err)
	}
	return nil
}

func (r *MongoModerationRepo) ListLog(ctx context.Context) ([]models.AuditEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.log.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderation log: %w", err)
	}
	defer cursor.Close(ctx)
	var entries []models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode moderation log: %w", err)
	}
	return entries, nil
}
