package clinicRepo

import (
	"context"
	"fmt"

	"wetopinie/database"
	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClinicRepo implements ClinicRepository using MongoDB.
type MongoClinicRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicRepo creates a new instance of ClinicRepository using MongoDB.
func NewMongoClinicRepo() ClinicRepository {
	return &MongoClinicRepo{coll: database.Collection(database.CollClinics)}
}

func (r *MongoClinicRepo) GetAll(ctx context.Context) ([]models.Clinic, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clinics: %w", err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode clinic: %w", err)
		}
		clinics = append(clinics, NormalizeDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return clinics, nil
}

func (r *MongoClinicRepo) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	var raw bson.M
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to fetch clinic with id %s: %w", id, err)
	}
	clinic := NormalizeDocument(raw)
	return &clinic, nil
}

func (r *MongoClinicRepo) Create(ctx context.Context, clinic *models.Clinic) error {
	if _, err := r.coll.InsertOne(ctx, clinic); err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *MongoClinicRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	update := bson.M{"$set": bson.M(fields)}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to merge clinic with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("clinic with id %s not found", id)
	}
	return nil
}

func (r *MongoClinicRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete clinic with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("clinic with id %s not found", id)
	}
	return nil
}

func (r *MongoClinicRepo) SetReviewsCount(ctx context.Context, id string, count int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"reviewsCount": count}})
	if err != nil {
		return fmt.Errorf("failed to set reviews count for clinic %s: %w", id, err)
	}
	return nil
}
