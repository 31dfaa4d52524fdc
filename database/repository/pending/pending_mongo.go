package pendingRepo

import (
	"context"
	"errors"
	"fmt"

	"wetopinie/database"
	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPendingRepo implements PendingRepository using MongoDB.
type MongoPendingRepo struct {
	clinics *mongo.Collection
	edits   *mongo.Collection
	reviews *mongo.Collection
}

// NewMongoPendingRepo creates a new instance of PendingRepository using MongoDB.
func NewMongoPendingRepo() PendingRepository {
	return &MongoPendingRepo{
		clinics: database.Collection(models.KindNewClinic.Collection()),
		edits:   database.Collection(models.KindEdit.Collection()),
		reviews: database.Collection(models.KindReview.Collection()),
	}
}

func (r *MongoPendingRepo) ListClinics(ctx context.Context) ([]models.PendingClinic, error) {
	cursor, err := r.clinics.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending clinics: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.PendingClinic
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode pending clinics: %w", err)
	}
	return items, nil
}

func (r *MongoPendingRepo) ListEdits(ctx context.Context) ([]models.PendingEdit, error) {
	cursor, err := r.edits.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending edits: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.PendingEdit
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode pending edits: %w", err)
	}
	return items, nil
}

func (r *MongoPendingRepo) ListReviews(ctx context.Context) ([]models.PendingReview, error) {
	cursor, err := r.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.PendingReview
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode pending reviews: %w", err)
	}
	return items, nil
}

func (r *MongoPendingRepo) GetClinic(ctx context.Context, id string) (*models.PendingClinic, error) {
	var item models.PendingClinic
	if err := r.clinics.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: pending clinic %s", ErrNoPendingItem, id)
		}
		return nil, fmt.Errorf("failed to fetch pending clinic %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoPendingRepo) GetEdit(ctx context.Context, id string) (*models.PendingEdit, error) {
	var item models.PendingEdit
	if err := r.edits.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: pending edit %s", ErrNoPendingItem, id)
		}
		return nil, fmt.Errorf("failed to fetch pending edit %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoPendingRepo) GetReview(ctx context.Context, id string) (*models.PendingReview, error) {
	var item models.PendingReview
	if err := r.reviews.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: pending review %s", ErrNoPendingItem, id)
		}
		return nil, fmt.Errorf("failed to fetch pending review %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoPendingRepo) CreateClinic(ctx context.Context, item *models.PendingClinic) error {
	if _, err := r.clinics.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create pending clinic: %w", err)
	}
	return nil
}

func (r *MongoPendingRepo) CreateEdit(ctx context.Context, item *models.PendingEdit) error {
	if _, err := r.edits.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create pending edit: %w", err)
	}
	return nil
}

func (r *MongoPendingRepo) CreateReview(ctx context.Context, item *models.PendingReview) error {
	if _, err := r.reviews.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create pending review: %w", err)
	}
	return nil
}

func (r *MongoPendingRepo) Delete(ctx context.Context, kind models.SubmissionKind, id string) error {
	coll, err := r.collectionFor(kind)
	if err != nil {
		return err
	}
	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pending item %s from %s: %w", id, kind, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s in %s", ErrNoPendingItem, id, kind)
	}
	return nil
}

func (r *MongoPendingRepo) collectionFor(kind models.SubmissionKind) (*mongo.Collection, error) {
	switch kind {
	case models.KindNewClinic:
		return r.clinics, nil
	case models.KindEdit:
		return r.edits, nil
	case models.KindReview:
		return r.reviews, nil
	}
	return nil, fmt.Errorf("unknown submission kind %q", kind)
}
