package moderationRepo

import (
	"context"
	"fmt"

	"wetopinie/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertReview fans one approved review out to the clinic-scoped and flat
// collections under the same id inside a single transaction. Either both
// copies land or neither does. ReplaceOne-with-upsert keeps the write
// idempotent when a crashed approval is retried.
func (r *MongoModerationRepo) UpsertReview(ctx context.Context, review *models.Review) error {
	client := r.reviews.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"id": review.ID, "clinicId": review.ClinicID}

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.clinicReviews.ReplaceOne(sc, filter, review, opts); err != nil {
			return fmt.Errorf("clinic-scoped review write failed: %w", err)
		}
		if _, err := r.reviews.ReplaceOne(sc, filter, review, opts); err != nil {
			return fmt.Errorf("flat review write failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("review fan-out transaction failed: %w", err)
	}

	return nil
}
