package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"wetopinie/config"
	clinicRepo "wetopinie/database/repository/clinic"
	reviewRepo "wetopinie/database/repository/review"
)

const TypeReviewRecount = "reviews:recount"

// InitRecountWorker runs the async worker in background and schedules the
// periodic review-count reconciliation task. The counter on each clinic is
// denormalized; approvals bump it out of band, so a periodic full recount
// keeps it honest.
func InitRecountWorker(clinics clinicRepo.ClinicRepository, reviews reviewRepo.ReviewRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReviewRecount, handleRecountTask(clinics, reviews))

	go scheduleRecounts(redisOpts)

	go func() {
		log.Println("[RecountWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RecountWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RecountWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// scheduleRecounts enqueues the recount task on a fixed interval.
func scheduleRecounts(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.ReviewRecountMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		task := asynq.NewTask(TypeReviewRecount, nil)
		if _, err := client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(2*time.Minute)); err != nil {
			zap.L().Warn("Failed to enqueue recount task", zap.Error(err))
		}
	}
}

func handleRecountTask(clinics clinicRepo.ClinicRepository, reviews reviewRepo.ReviewRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := zap.L()

		counts, err := reviews.CountByClinic(ctx)
		if err != nil {
			logger.Error("Review recount failed", zap.Error(err))
			return err
		}

		all, err := clinics.GetAll(ctx)
		if err != nil {
			logger.Error("Review recount failed to load clinics", zap.Error(err))
			return err
		}

		updated := 0
		for _, clinic := range all {
			count := counts[clinic.ID]
			if count == clinic.ReviewsCount {
				continue
			}
			if err := clinics.SetReviewsCount(ctx, clinic.ID, count); err != nil {
				logger.Warn("Failed to update review count",
					zap.String("clinicId", clinic.ID), zap.Error(err))
				continue
			}
			updated++
		}

		logger.Info("Review recount finished",
			zap.Int("clinics", len(all)), zap.Int("updated", updated))
		return nil
	}
}
