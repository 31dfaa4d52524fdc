package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wetopinie/config"
	"wetopinie/database"
)

// HealthStatus is the latest reachability snapshot of the directory's
// dependencies. ClinicCount doubles as a data-level check: a reachable
// server with an empty clinics collection reports zero.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	Database     string    `json:"database"`
	ClinicCount  int64     `json:"clinicCount"` // -1 when unavailable
	Cache        bool      `json:"cache"`
	SessionCache bool      `json:"sessionCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// StartHealthMonitor performs periodic checks against mongo, the clinics
// collection and both redis clients, updating the in-memory snapshot served
// on /health.
func StartHealthMonitor(cache, sessionCache *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			setHealthStatus(probeHealth(context.Background(), cache, sessionCache, mongoClient))
		}
	}()
}

func probeHealth(ctx context.Context, cache, sessionCache *redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	status := HealthStatus{
		Database:    config.AppConfig.DatabaseName,
		ClinicCount: -1,
		CheckedAt:   time.Now(),
	}
	status.Cache = cache.Ping(ctx).Err() == nil
	status.SessionCache = sessionCache.Ping(ctx).Err() == nil
	status.Mongo = mongoClient.Ping(ctx, nil) == nil
	if status.Mongo {
		coll := mongoClient.Database(status.Database).Collection(database.CollClinics)
		if n, err := coll.CountDocuments(ctx, bson.M{}); err == nil {
			status.ClinicCount = n
		}
	}
	return status
}
