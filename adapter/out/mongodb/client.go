// Package mongodb implements the MongoDB adapters for the application.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/KhoaNam225/comssa-backend-workshop/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewClient creates a new MongoDB client and verifies the connection.
func NewClient(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// HealthAdapter answers "is the store reachable" for the health endpoint.
type HealthAdapter struct {
	client *mongo.Client
}

func NewHealthAdapter(client *mongo.Client) *HealthAdapter {
	return &HealthAdapter{client: client}
}

// Probe issues a lightweight ping against the store. It never propagates the
// underlying error: a communication failure is logged and reported as false.
func (a *HealthAdapter) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx, nil); err != nil {
		logger.WithError(err).Warn("Database ping failed")
		return false
	}
	return true
}
