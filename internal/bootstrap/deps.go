package bootstrap

import (
	"context"
	"time"

	"github.com/KhoaNam225/comssa-backend-workshop/adapter/out/mongodb"
	"github.com/KhoaNam225/comssa-backend-workshop/config"
	"github.com/KhoaNam225/comssa-backend-workshop/core/port/out"
	userservice "github.com/KhoaNam225/comssa-backend-workshop/core/service/user"
	"github.com/KhoaNam225/comssa-backend-workshop/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds every constructed component, threaded explicitly into
// the handlers instead of living in package-level state.
type Dependencies struct {
	Config  *config.Config
	MongoDB *mongo.Client

	// Repositories
	UserRepo out.UserRepository

	// Health
	HealthAdapter *mongodb.HealthAdapter

	// Services
	UserService *userservice.Service
}

// NewDependencies connects to MongoDB and wires the repository and service
// layers. The returned cleanup disconnects the client.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	client, err := mongodb.NewClient(cfg.MongoURI())
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to MongoDB database %q", cfg.MongoDatabase)

	db := client.Database(cfg.MongoDatabase)

	userRepo := mongodb.NewUserAdapter(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("Failed to ensure user indexes")
	}

	deps := &Dependencies{
		Config:        cfg,
		MongoDB:       client,
		UserRepo:      userRepo,
		HealthAdapter: mongodb.NewHealthAdapter(client),
		UserService:   userservice.NewService(userRepo),
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Error("Failed to disconnect MongoDB client")
		}
	}

	return deps, cleanup, nil
}
