package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/KhoaNam225/comssa-backend-workshop/core/domain"
	"github.com/KhoaNam225/comssa-backend-workshop/core/port/out"
	"github.com/KhoaNam225/comssa-backend-workshop/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionUsers = "users"

// UserAdapter implements out.UserRepository using MongoDB.
type UserAdapter struct {
	db         *mongo.Database
	collection *mongo.Collection
}

// NewUserAdapter creates a new MongoDB user adapter.
func NewUserAdapter(db *mongo.Database) *UserAdapter {
	return &UserAdapter{
		db:         db,
		collection: db.Collection(collectionUsers),
	}
}

// EnsureIndexes creates the indexes for the collection. The email index is
// non-unique on purpose: duplicate emails are permitted by the data model.
func (a *UserAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
	}

	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// userDocument represents the MongoDB document structure.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Age       int                `bson:"age"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Create inserts a new user document and re-reads it by the store-assigned
// id. A failed re-read right after a successful insert signals a store-level
// inconsistency and is returned as an error.
func (a *UserAdapter) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	doc := userDocument{
		Name:      req.Name,
		Email:     req.Email,
		Age:       req.Age,
		CreatedAt: time.Now().UTC(),
	}

	result, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	var inserted userDocument
	if err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&inserted); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("inserted user %s not found on re-read", id.Hex())
		}
		return nil, fmt.Errorf("failed to read back inserted user: %w", err)
	}

	return toUser(&inserted), nil
}

// GetByID looks up a user by its identifier. A malformed id is treated as
// not found, the same as a well-formed id that matches nothing.
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.WithField("id", id).Debug("Malformed user id treated as not found")
		return nil, nil
	}

	var doc userDocument
	if err := a.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(&doc), nil
}

// List returns every user in the collection in natural order.
func (a *UserAdapter) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := a.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]*domain.User, 0)
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, toUser(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Update applies a field-level merge of the provided fields and returns the
// freshly fetched record. An update that names no fields performs no write.
// No optimistic concurrency: concurrent updates are last-write-wins.
func (a *UserAdapter) Update(ctx context.Context, id string, req *domain.UpdateUserRequest) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.WithField("id", id).Debug("Malformed user id treated as not found")
		return nil, nil
	}

	if req.IsEmpty() {
		return a.GetByID(ctx, id)
	}

	set := buildSetDocument(req)
	result, err := a.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return a.GetByID(ctx, id)
}

// Delete removes at most one user. The returned bool is the only signal
// distinguishing "didn't exist" from "existed and is gone".
func (a *UserAdapter) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.WithField("id", id).Debug("Malformed user id treated as not found")
		return false, nil
	}

	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return result.DeletedCount == 1, nil
}

// buildSetDocument collects only the fields named by the update.
func buildSetDocument(req *domain.UpdateUserRequest) bson.M {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	return set
}

func toUser(doc *userDocument) *domain.User {
	return &domain.User{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Age:       doc.Age,
		CreatedAt: doc.CreatedAt,
	}
}

var _ out.UserRepository = (*UserAdapter)(nil)
