package repositories

import (
	"context"
	"fmt"

	"github.com/collectivevoice/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PolicyRepository defines the interface for policy digest operations
type PolicyRepository interface {
	ListPolicies(ctx context.Context, category string) ([]models.Policy, error)
	GetPolicyByID(ctx context.Context, id string) (*models.Policy, error)
	ListCategories(ctx context.Context) ([]string, error)
	SeedIfEmpty(ctx context.Context, policies []models.Policy) error
}

// MongoPolicyRepository implements PolicyRepository for MongoDB
type MongoPolicyRepository struct {
	collection *mongo.Collection
}

// NewMongoPolicyRepository creates a new MongoPolicyRepository
func NewMongoPolicyRepository(db *mongo.Database) *MongoPolicyRepository {
	return &MongoPolicyRepository{collection: db.Collection("policies")}
}

// ListPolicies retrieves policies newest first, optionally filtered by category
func (r *MongoPolicyRepository) ListPolicies(ctx context.Context, category string) ([]models.Policy, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var policies []models.Policy
	if err = cursor.All(ctx, &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// GetPolicyByID retrieves a single policy by its slug ID
func (r *MongoPolicyRepository) GetPolicyByID(ctx context.Context, id string) (*models.Policy, error) {
	var policy models.Policy
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&policy)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("policy not found")
		}
		return nil, err
	}
	return &policy, nil
}

// ListCategories retrieves the distinct policy categories
func (r *MongoPolicyRepository) ListCategories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// SeedIfEmpty loads the embedded policy digest when the collection has no documents
func (r *MongoPolicyRepository) SeedIfEmpty(ctx context.Context, policies []models.Policy) error {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return err
	}
	if count > 0 || len(policies) == 0 {
		return nil
	}

	docs := make([]interface{}, len(policies))
	for i, p := range policies {
		docs[i] = p
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
