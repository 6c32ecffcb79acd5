package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAlreadySigned is returned when a user signs the same petition twice
var ErrAlreadySigned = errors.New("petition already signed by this user")

// SignatureRepository defines the interface for signature data operations
type SignatureRepository interface {
	CreateSignature(ctx context.Context, signature *models.Signature) error
	HasUserSigned(ctx context.Context, petitionID, userID string) (bool, error)
	ListRecentSignatures(ctx context.Context, petitionID string, limit int64) ([]models.Signature, error)
}

// MongoSignatureRepository implements SignatureRepository for MongoDB
type MongoSignatureRepository struct {
	collection *mongo.Collection
}

// NewMongoSignatureRepository creates a new MongoSignatureRepository.
// A unique (petition, user) index backs the one-signature-per-user rule so
// concurrent duplicate signs fail at the store rather than racing a check.
func NewMongoSignatureRepository(db *mongo.Database) *MongoSignatureRepository {
	collection := db.Collection("signatures")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "petition_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoSignatureRepository{collection: collection}
}

// CreateSignature records a user's signature on a petition
func (r *MongoSignatureRepository) CreateSignature(ctx context.Context, signature *models.Signature) error {
	signature.ID = primitive.NewObjectID()
	signature.SignedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, signature)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadySigned
	}
	return err
}

// HasUserSigned reports whether the user has already signed the petition
func (r *MongoSignatureRepository) HasUserSigned(ctx context.Context, petitionID, userID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"petition_id": petitionID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListRecentSignatures retrieves the most recent supporters of a petition
func (r *MongoSignatureRepository) ListRecentSignatures(ctx context.Context, petitionID string, limit int64) ([]models.Signature, error) {
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "signed_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"petition_id": petitionID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var signatures []models.Signature
	if err = cursor.All(ctx, &signatures); err != nil {
		return nil, err
	}
	return signatures, nil
}
