package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PetitionFilter narrows a petition listing
type PetitionFilter struct {
	Visibility string // "" means any
	AuthorID   string // actor ID, "" means any
}

// PetitionRepository defines the interface for petition data operations
type PetitionRepository interface {
	CreatePetition(ctx context.Context, petition *models.Petition) error
	GetPetitionByID(ctx context.Context, id string) (*models.Petition, error)
	ListPetitions(ctx context.Context, filter PetitionFilter, skip, limit int64) ([]models.Petition, error)
	IncrementSignatureCount(ctx context.Context, petitionID string) (*models.Petition, error)
}

// MongoPetitionRepository implements PetitionRepository for MongoDB
type MongoPetitionRepository struct {
	collection *mongo.Collection
}

// NewMongoPetitionRepository creates a new MongoPetitionRepository
func NewMongoPetitionRepository(db *mongo.Database) *MongoPetitionRepository {
	return &MongoPetitionRepository{collection: db.Collection("petitions")}
}

// CreatePetition creates a new petition in MongoDB
func (r *MongoPetitionRepository) CreatePetition(ctx context.Context, petition *models.Petition) error {
	petition.ID = primitive.NewObjectID()
	petition.CreatedAt = time.Now()
	petition.SignatureCount = 0
	_, err := r.collection.InsertOne(ctx, petition)
	return err
}

// GetPetitionByID retrieves a petition by ID from MongoDB
func (r *MongoPetitionRepository) GetPetitionByID(ctx context.Context, id string) (*models.Petition, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid petition ID format: %w", err)
	}

	var petition models.Petition
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&petition)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("petition not found")
		}
		return nil, err
	}
	return &petition, nil
}

// ListPetitions retrieves petitions matching the filter, newest first
func (r *MongoPetitionRepository) ListPetitions(ctx context.Context, filter PetitionFilter, skip, limit int64) ([]models.Petition, error) {
	query := bson.M{}
	if filter.Visibility != "" {
		query["visibility"] = filter.Visibility
	}
	if filter.AuthorID != "" {
		query["author_id"] = filter.AuthorID
	}

	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var petitions []models.Petition
	if err = cursor.All(ctx, &petitions); err != nil {
		return nil, err
	}
	return petitions, nil
}

// IncrementSignatureCount atomically bumps the denormalized signature count
// and returns the updated petition. The count is never written back whole
// from a client-side read, so concurrent signers cannot lose updates.
func (r *MongoPetitionRepository) IncrementSignatureCount(ctx context.Context, petitionID string) (*models.Petition, error) {
	objID, err := primitive.ObjectIDFromHex(petitionID)
	if err != nil {
		return nil, fmt.Errorf("invalid petition ID format: %w", err)
	}

	var petition models.Petition
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"signature_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&petition)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("petition not found")
		}
		return nil, err
	}
	return &petition, nil
}
