package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrCommentNotFound is returned when a comment ID matches no document
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetCommentsByPetitionID(ctx context.Context, petitionID string) ([]models.Comment, error)
	ToggleLike(ctx context.Context, commentID, userID string) (*models.Comment, bool, error)
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment appends a new comment document
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.LikeCount = 0
	comment.LikedBy = []string{}
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentByID retrieves a comment by ID
func (r *MongoCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format: %w", err)
	}

	var comment models.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPetitionID retrieves the full flat comment list for one petition
func (r *MongoCommentRepository) GetCommentsByPetitionID(ctx context.Context, petitionID string) ([]models.Comment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"petition_id": petitionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ToggleLike flips the (user, comment) like membership and returns the
// updated comment plus whether the comment is now liked by the user.
//
// Both directions are single conditional updates: the membership test lives
// in the filter and the set mutation and counter increment ride in the same
// update, so like_count always equals len(liked_by) even when two users
// toggle the same comment concurrently. The document is never rewritten
// whole from a prior read.
func (r *MongoCommentRepository) ToggleLike(ctx context.Context, commentID, userID string) (*models.Comment, bool, error) {
	objID, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid comment ID format: %w", err)
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// Unlike path: only matches while the user is in liked_by.
	var comment models.Comment
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "liked_by": userID},
		bson.M{
			"$pull": bson.M{"liked_by": userID},
			"$inc":  bson.M{"like_count": -1},
		},
		after,
	).Decode(&comment)
	if err == nil {
		return &comment, false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, err
	}

	// Like path: only matches while the user is absent from liked_by.
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "liked_by": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"liked_by": userID},
			"$inc":      bson.M{"like_count": 1},
		},
		after,
	).Decode(&comment)
	if err == nil {
		return &comment, true, nil
	}
	if err == mongo.ErrNoDocuments {
		// Neither filter matched: a concurrent toggle raced us between the
		// two updates, or the comment does not exist. Distinguish with a read.
		if _, lookupErr := r.GetCommentByID(ctx, commentID); lookupErr != nil {
			return nil, false, lookupErr
		}
		return r.ToggleLike(ctx, commentID, userID)
	}
	return nil, false, err
}
