package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a discussion comment on a petition (MongoDB).
// A comment with an empty ParentID is a root comment; otherwise it is a
// reply to a root comment. Only one level of nesting is allowed.
type Comment struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PetitionID  string             `json:"petition_id" bson:"petition_id"`
	ParentID    string             `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	AuthorID    string             `json:"author_id" bson:"author_id"` // actor ID, snapshot at post time
	AuthorName  string             `json:"author_name" bson:"author_name"`
	AuthorPhoto string             `json:"author_photo,omitempty" bson:"author_photo,omitempty"`
	Text        string             `json:"text" bson:"text"`
	LikeCount   int64              `json:"like_count" bson:"like_count"`
	LikedBy     []string           `json:"liked_by" bson:"liked_by"` // actor IDs, each at most once
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// IsRoot reports whether the comment is attached directly to the petition
func (c *Comment) IsRoot() bool {
	return c.ParentID == ""
}

// LikedByUser reports whether the given user currently likes the comment
func (c *Comment) LikedByUser(userID string) bool {
	for _, uid := range c.LikedBy {
		if uid == userID {
			return true
		}
	}
	return false
}

// CreateCommentRequest defines the request body for posting a comment or reply
type CreateCommentRequest struct {
	Text     string `json:"text" validate:"required,max=2000"`
	ParentID string `json:"parent_id,omitempty"`
}
