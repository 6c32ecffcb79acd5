package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Signature represents one user's support for a petition (MongoDB).
// At most one document exists per (petition, user) pair.
type Signature struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PetitionID  string             `json:"petition_id" bson:"petition_id"`
	UserID      string             `json:"user_id" bson:"user_id"` // actor ID of the signer
	DisplayName string             `json:"display_name" bson:"display_name"`
	PhotoURL    string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	SignedAt    time.Time          `json:"signed_at" bson:"signed_at"`
}
