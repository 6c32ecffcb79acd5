package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Petition visibility scopes
const (
	VisibilityGlobal = "global"
	VisibilityCampus = "campus"
)

// Petition represents a petition document stored in MongoDB
type Petition struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Description    string             `json:"description" bson:"description"`
	Target         string             `json:"target,omitempty" bson:"target,omitempty"` // recipient of the petition, e.g. "College Principal"
	Category       string             `json:"category,omitempty" bson:"category,omitempty"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Visibility     string             `json:"visibility" bson:"visibility"` // global or campus
	ImageURL       string             `json:"image_url,omitempty" bson:"image_url,omitempty"` // inline data URL
	AuthorID       string             `json:"author_id" bson:"author_id"` // actor ID of the creator
	AuthorName     string             `json:"author_name" bson:"author_name"`
	Goal           int64              `json:"goal" bson:"goal"`
	SignatureCount int64              `json:"signature_count" bson:"signature_count"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// GoalReached reports whether the petition has met its signature goal
func (p *Petition) GoalReached() bool {
	return p.Goal > 0 && p.SignatureCount >= p.Goal
}

// CreatePetitionRequest defines the request body for creating a new petition
type CreatePetitionRequest struct {
	Title       string   `json:"title" validate:"required,min=5,max=150"`
	Description string   `json:"description" validate:"required,min=20,max=5000"`
	Target      string   `json:"target,omitempty" validate:"omitempty,max=100"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=50"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
	Visibility  string   `json:"visibility" validate:"required,oneof=global campus"`
	Goal        int64    `json:"goal" validate:"required,min=10"`
	ImageURL    string   `json:"image_url,omitempty"` // already-inlined data URL from the upload endpoint
}
