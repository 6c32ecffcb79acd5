package models

import "time"

// Policy represents a government/college policy digest entry (MongoDB).
// IDs are stable slugs (e.g. "pol_001") so follow lists survive re-seeding.
type Policy struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Summary     string    `json:"summary" bson:"summary"`
	Source      string    `json:"source" bson:"source"` // publishing ministry or office
	Category    string    `json:"category" bson:"category"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
}

// FollowedPolicy is a policy enriched with the caller's follow state
type FollowedPolicy struct {
	Policy
	IsFollowed bool `json:"is_followed"`
}
