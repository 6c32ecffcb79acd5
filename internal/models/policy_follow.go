package models

import "time"

// PolicyFollow records that a user stars a policy (PostgreSQL)
type PolicyFollow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_policy_follow"`
	PolicyID  string    `json:"policy_id" gorm:"size:60;index;uniqueIndex:idx_user_policy_follow"`
	CreatedAt time.Time `json:"created_at"`
}
