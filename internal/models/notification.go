package models

import "time"

// Notification kinds
const (
	NotificationLike  = "like"  // someone liked your comment
	NotificationReply = "reply" // someone replied to your comment
	NotificationGoal  = "goal"  // your petition reached its signature goal
)

// Notification represents a user notification (PostgreSQL)
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"size:30;index"` // like, reply, goal
	ActorID     uint      `json:"actor_id" gorm:"index"`
	RecipientID uint      `json:"recipient_id" gorm:"index"`
	TargetID    string    `json:"target_id"`                  // petition ID or comment ID
	TargetType  string    `json:"target_type" gorm:"size:20"` // petition, comment
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
