package repositories

import (
	"fmt"

	"github.com/collectivevoice/backend/internal/models"
	"gorm.io/gorm"
)

// PolicyFollowRepository defines the interface for policy follow-list operations
type PolicyFollowRepository interface {
	CreateFollow(follow *models.PolicyFollow) error
	DeleteFollow(userID uint, policyID string) error
	IsFollowing(userID uint, policyID string) (bool, error)
	GetFollowedPolicyIDs(userID uint) ([]string, error)
}

// PostgresPolicyFollowRepository implements PolicyFollowRepository for PostgreSQL
type PostgresPolicyFollowRepository struct {
	db *gorm.DB
}

// NewPostgresPolicyFollowRepository creates a new PostgresPolicyFollowRepository
func NewPostgresPolicyFollowRepository(db *gorm.DB) *PostgresPolicyFollowRepository {
	return &PostgresPolicyFollowRepository{db: db}
}

func (r *PostgresPolicyFollowRepository) CreateFollow(follow *models.PolicyFollow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresPolicyFollowRepository) DeleteFollow(userID uint, policyID string) error {
	res := r.db.Where("user_id = ? AND policy_id = ?", userID, policyID).Delete(&models.PolicyFollow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("policy follow not found")
	}
	return nil
}

func (r *PostgresPolicyFollowRepository) IsFollowing(userID uint, policyID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.PolicyFollow{}).Where("user_id = ? AND policy_id = ?", userID, policyID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresPolicyFollowRepository) GetFollowedPolicyIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.PolicyFollow{}).Where("user_id = ?", userID).Pluck("policy_id", &ids).Error
	return ids, err
}
