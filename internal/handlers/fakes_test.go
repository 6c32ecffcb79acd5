package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errFakeNotFound = errors.New("not found")

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	for _, u := range r.users {
		if u.FirebaseUID == firebaseUID {
			return u, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) UpdateUser(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) DeleteUser(id uint) error {
	delete(r.users, id)
	return nil
}

type fakePetitionRepo struct {
	petitions map[string]*models.Petition
}

func newFakePetitionRepo(petitions ...*models.Petition) *fakePetitionRepo {
	r := &fakePetitionRepo{petitions: make(map[string]*models.Petition)}
	for _, p := range petitions {
		r.petitions[p.ID.Hex()] = p
	}
	return r
}

func (r *fakePetitionRepo) CreatePetition(ctx context.Context, petition *models.Petition) error {
	if petition.ID.IsZero() {
		petition.ID = primitive.NewObjectID()
	}
	petition.CreatedAt = time.Now()
	r.petitions[petition.ID.Hex()] = petition
	return nil
}

func (r *fakePetitionRepo) GetPetitionByID(ctx context.Context, id string) (*models.Petition, error) {
	p, ok := r.petitions[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return p, nil
}

func (r *fakePetitionRepo) ListPetitions(ctx context.Context, filter repositories.PetitionFilter, skip, limit int64) ([]models.Petition, error) {
	var out []models.Petition
	for _, p := range r.petitions {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePetitionRepo) IncrementSignatureCount(ctx context.Context, petitionID string) (*models.Petition, error) {
	p, ok := r.petitions[petitionID]
	if !ok {
		return nil, errFakeNotFound
	}
	p.SignatureCount++
	updated := *p
	return &updated, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
	now      time.Time
}

func newFakeCommentRepo(comments ...*models.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{
		comments: make(map[string]*models.Comment),
		now:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, c := range comments {
		r.comments[c.ID.Hex()] = c
	}
	return r
}

func (r *fakeCommentRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = primitive.NewObjectID()
	r.now = r.now.Add(time.Second)
	comment.CreatedAt = r.now
	stored := *comment
	r.comments[comment.ID.Hex()] = &stored
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCommentRepo) GetCommentsByPetitionID(ctx context.Context, petitionID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Comment
	for _, c := range r.comments {
		if c.PetitionID == petitionID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) ToggleLike(ctx context.Context, commentID, userID string) (*models.Comment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[commentID]
	if !ok {
		return nil, false, repositories.ErrCommentNotFound
	}
	if c.LikedByUser(userID) {
		kept := c.LikedBy[:0]
		for _, uid := range c.LikedBy {
			if uid != userID {
				kept = append(kept, uid)
			}
		}
		c.LikedBy = kept
		c.LikeCount--
		copied := *c
		return &copied, false, nil
	}
	c.LikedBy = append(c.LikedBy, userID)
	c.LikeCount++
	copied := *c
	return &copied, true, nil
}

type fakeSignatureRepo struct {
	signatures map[string]*models.Signature // keyed petitionID+"/"+userID
}

func newFakeSignatureRepo() *fakeSignatureRepo {
	return &fakeSignatureRepo{signatures: make(map[string]*models.Signature)}
}

func (r *fakeSignatureRepo) CreateSignature(ctx context.Context, signature *models.Signature) error {
	key := signature.PetitionID + "/" + signature.UserID
	if _, exists := r.signatures[key]; exists {
		return repositories.ErrAlreadySigned
	}
	signature.ID = primitive.NewObjectID()
	signature.SignedAt = time.Now()
	r.signatures[key] = signature
	return nil
}

func (r *fakeSignatureRepo) HasUserSigned(ctx context.Context, petitionID, userID string) (bool, error) {
	_, exists := r.signatures[petitionID+"/"+userID]
	return exists, nil
}

func (r *fakeSignatureRepo) ListRecentSignatures(ctx context.Context, petitionID string, limit int64) ([]models.Signature, error) {
	var out []models.Signature
	for _, s := range r.signatures {
		if s.PetitionID == petitionID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakePolicyRepo struct {
	policies []models.Policy
}

func (r *fakePolicyRepo) ListPolicies(ctx context.Context, category string) ([]models.Policy, error) {
	if category == "" {
		return r.policies, nil
	}
	var out []models.Policy
	for _, p := range r.policies {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePolicyRepo) GetPolicyByID(ctx context.Context, id string) (*models.Policy, error) {
	for i := range r.policies {
		if r.policies[i].ID == id {
			return &r.policies[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakePolicyRepo) ListCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.policies {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (r *fakePolicyRepo) SeedIfEmpty(ctx context.Context, policies []models.Policy) error {
	if len(r.policies) == 0 {
		r.policies = policies
	}
	return nil
}

type fakePolicyFollowRepo struct {
	follows map[uint]map[string]bool
}

func newFakePolicyFollowRepo() *fakePolicyFollowRepo {
	return &fakePolicyFollowRepo{follows: make(map[uint]map[string]bool)}
}

func (r *fakePolicyFollowRepo) CreateFollow(follow *models.PolicyFollow) error {
	if r.follows[follow.UserID] == nil {
		r.follows[follow.UserID] = make(map[string]bool)
	}
	r.follows[follow.UserID][follow.PolicyID] = true
	return nil
}

func (r *fakePolicyFollowRepo) DeleteFollow(userID uint, policyID string) error {
	if !r.follows[userID][policyID] {
		return errFakeNotFound
	}
	delete(r.follows[userID], policyID)
	return nil
}

func (r *fakePolicyFollowRepo) IsFollowing(userID uint, policyID string) (bool, error) {
	return r.follows[userID][policyID], nil
}

func (r *fakePolicyFollowRepo) GetFollowedPolicyIDs(userID uint) ([]string, error) {
	var out []string
	for id := range r.follows[userID] {
		out = append(out, id)
	}
	return out, nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (r *fakeNotificationRepo) GetGrouped(recipientID uint) (*repositories.GroupedNotifications, error) {
	return &repositories.GroupedNotifications{}, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	return int64(len(r.created)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID uint) error { return nil }

func (r *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error { return nil }
