package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type signatureTestEnv struct {
	handler      *SignatureHandler
	petitionRepo *fakePetitionRepo
	notifRepo    *fakeNotificationRepo
	petition     *models.Petition
	author       *models.User
	signers      []*models.User
}

func newSignatureTestEnv(goal int64) *signatureTestEnv {
	author := &models.User{ID: 1, DisplayName: "Asha", Email: "asha@example.com"}
	signers := []*models.User{
		{ID: 2, DisplayName: "Ravi", Email: "ravi@example.com"},
		{ID: 3, DisplayName: "Meera", Email: "meera@example.com"},
		{ID: 4, DisplayName: "Arjun", Email: "arjun@example.com"},
	}
	petition := &models.Petition{
		ID:         primitive.NewObjectID(),
		Title:      "Extend hostel curfew hours",
		AuthorID:   author.ActorID(),
		AuthorName: author.DisplayName,
		Visibility: models.VisibilityCampus,
		Goal:       goal,
	}

	notifRepo := &fakeNotificationRepo{}
	petitionRepo := newFakePetitionRepo(petition)
	users := append([]*models.User{author}, signers...)
	handler := NewSignatureHandler(newFakeSignatureRepo(), petitionRepo, newFakeUserRepo(users...), notifRepo)

	return &signatureTestEnv{
		handler:      handler,
		petitionRepo: petitionRepo,
		notifRepo:    notifRepo,
		petition:     petition,
		author:       author,
		signers:      signers,
	}
}

func signPetition(t *testing.T, env *signatureTestEnv, userID uint) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("petition_id")
	c.SetParamValues(env.petition.ID.Hex())
	if userID != 0 {
		c.Set("userID", userID)
	}
	return rec, env.handler.SignPetition(c)
}

func TestSignPetition(t *testing.T) {
	env := newSignatureTestEnv(50)
	rec, err := signPetition(t, env, env.signers[0].ID)
	if err != nil {
		t.Fatalf("SignPetition failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", rec.Code)
	}

	var resp struct {
		SignatureCount int64 `json:"signature_count"`
		GoalReached    bool  `json:"goal_reached"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.SignatureCount != 1 {
		t.Errorf("Expected signature count 1, got %d", resp.SignatureCount)
	}
	if resp.GoalReached {
		t.Error("Goal should not be reached after one signature")
	}
}

func TestSignPetitionRequiresAuth(t *testing.T) {
	env := newSignatureTestEnv(50)
	_, err := signPetition(t, env, 0)
	if httpStatus(t, err) != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", httpStatus(t, err))
	}
}

func TestSignPetitionDuplicate(t *testing.T) {
	env := newSignatureTestEnv(50)
	if _, err := signPetition(t, env, env.signers[0].ID); err != nil {
		t.Fatalf("First signature failed: %v", err)
	}

	_, err := signPetition(t, env, env.signers[0].ID)
	if httpStatus(t, err) != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate signature, got %d", httpStatus(t, err))
	}

	stored, _ := env.petitionRepo.GetPetitionByID(nil, env.petition.ID.Hex())
	if stored.SignatureCount != 1 {
		t.Errorf("Duplicate attempt must not touch the count, got %d", stored.SignatureCount)
	}
}

func TestSignPetitionUnknownPetition(t *testing.T) {
	env := newSignatureTestEnv(50)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("petition_id")
	c.SetParamValues(primitive.NewObjectID().Hex())
	c.Set("userID", env.signers[0].ID)

	err := env.handler.SignPetition(c)
	if httpStatus(t, err) != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", httpStatus(t, err))
	}
}

func TestSignPetitionGoalNotificationFiresOnce(t *testing.T) {
	env := newSignatureTestEnv(2)

	// First signature: below goal, no notification
	if _, err := signPetition(t, env, env.signers[0].ID); err != nil {
		t.Fatalf("First signature failed: %v", err)
	}
	if len(env.notifRepo.created) != 0 {
		t.Fatalf("No notification expected below the goal, got %d", len(env.notifRepo.created))
	}

	// Second signature meets the goal exactly
	rec, err := signPetition(t, env, env.signers[1].ID)
	if err != nil {
		t.Fatalf("Second signature failed: %v", err)
	}
	var resp struct {
		GoalReached bool `json:"goal_reached"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.GoalReached {
		t.Error("Expected goal_reached=true on the meeting signature")
	}
	if len(env.notifRepo.created) != 1 {
		t.Fatalf("Expected exactly 1 goal notification, got %d", len(env.notifRepo.created))
	}
	notif := env.notifRepo.created[0]
	if notif.Type != models.NotificationGoal {
		t.Errorf("Expected goal notification, got %s", notif.Type)
	}
	if notif.RecipientID != env.author.ID {
		t.Errorf("Expected recipient %d, got %d", env.author.ID, notif.RecipientID)
	}

	// Signatures past the goal stay silent
	if _, err := signPetition(t, env, env.signers[2].ID); err != nil {
		t.Fatalf("Third signature failed: %v", err)
	}
	if len(env.notifRepo.created) != 1 {
		t.Errorf("Goal notification must fire once, got %d", len(env.notifRepo.created))
	}
}

func TestGetSignatureStatus(t *testing.T) {
	env := newSignatureTestEnv(50)
	if _, err := signPetition(t, env, env.signers[0].ID); err != nil {
		t.Fatalf("Signature failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("petition_id")
	c.SetParamValues(env.petition.ID.Hex())
	c.Set("userID", env.signers[0].ID)

	if err := env.handler.GetSignatureStatus(c); err != nil {
		t.Fatalf("GetSignatureStatus failed: %v", err)
	}
	var resp struct {
		HasSigned bool `json:"has_signed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.HasSigned {
		t.Error("Expected has_signed=true")
	}

	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec2)
	c2.SetParamNames("petition_id")
	c2.SetParamValues(env.petition.ID.Hex())
	c2.Set("userID", env.signers[1].ID)
	if err := env.handler.GetSignatureStatus(c2); err != nil {
		t.Fatalf("GetSignatureStatus failed: %v", err)
	}
	var resp2 struct {
		HasSigned bool `json:"has_signed"`
	}
	if err := json.Unmarshal(rec2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp2.HasSigned {
		t.Error("Expected has_signed=false for a user who has not signed")
	}
}
