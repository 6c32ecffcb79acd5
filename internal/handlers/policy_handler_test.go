package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/labstack/echo/v4"
)

func newPolicyTestEnv() (*PolicyHandler, *fakePolicyFollowRepo) {
	policyRepo := &fakePolicyRepo{policies: []models.Policy{
		{ID: "pol_001", Title: "National Deep Tech Startup Policy", Category: "Technology & Innovation", PublishedAt: time.Date(2023, 7, 31, 10, 0, 0, 0, time.UTC)},
		{ID: "pol_004", Title: "Digital Personal Data Protection Act", Category: "Law & Governance", PublishedAt: time.Date(2023, 8, 11, 14, 0, 0, 0, time.UTC)},
		{ID: "vjcet_005", Title: "Anti-Ragging Policy", Category: "Conduct & Ethics", PublishedAt: time.Date(2023, 7, 1, 9, 30, 0, 0, time.UTC)},
	}}
	followRepo := newFakePolicyFollowRepo()
	return NewPolicyHandler(policyRepo, followRepo), followRepo
}

func policyContext(userID uint, target string, policyID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if policyID != "" {
		c.SetParamNames("id")
		c.SetParamValues(policyID)
	}
	if userID != 0 {
		c.Set("userID", userID)
	}
	return c, rec
}

func TestListPoliciesIncludesFollowState(t *testing.T) {
	handler, followRepo := newPolicyTestEnv()
	followRepo.CreateFollow(&models.PolicyFollow{UserID: 1, PolicyID: "pol_004"})

	c, rec := policyContext(1, "/", "")
	if err := handler.ListPolicies(c); err != nil {
		t.Fatalf("ListPolicies failed: %v", err)
	}

	var resp struct {
		Policies []models.FollowedPolicy `json:"policies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Policies) != 3 {
		t.Fatalf("Expected 3 policies, got %d", len(resp.Policies))
	}
	for _, p := range resp.Policies {
		want := p.ID == "pol_004"
		if p.IsFollowed != want {
			t.Errorf("Policy %s: expected is_followed=%v, got %v", p.ID, want, p.IsFollowed)
		}
	}
}

func TestListPoliciesByCategory(t *testing.T) {
	handler, _ := newPolicyTestEnv()

	c, rec := policyContext(1, "/?category=Law+%26+Governance", "")
	if err := handler.ListPolicies(c); err != nil {
		t.Fatalf("ListPolicies failed: %v", err)
	}

	var resp struct {
		Policies []models.FollowedPolicy `json:"policies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Policies) != 1 || resp.Policies[0].ID != "pol_004" {
		t.Errorf("Expected only pol_004, got %+v", resp.Policies)
	}
}

func TestFollowPolicy(t *testing.T) {
	handler, followRepo := newPolicyTestEnv()

	c, rec := policyContext(1, "/", "pol_001")
	if err := handler.FollowPolicy(c); err != nil {
		t.Fatalf("FollowPolicy failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if following, _ := followRepo.IsFollowing(1, "pol_001"); !following {
		t.Error("Expected follow to be recorded")
	}

	// Following again conflicts
	c2, _ := policyContext(1, "/", "pol_001")
	err := handler.FollowPolicy(c2)
	if httpStatus(t, err) != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate follow, got %d", httpStatus(t, err))
	}
}

func TestFollowUnknownPolicy(t *testing.T) {
	handler, _ := newPolicyTestEnv()
	c, _ := policyContext(1, "/", "pol_999")
	err := handler.FollowPolicy(c)
	if httpStatus(t, err) != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", httpStatus(t, err))
	}
}

func TestUnfollowPolicy(t *testing.T) {
	handler, followRepo := newPolicyTestEnv()
	followRepo.CreateFollow(&models.PolicyFollow{UserID: 1, PolicyID: "vjcet_005"})

	c, _ := policyContext(1, "/", "vjcet_005")
	if err := handler.UnfollowPolicy(c); err != nil {
		t.Fatalf("UnfollowPolicy failed: %v", err)
	}
	if following, _ := followRepo.IsFollowing(1, "vjcet_005"); following {
		t.Error("Expected follow to be removed")
	}

	// Unfollowing again is a 404
	c2, _ := policyContext(1, "/", "vjcet_005")
	err := handler.UnfollowPolicy(c2)
	if httpStatus(t, err) != http.StatusNotFound {
		t.Errorf("Expected 404 on missing follow, got %d", httpStatus(t, err))
	}
}

func TestListFollowedPolicies(t *testing.T) {
	handler, followRepo := newPolicyTestEnv()
	followRepo.CreateFollow(&models.PolicyFollow{UserID: 1, PolicyID: "pol_001"})
	followRepo.CreateFollow(&models.PolicyFollow{UserID: 1, PolicyID: "gone_999"})

	c, rec := policyContext(1, "/", "")
	if err := handler.ListFollowedPolicies(c); err != nil {
		t.Fatalf("ListFollowedPolicies failed: %v", err)
	}

	var resp struct {
		Policies []models.Policy `json:"policies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// Follows pointing at retired digest entries are skipped
	if len(resp.Policies) != 1 || resp.Policies[0].ID != "pol_001" {
		t.Errorf("Expected only pol_001, got %+v", resp.Policies)
	}
}

func TestPolicyRoutesRequireAuth(t *testing.T) {
	handler, _ := newPolicyTestEnv()

	c, _ := policyContext(0, "/", "")
	if err := handler.ListPolicies(c); httpStatus(t, err) != http.StatusUnauthorized {
		t.Errorf("ListPolicies: expected 401, got %d", httpStatus(t, err))
	}
	c, _ = policyContext(0, "/", "pol_001")
	if err := handler.FollowPolicy(c); httpStatus(t, err) != http.StatusUnauthorized {
		t.Errorf("FollowPolicy: expected 401, got %d", httpStatus(t, err))
	}
}
