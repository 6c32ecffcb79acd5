package handlers

import (
	"net/http"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PolicyHandler handles policy digest and follow-list HTTP requests
type PolicyHandler struct {
	policyRepository       repositories.PolicyRepository
	policyFollowRepository repositories.PolicyFollowRepository
}

// NewPolicyHandler creates a new PolicyHandler
func NewPolicyHandler(policyRepo repositories.PolicyRepository, followRepo repositories.PolicyFollowRepository) *PolicyHandler {
	return &PolicyHandler{
		policyRepository:       policyRepo,
		policyFollowRepository: followRepo,
	}
}

// RegisterPolicyRoutes registers policy-related routes
func (h *PolicyHandler) RegisterPolicyRoutes(g *echo.Group) {
	g.GET("/policies", h.ListPolicies)
	g.GET("/policies/categories", h.ListCategories)
	g.GET("/policies/followed", h.ListFollowedPolicies)
	g.POST("/policies/:id/follow", h.FollowPolicy)
	g.DELETE("/policies/:id/follow", h.UnfollowPolicy)
}

// ListPolicies retrieves the policy digest, newest first, with the caller's
// follow state attached to each entry
func (h *PolicyHandler) ListPolicies(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	policies, err := h.policyRepository.ListPolicies(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followedIDs, err := h.policyFollowRepository.GetFollowedPolicyIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followed := make(map[string]bool, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = true
	}

	enriched := make([]models.FollowedPolicy, len(policies))
	for i, p := range policies {
		enriched[i] = models.FollowedPolicy{Policy: p, IsFollowed: followed[p.ID]}
	}

	return c.JSON(http.StatusOK, echo.Map{"policies": enriched})
}

// ListCategories retrieves the distinct policy categories
func (h *PolicyHandler) ListCategories(c echo.Context) error {
	categories, err := h.policyRepository.ListCategories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

// ListFollowedPolicies retrieves the policies the caller has starred
func (h *PolicyHandler) ListFollowedPolicies(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	followedIDs, err := h.policyFollowRepository.GetFollowedPolicyIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	policies := make([]models.Policy, 0, len(followedIDs))
	for _, id := range followedIDs {
		policy, err := h.policyRepository.GetPolicyByID(c.Request().Context(), id)
		if err != nil {
			continue // follow may outlive a re-seeded digest entry
		}
		policies = append(policies, *policy)
	}

	return c.JSON(http.StatusOK, echo.Map{"policies": policies})
}

// FollowPolicy stars a policy for the authenticated user
func (h *PolicyHandler) FollowPolicy(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	policyID := c.Param("id")

	// Verify policy exists
	if _, err := h.policyRepository.GetPolicyByID(c.Request().Context(), policyID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Policy not found")
	}

	isFollowing, err := h.policyFollowRepository.IsFollowing(currentUserID, policyID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusConflict, "Already following this policy")
	}

	follow := &models.PolicyFollow{
		UserID:   currentUserID,
		PolicyID: policyID,
	}
	if err := h.policyFollowRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// UnfollowPolicy removes a policy star
func (h *PolicyHandler) UnfollowPolicy(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.policyFollowRepository.DeleteFollow(currentUserID, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Policy follow not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}
