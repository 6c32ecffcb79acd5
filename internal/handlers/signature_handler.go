package handlers

import (
	"net/http"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// recentSupportersLimit bounds the supporters sidebar list
const recentSupportersLimit = 10

// SignatureHandler handles HTTP requests related to petition signatures
type SignatureHandler struct {
	signatureRepository    repositories.SignatureRepository
	petitionRepository     repositories.PetitionRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(
	signatureRepo repositories.SignatureRepository,
	petitionRepo repositories.PetitionRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) *SignatureHandler {
	return &SignatureHandler{
		signatureRepository:    signatureRepo,
		petitionRepository:     petitionRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterSignatureRoutes registers signature-related routes
func (h *SignatureHandler) RegisterSignatureRoutes(g *echo.Group) {
	g.POST("/petitions/:petition_id/signatures", h.SignPetition)
	g.GET("/petitions/:petition_id/signatures", h.GetRecentSignatures)
	g.GET("/petitions/:petition_id/signatures/status", h.GetSignatureStatus)
}

// SignPetition records the authenticated user's signature on a petition.
// The unique signature insert happens before the counter increment, so a
// duplicate attempt fails without ever touching the count.
func (h *SignatureHandler) SignPetition(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	petitionID := c.Param("petition_id")

	// Verify petition exists
	_, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	signature := &models.Signature{
		PetitionID:  petitionID,
		UserID:      user.ActorID(),
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}

	if err := h.signatureRepository.CreateSignature(c.Request().Context(), signature); err != nil {
		if err == repositories.ErrAlreadySigned {
			return echo.NewHTTPError(http.StatusConflict, "You have already signed this petition")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	updated, err := h.petitionRepository.IncrementSignatureCount(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Tell the author once, on the signature that meets the goal
	if updated.Goal > 0 && updated.SignatureCount == updated.Goal {
		h.notifyGoalReached(updated, user)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"signature":       signature,
		"signature_count": updated.SignatureCount,
		"goal_reached":    updated.GoalReached(),
	})
}

// GetRecentSignatures retrieves the most recent supporters of a petition
func (h *SignatureHandler) GetRecentSignatures(c echo.Context) error {
	petitionID := c.Param("petition_id")

	// Verify petition exists
	_, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}

	signatures, err := h.signatureRepository.ListRecentSignatures(c.Request().Context(), petitionID, recentSupportersLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if signatures == nil {
		signatures = []models.Signature{}
	}

	return c.JSON(http.StatusOK, echo.Map{"petition_id": petitionID, "signatures": signatures})
}

// GetSignatureStatus reports whether the authenticated user has signed the petition
func (h *SignatureHandler) GetSignatureStatus(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	petitionID := c.Param("petition_id")

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	hasSigned, err := h.signatureRepository.HasUserSigned(c.Request().Context(), petitionID, user.ActorID())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"petition_id": petitionID, "has_signed": hasSigned})
}

func (h *SignatureHandler) notifyGoalReached(petition *models.Petition, lastSigner *models.User) {
	recipientID, err := models.ParseActorID(petition.AuthorID)
	if err != nil {
		return
	}
	notif := &models.Notification{
		Type:        models.NotificationGoal,
		ActorID:     lastSigner.ID,
		RecipientID: recipientID,
		TargetID:    petition.ID.Hex(),
		TargetType:  "petition",
		Message:     "Your petition \"" + petition.Title + "\" reached its signature goal",
	}
	h.notificationRepository.CreateNotification(notif)
}
