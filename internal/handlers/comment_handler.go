package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/realtime"
	"github.com/collectivevoice/backend/internal/repositories"
	"github.com/collectivevoice/backend/pkg/sse"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ssePingInterval keeps idle subscription connections alive
const ssePingInterval = 20 * time.Second

// CommentHandler handles HTTP requests related to discussion comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	petitionRepository     repositories.PetitionRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	hub                    *realtime.Hub
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	petitionRepo repositories.PetitionRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
	hub *realtime.Hub,
) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		petitionRepository:     petitionRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		hub:                    hub,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/petitions/:petition_id/comments", h.CreateComment)
	g.GET("/petitions/:petition_id/comments", h.GetThreadedComments)
	g.GET("/petitions/:petition_id/comments/subscribe", h.SubscribeToComments)
	g.POST("/comments/:id/like", h.ToggleLike)
}

// CreateComment posts a root comment or a reply on a petition's discussion.
// Replies may only target root comments; deeper nesting is rejected here
// rather than left to client convention.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	petitionID := c.Param("petition_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment text cannot be empty")
	}

	// Verify petition exists
	_, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}

	var parent *models.Comment
	if req.ParentID != "" {
		parent, err = h.commentRepository.GetCommentByID(c.Request().Context(), req.ParentID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Parent comment not found")
		}
		if parent.PetitionID != petitionID {
			return echo.NewHTTPError(http.StatusBadRequest, "Parent comment belongs to a different petition")
		}
		if !parent.IsRoot() {
			return echo.NewHTTPError(http.StatusBadRequest, "Replies to replies are not allowed")
		}
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	comment := &models.Comment{
		PetitionID:  petitionID,
		ParentID:    req.ParentID,
		AuthorID:    user.ActorID(),
		AuthorName:  user.DisplayName,
		AuthorPhoto: user.PhotoURL,
		Text:        text,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Replying to someone else's comment notifies its author
	if parent != nil && parent.AuthorID != comment.AuthorID {
		h.notify(models.NotificationReply, user, parent.AuthorID, parent.ID.Hex(),
			user.DisplayName+" replied to your comment")
	}

	h.hub.Publish(petitionID)

	return c.JSON(http.StatusCreated, comment)
}

// GetThreadedComments retrieves the petition's discussion as root threads
// with replies, under the requested root sort (recent or likes)
func (h *CommentHandler) GetThreadedComments(c echo.Context) error {
	petitionID := c.Param("petition_id")

	// Verify petition exists
	_, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}

	sortBy := models.ParseThreadSort(c.QueryParam("sort"))
	comments, err := h.commentRepository.GetCommentsByPetitionID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"petition_id": petitionID,
		"sort":        string(sortBy),
		"threads":     models.BuildThread(comments, sortBy),
	})
}

// ToggleLike flips the authenticated user's like on a comment. A transition
// into the liked state on someone else's comment notifies its author;
// unliking and self-likes never notify.
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	comment, liked, err := h.commentRepository.ToggleLike(c.Request().Context(), c.Param("id"), user.ActorID())
	if err != nil {
		if err == repositories.ErrCommentNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if liked && comment.AuthorID != user.ActorID() {
		h.notify(models.NotificationLike, user, comment.AuthorID, comment.ID.Hex(),
			user.DisplayName+" liked your comment")
	}

	h.hub.Publish(comment.PetitionID)

	return c.JSON(http.StatusOK, echo.Map{
		"comment_id": comment.ID.Hex(),
		"liked":      liked,
		"like_count": comment.LikeCount,
	})
}

// SubscribeToComments streams the petition's full threaded discussion over
// SSE, re-sent on every change. The hub subscription is released when the
// client disconnects, so no subscription outlives its connection.
func (h *CommentHandler) SubscribeToComments(c echo.Context) error {
	petitionID := c.Param("petition_id")

	// Verify petition exists
	_, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), petitionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}

	sortBy := models.ParseThreadSort(c.QueryParam("sort"))

	changes, release := h.hub.Subscribe(petitionID)
	defer release()

	w := c.Response()
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	// Initial snapshot so the client renders without waiting for a change
	if err := h.sendSnapshot(c, w, petitionID, sortBy); err != nil {
		return nil
	}

	pingTicker := time.NewTicker(ssePingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil

		case <-changes:
			if err := h.sendSnapshot(c, w, petitionID, sortBy); err != nil {
				return nil
			}

		case <-pingTicker.C:
			ping := sse.Event{Event: []byte("ping"), Data: []byte("")}
			if err := ping.MarshalTo(w); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// sendSnapshot re-reads the petition's full comment list and writes it as
// one SSE event. Rebuilding from the latest snapshot makes duplicated or
// reordered change signals harmless.
func (h *CommentHandler) sendSnapshot(c echo.Context, w *echo.Response, petitionID string, sortBy models.ThreadSort) error {
	comments, err := h.commentRepository.GetCommentsByPetitionID(c.Request().Context(), petitionID)
	if err != nil {
		log.Printf("Failed to load comments for subscription on petition %s: %v", petitionID, err)
		return err
	}

	payload, err := json.Marshal(models.BuildThread(comments, sortBy))
	if err != nil {
		return err
	}

	event := sse.Event{Event: []byte("comments"), Data: payload}
	if err := event.MarshalTo(w); err != nil {
		return err
	}
	w.Flush()
	return nil
}

func (h *CommentHandler) notify(kind string, actor *models.User, recipientActorID, targetID, message string) {
	recipientID, err := models.ParseActorID(recipientActorID)
	if err != nil {
		return
	}
	notif := &models.Notification{
		Type:        kind,
		ActorID:     actor.ID,
		RecipientID: recipientID,
		TargetID:    targetID,
		TargetType:  "comment",
		Message:     message,
	}
	if err := h.notificationRepository.CreateNotification(notif); err != nil {
		log.Printf("Failed to create %s notification: %v", kind, err)
	}
}
