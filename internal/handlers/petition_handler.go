package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/collectivevoice/backend/internal/models"
	"github.com/collectivevoice/backend/internal/repositories"
	"github.com/collectivevoice/backend/pkg/imageutil"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PetitionHandler handles HTTP requests related to petitions
type PetitionHandler struct {
	petitionRepository repositories.PetitionRepository
	userRepository     repositories.UserRepository
}

// NewPetitionHandler creates a new PetitionHandler
func NewPetitionHandler(petitionRepo repositories.PetitionRepository, userRepo repositories.UserRepository) *PetitionHandler {
	return &PetitionHandler{
		petitionRepository: petitionRepo,
		userRepository:     userRepo,
	}
}

// RegisterPetitionRoutes registers petition-related routes
func (h *PetitionHandler) RegisterPetitionRoutes(g *echo.Group) {
	g.POST("/petitions", h.CreatePetition)
	g.POST("/petitions/cover-image", h.UploadCoverImage)
	g.GET("/petitions", h.ListPetitions)
	g.GET("/petitions/:id", h.GetPetition)
}

// CreatePetition creates a new petition owned by the authenticated user
func (h *PetitionHandler) CreatePetition(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePetitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	petition := &models.Petition{
		Title:       req.Title,
		Description: req.Description,
		Target:      req.Target,
		Category:    req.Category,
		Tags:        req.Tags,
		Visibility:  req.Visibility,
		ImageURL:    req.ImageURL,
		AuthorID:    user.ActorID(),
		AuthorName:  user.DisplayName,
		Goal:        req.Goal,
	}

	if err := h.petitionRepository.CreatePetition(c.Request().Context(), petition); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, petition)
}

// UploadCoverImage compresses an uploaded cover image into an inline data
// URL the client can attach to a petition create request.
func (h *PetitionHandler) UploadCoverImage(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing image file")
	}
	if fileHeader.Size > maxAvatarUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}

	dataURL, err := imageutil.CompressToDataURL(data, imageutil.DefaultMaxWidth, imageutil.DefaultByteBudget)
	if err != nil {
		if err == imageutil.ErrBudgetExceeded {
			return echo.NewHTTPError(http.StatusBadRequest, "Image could not be compressed to fit")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported image upload")
	}

	return c.JSON(http.StatusOK, echo.Map{"image_url": dataURL, "size_bytes": imageutil.DataURLSize(dataURL)})
}

// ListPetitions retrieves petitions, optionally scoped to the campus feed or
// the authenticated user's own petitions
func (h *PetitionHandler) ListPetitions(c echo.Context) error {
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 50 {
		limit = 20
	}

	filter := repositories.PetitionFilter{}
	switch c.QueryParam("filter") {
	case "campus":
		filter.Visibility = models.VisibilityCampus
	case "mine":
		userID := getUserIDFromContext(c)
		if userID == 0 {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
		}
		user, err := h.userRepository.GetUserByID(userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
		}
		filter.AuthorID = user.ActorID()
	}

	petitions, err := h.petitionRepository.ListPetitions(c.Request().Context(), filter, (page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if petitions == nil {
		petitions = []models.Petition{}
	}

	return c.JSON(http.StatusOK, echo.Map{"petitions": petitions, "page": page, "limit": limit})
}

// GetPetition retrieves a single petition by ID
func (h *PetitionHandler) GetPetition(c echo.Context) error {
	petition, err := h.petitionRepository.GetPetitionByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Petition not found")
	}
	return c.JSON(http.StatusOK, petition)
}
