package handler

import (
	"errors"
	"strconv"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/middleware"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TournamentHandler handles HTTP requests for tournament operations.
type TournamentHandler struct {
	service service.TournamentServicer
}

// NewTournamentHandler creates a new TournamentHandler.
func NewTournamentHandler(service service.TournamentServicer) *TournamentHandler {
	return &TournamentHandler{service: service}
}

// CreateTournament godoc
// @Summary      Create a tournament
// @Description  Create a new tournament. The authenticated director becomes its owner.
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateTournamentRequest  true  "Tournament details"
// @Success      201   {object}  response.Response{data=models.Tournament}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	directorID, ok := actorID(c)
	if !ok {
		return
	}

	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tournament, err := h.service.CreateTournament(c.Request.Context(), directorID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, tournament)
}

// ListTournaments godoc
// @Summary      List tournaments
// @Description  Retrieve a paginated list of tournaments
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10)"
// @Success      200    {object}  response.Response{data=models.TournamentListResponse}
// @Failure      500    {object}  response.Response
// @Router       /tournaments [get]
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListTournaments(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetTournament godoc
// @Summary      Get tournament details
// @Description  Retrieve a tournament by ID
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string  true  "Tournament ID"
// @Success      200           {object}  response.Response{data=models.Tournament}
// @Failure      400           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /tournaments/{tournamentId} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	tournament, err := h.service.GetTournament(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, tournament)
}

// GetTournamentBySlug godoc
// @Summary      Get tournament by slug
// @Description  Retrieve a tournament by its URL slug
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        slug  path      string  true  "Tournament slug"
// @Success      200   {object}  response.Response{data=models.Tournament}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /tournaments/slug/{slug} [get]
func (h *TournamentHandler) GetTournamentBySlug(c *gin.Context) {
	tournament, err := h.service.GetTournamentBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, tournament)
}

// UpdateTournament godoc
// @Summary      Update tournament
// @Description  Update a tournament's details. The slug never changes.
// @Tags         tournaments
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string                          true  "Tournament ID"
// @Param        body          body      models.UpdateTournamentRequest  true  "Fields to update"
// @Success      200           {object}  response.Response{data=models.Tournament}
// @Failure      400           {object}  response.Response
// @Failure      401           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Security     BearerAuth
// @Router       /tournaments/{tournamentId} [put]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	id, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tournament, err := h.service.UpdateTournament(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, tournament)
}

// actorID reads the authenticated caller's ID, writing a 401 response when it
// is missing or malformed.
func actorID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr := middleware.GetUserID(c)
	if userIDStr == "" {
		response.Unauthorized(c, "user not authenticated")
		return primitive.NilObjectID, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		response.Unauthorized(c, "invalid user id format")
		return primitive.NilObjectID, false
	}
	return userID, true
}
