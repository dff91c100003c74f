package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for match scheduling and scoring.
type MatchHandler struct {
	service service.MatchServicer
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(service service.MatchServicer) *MatchHandler {
	return &MatchHandler{service: service}
}

// ScheduleMatch godoc
// @Summary      Schedule a match
// @Description  Schedule a match between two approved teams. Teams with outstanding spirit scores are rejected, with the pending obligations listed in the response payload.
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string                    true  "Tournament ID"
// @Param        body          body      models.CreateMatchRequest  true  "Match details"
// @Success      201           {object}  response.Response{data=models.Match}
// @Failure      400           {object}  response.Response
// @Failure      401           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      409           {object}  response.Response{data=models.EligibilityResult}
// @Failure      500           {object}  response.Response
// @Security     BearerAuth
// @Router       /tournaments/{tournamentId}/matches [post]
func (h *MatchHandler) ScheduleMatch(c *gin.Context) {
	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	match, err := h.service.ScheduleMatch(c.Request.Context(), tournamentID, &req)
	if err != nil {
		var eligErr *service.EligibilityError
		switch {
		case errors.As(err, &eligErr):
			response.ErrorWithData(c, http.StatusConflict, err.Error(), eligErr.Result)
		case errors.Is(err, apperrors.ErrTeamNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamNotApproved):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, match)
}

// ListMatches godoc
// @Summary      List tournament matches
// @Description  Retrieve paginated matches for a tournament
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string  true   "Tournament ID"
// @Param        page          query     int     false  "Page number (default: 1)"
// @Param        limit         query     int     false  "Items per page (default: 10)"
// @Success      200           {object}  response.Response{data=models.MatchListResponse}
// @Failure      400           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /tournaments/{tournamentId}/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListMatches(c.Request.Context(), tournamentID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetMatch godoc
// @Summary      Get match details
// @Description  Retrieve a single match by ID
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId  path      string  true  "Match ID"
// @Success      200      {object}  response.Response{data=models.Match}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /matches/{matchId} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, ok := objectIDParam(c, "matchId")
	if !ok {
		return
	}

	match, err := h.service.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, match)
}

// UpdateScore godoc
// @Summary      Update a live score
// @Description  Record the running score of a live match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId  path      string                    true  "Match ID"
// @Param        body     body      models.UpdateScoreRequest  true  "Score update"
// @Success      200      {object}  response.Response{data=models.Match}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /matches/{matchId}/score [put]
func (h *MatchHandler) UpdateScore(c *gin.Context) {
	matchID, ok := objectIDParam(c, "matchId")
	if !ok {
		return
	}

	var req models.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	match, err := h.service.UpdateScore(c.Request.Context(), matchID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrMatchCompleted):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, match)
}

// UpdateStatus godoc
// @Summary      Update match status
// @Description  Move a match through its lifecycle: scheduled, live, completed or cancelled
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId  path      string                          true  "Match ID"
// @Param        body     body      models.UpdateMatchStatusRequest  true  "Status update"
// @Success      200      {object}  response.Response{data=models.Match}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /matches/{matchId}/status [put]
func (h *MatchHandler) UpdateStatus(c *gin.Context) {
	matchID, ok := objectIDParam(c, "matchId")
	if !ok {
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	match, err := h.service.UpdateStatus(c.Request.Context(), matchID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvalidMatchTransition):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, match)
}

// CorrectMatch godoc
// @Summary      Correct a completed match
// @Description  Director correction of a completed match result
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId  path      string                     true  "Match ID"
// @Param        body     body      models.CorrectMatchRequest  true  "Correction"
// @Success      200      {object}  response.Response{data=models.Match}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /matches/{matchId}/correct [put]
func (h *MatchHandler) CorrectMatch(c *gin.Context) {
	matchID, ok := objectIDParam(c, "matchId")
	if !ok {
		return
	}

	var req models.CorrectMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	match, err := h.service.CorrectMatch(c.Request.Context(), matchID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMatchNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrMatchNotCompleted):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, match)
}

// CheckEligibility godoc
// @Summary      Check team eligibility
// @Description  Report whether a team may enter new matches, listing any completed matches still awaiting a spirit score
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.EligibilityResult}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/eligibility [get]
func (h *MatchHandler) CheckEligibility(c *gin.Context) {
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	result, err := h.service.CheckEligibility(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
