package handler

import (
	"errors"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// SpiritScoreHandler handles HTTP requests for spirit score operations.
type SpiritScoreHandler struct {
	service service.SpiritScoreServicer
}

// NewSpiritScoreHandler creates a new SpiritScoreHandler.
func NewSpiritScoreHandler(service service.SpiritScoreServicer) *SpiritScoreHandler {
	return &SpiritScoreHandler{service: service}
}

// SubmitScore godoc
// @Summary      Submit a spirit score
// @Description  Submit the spirit score a team awards its opponent after a completed match. Manager or rostered player only.
// @Tags         spirit
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                          true  "Scoring team ID"
// @Param        body    body      models.CreateSpiritScoreRequest  true  "Spirit score"
// @Success      201     {object}  response.Response{data=models.SpiritScore}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/spirit-scores [post]
func (h *SpiritScoreHandler) SubmitScore(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.CreateSpiritScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	score, err := h.service.SubmitScore(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound), errors.Is(err, apperrors.ErrMatchNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotTeamManager):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamNotInMatch), errors.Is(err, apperrors.ErrInvalidSubScore):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrMatchNotCompleted), errors.Is(err, apperrors.ErrDuplicateSpiritScore):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, score)
}

// ListByMatch godoc
// @Summary      List match spirit scores
// @Description  Retrieve the spirit scores submitted for a match
// @Tags         spirit
// @Accept       json
// @Produce      json
// @Param        matchId  path      string  true  "Match ID"
// @Success      200      {object}  response.Response{data=models.SpiritScoreListResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /matches/{matchId}/spirit-scores [get]
func (h *SpiritScoreHandler) ListByMatch(c *gin.Context) {
	matchID, ok := objectIDParam(c, "matchId")
	if !ok {
		return
	}

	result, err := h.service.ListByMatch(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// ListReceived godoc
// @Summary      List received spirit scores
// @Description  Retrieve all spirit scores a team has received
// @Tags         spirit
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.SpiritScoreListResponse}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /teams/{teamId}/spirit-scores [get]
func (h *SpiritScoreHandler) ListReceived(c *gin.Context) {
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	result, err := h.service.ListReceived(c.Request.Context(), teamID)
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

// Leaderboard godoc
// @Summary      Spirit leaderboard
// @Description  Retrieve the tournament spirit leaderboard, ranked by average received score
// @Tags         spirit
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string  true  "Tournament ID"
// @Success      200           {object}  response.Response{data=models.SpiritLeaderboardResponse}
// @Failure      400           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /tournaments/{tournamentId}/spirit-leaderboard [get]
func (h *SpiritScoreHandler) Leaderboard(c *gin.Context) {
	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	result, err := h.service.Leaderboard(c.Request.Context(), tournamentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
