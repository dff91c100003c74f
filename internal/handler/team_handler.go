package handler

import (
	"errors"
	"strconv"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team and roster operations.
type TeamHandler struct {
	service service.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer) *TeamHandler {
	return &TeamHandler{service: service}
}

// RegisterTeam godoc
// @Summary      Register a team for a tournament
// @Description  Register a new team. The authenticated manager owns it; registration starts pending.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string                     true  "Tournament ID"
// @Param        body          body      models.RegisterTeamRequest  true  "Team details"
// @Success      201           {object}  response.Response{data=models.Team}
// @Failure      400           {object}  response.Response
// @Failure      401           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Failure      409           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Security     BearerAuth
// @Router       /tournaments/{tournamentId}/teams [post]
func (h *TeamHandler) RegisterTeam(c *gin.Context) {
	managerID, ok := actorID(c)
	if !ok {
		return
	}

	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	var req models.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.RegisterTeam(c.Request.Context(), tournamentID, managerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTournamentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamSlugTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, team)
}

// ListTeams godoc
// @Summary      List tournament teams
// @Description  Retrieve paginated teams registered for a tournament
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        tournamentId  path      string  true   "Tournament ID"
// @Param        page          query     int     false  "Page number (default: 1)"
// @Param        limit         query     int     false  "Items per page (default: 10)"
// @Success      200           {object}  response.Response{data=models.TeamListResponse}
// @Failure      400           {object}  response.Response
// @Failure      500           {object}  response.Response
// @Router       /tournaments/{tournamentId}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListTeams(c.Request.Context(), tournamentID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetTeam godoc
// @Summary      Get team details
// @Description  Retrieve a team, including a pre-signed logo URL when one is set
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, team)
}

// ListManagedTeams godoc
// @Summary      List own teams
// @Description  Retrieve all teams managed by the authenticated user
// @Tags         teams
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Team}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/mine [get]
func (h *TeamHandler) ListManagedTeams(c *gin.Context) {
	managerID, ok := actorID(c)
	if !ok {
		return
	}

	teams, err := h.service.ListManagedTeams(c.Request.Context(), managerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, teams)
}

// ReviewTeam godoc
// @Summary      Review a team registration
// @Description  Approve or reject a pending team registration
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                   true  "Team ID"
// @Param        body    body      models.ReviewTeamRequest  true  "Review decision"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/review [post]
func (h *TeamHandler) ReviewTeam(c *gin.Context) {
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.ReviewTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.ReviewTeam(c.Request.Context(), teamID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrTeamAlreadyReviewed):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, team)
}

// RequestLogoUpload godoc
// @Summary      Request a logo upload URL
// @Description  Issue a pre-signed S3 upload URL for the team logo. Manager only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                        true  "Team ID"
// @Param        body    body      models.TeamLogoUploadRequest  true  "Logo content type"
// @Success      200     {object}  response.Response{data=models.TeamLogoUploadResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/logo [post]
func (h *TeamHandler) RequestLogoUpload(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.TeamLogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestLogoUpload(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotTeamManager):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}

// AddRosterPlayer godoc
// @Summary      Add a roster player
// @Description  Add a player to the team roster. Manager only.
// @Tags         rosters
// @Accept       json
// @Produce      json
// @Param        teamId  path      string                        true  "Team ID"
// @Param        body    body      models.AddRosterPlayerRequest  true  "Player details"
// @Success      201     {object}  response.Response{data=models.RosterPlayer}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/roster [post]
func (h *TeamHandler) AddRosterPlayer(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	var req models.AddRosterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.service.AddRosterPlayer(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound), errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotTeamManager):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrPlayerAlreadyOnRoster):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, entry)
}

// ListRoster godoc
// @Summary      List team roster
// @Description  Retrieve the roster with player details
// @Tags         rosters
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.RosterListResponse}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/roster [get]
func (h *TeamHandler) ListRoster(c *gin.Context) {
	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	result, err := h.service.ListRoster(c.Request.Context(), teamID)
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

// RemoveRosterPlayer godoc
// @Summary      Remove a roster player
// @Description  Remove a player from the team roster. Manager only.
// @Tags         rosters
// @Accept       json
// @Produce      json
// @Param        teamId  path      string  true  "Team ID"
// @Param        userId  path      string  true  "User ID"
// @Success      204     "No Content"
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /teams/{teamId}/roster/{userId} [delete]
func (h *TeamHandler) RemoveRosterPlayer(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	teamID, ok := objectIDParam(c, "teamId")
	if !ok {
		return
	}

	userID, ok := objectIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveRosterPlayer(c.Request.Context(), teamID, actor, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound), errors.Is(err, apperrors.ErrRosterPlayerNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotTeamManager):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.NoContent(c)
}
