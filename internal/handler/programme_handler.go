package handler

import (
	"errors"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProgrammeHandler handles HTTP requests for coaching programme operations.
type ProgrammeHandler struct {
	service service.ProgrammeServicer
}

// NewProgrammeHandler creates a new ProgrammeHandler.
func NewProgrammeHandler(service service.ProgrammeServicer) *ProgrammeHandler {
	return &ProgrammeHandler{service: service}
}

// CreateProgramme godoc
// @Summary      Create a coaching programme
// @Description  Create a new coaching programme owned by the authenticated director
// @Tags         programmes
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateProgrammeRequest  true  "Programme details"
// @Success      201   {object}  response.Response{data=models.Programme}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes [post]
func (h *ProgrammeHandler) CreateProgramme(c *gin.Context) {
	directorID, ok := actorID(c)
	if !ok {
		return
	}

	var req models.CreateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	programme, err := h.service.CreateProgramme(c.Request.Context(), directorID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, programme)
}

// ListProgrammes godoc
// @Summary      List coaching programmes
// @Description  Retrieve all coaching programmes
// @Tags         programmes
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.ProgrammeListResponse}
// @Failure      500  {object}  response.Response
// @Router       /programmes [get]
func (h *ProgrammeHandler) ListProgrammes(c *gin.Context) {
	result, err := h.service.ListProgrammes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetProgramme godoc
// @Summary      Get programme details
// @Description  Retrieve a single coaching programme by ID
// @Tags         programmes
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string  true  "Programme ID"
// @Success      200          {object}  response.Response{data=models.Programme}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /programmes/{programmeId} [get]
func (h *ProgrammeHandler) GetProgramme(c *gin.Context) {
	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	programme, err := h.service.GetProgramme(c.Request.Context(), programmeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, programme)
}

// UpdateProgramme godoc
// @Summary      Update a programme
// @Description  Update programme name or season. The slug never changes.
// @Tags         programmes
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string                        true  "Programme ID"
// @Param        body         body      models.UpdateProgrammeRequest  true  "Fields to update"
// @Success      200          {object}  response.Response{data=models.Programme}
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes/{programmeId} [put]
func (h *ProgrammeHandler) UpdateProgramme(c *gin.Context) {
	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	var req models.UpdateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	programme, err := h.service.UpdateProgramme(c.Request.Context(), programmeID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, programme)
}
