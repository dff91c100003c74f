package handler

import (
	"errors"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles HTTP requests for session attendance.
type AttendanceHandler struct {
	service service.AttendanceServicer
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(service service.AttendanceServicer) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// RecordAttendance godoc
// @Summary      Record session attendance
// @Description  Record a player's attendance at a programme session
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string                          true  "Programme ID"
// @Param        body         body      models.RecordAttendanceRequest  true  "Attendance record"
// @Success      201          {object}  response.Response{data=models.AttendanceRecord}
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes/{programmeId}/attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	recordedBy, ok := actorID(c)
	if !ok {
		return
	}

	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	var req models.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.RecordAttendance(c.Request.Context(), programmeID, recordedBy, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProgrammeNotFound), errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrAttendanceAlreadyTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, record)
}

// ListAttendance godoc
// @Summary      List programme attendance
// @Description  Retrieve all attendance records for a programme
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string  true  "Programme ID"
// @Success      200          {object}  response.Response{data=models.AttendanceListResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes/{programmeId}/attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	result, err := h.service.ListAttendance(c.Request.Context(), programmeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// PlayerAttendance godoc
// @Summary      List player attendance
// @Description  Retrieve a single player's attendance records within a programme
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string  true  "Programme ID"
// @Param        playerId     path      string  true  "Player ID"
// @Success      200          {object}  response.Response{data=models.AttendanceListResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes/{programmeId}/attendance/{playerId} [get]
func (h *AttendanceHandler) PlayerAttendance(c *gin.Context) {
	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	playerID, ok := objectIDParam(c, "playerId")
	if !ok {
		return
	}

	result, err := h.service.PlayerAttendance(c.Request.Context(), programmeID, playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// Summary godoc
// @Summary      Programme attendance summary
// @Description  Aggregate session counts per player across the programme
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        programmeId  path      string  true  "Programme ID"
// @Success      200          {object}  response.Response{data=models.AttendanceSummaryResponse}
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Security     BearerAuth
// @Router       /programmes/{programmeId}/attendance-summary [get]
func (h *AttendanceHandler) Summary(c *gin.Context) {
	programmeID, ok := objectIDParam(c, "programmeId")
	if !ok {
		return
	}

	result, err := h.service.Summary(c.Request.Context(), programmeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgrammeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
