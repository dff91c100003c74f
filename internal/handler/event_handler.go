package handler

import (
	"encoding/json"
	"io"

	"ultihub/internal/realtime"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler streams live match events over SSE.
type EventHandler struct {
	broadcaster realtime.Broadcaster
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(broadcaster realtime.Broadcaster) *EventHandler {
	return &EventHandler{broadcaster: broadcaster}
}

// Stream godoc
// @Summary      Stream tournament events
// @Description  Server-sent event stream of match events for a tournament. Each message carries the event type and its payload.
// @Tags         events
// @Produce      text/event-stream
// @Param        tournamentId  path  string  true  "Tournament ID"
// @Success      200  {string}  string  "SSE stream"
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /tournaments/{tournamentId}/events [get]
func (h *EventHandler) Stream(c *gin.Context) {
	tournamentID, ok := objectIDParam(c, "tournamentId")
	if !ok {
		return
	}

	events, cancel, err := h.broadcaster.Subscribe(c.Request.Context(), tournamentID)
	if err != nil {
		response.InternalError(c)
		return
	}
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-events:
			if !open {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				return true
			}
			c.SSEvent(string(event.Type), string(data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
