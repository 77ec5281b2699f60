package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	accessapp "github.com/gymdesk/backend/internal/application/access"
)

// CheckInHandler handles front-desk check-in endpoints
type CheckInHandler struct {
	BaseHandler
	checkInService *accessapp.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkInService *accessapp.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// CheckIn records a member's check-in attempt. The attempt is logged
// either way; the response says whether access was granted.
// POST /api/v1/members/:id/checkin
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	memberID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	resp, err := h.checkInService.CheckIn(c.Request.Context(), memberID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// History returns a member's check-in history
// GET /api/v1/members/:id/checkins
func (h *CheckInHandler) History(c *gin.Context) {
	memberID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	logs, err := h.checkInService.ListForMember(c.Request.Context(), memberID, parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}

// ListBetween returns check-ins inside a time window
// GET /api/v1/checkins?from=...&to=...
func (h *CheckInHandler) ListBetween(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		h.BadRequest(c, "Invalid 'from' timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		h.BadRequest(c, "Invalid 'to' timestamp")
		return
	}

	logs, err := h.checkInService.ListBetween(c.Request.Context(), from, to, parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}
