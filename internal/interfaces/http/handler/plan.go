package handler

import (
	"github.com/gin-gonic/gin"

	membershipapp "github.com/gymdesk/backend/internal/application/membership"
)

// PlanHandler handles membership plan endpoints
type PlanHandler struct {
	BaseHandler
	planService *membershipapp.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *membershipapp.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// Create creates a membership plan
// POST /api/v1/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req membershipapp.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid plan request")
		return
	}

	resp, err := h.planService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a plan by id
// GET /api/v1/plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid plan id")
		return
	}

	resp, err := h.planService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns plans matching the filter
// GET /api/v1/plans
func (h *PlanHandler) List(c *gin.Context) {
	filter := parseFilter(c)

	plans, total, err := h.planService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, plans, total, filter.Page, filter.PageSize)
}

// Update updates a plan's details
// PUT /api/v1/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid plan id")
		return
	}

	var req membershipapp.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid plan request")
		return
	}

	resp, err := h.planService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate retires a plan
// DELETE /api/v1/plans/:id
func (h *PlanHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid plan id")
		return
	}

	if err := h.planService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
