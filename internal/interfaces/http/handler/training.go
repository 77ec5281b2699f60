package handler

import (
	"github.com/gin-gonic/gin"

	trainingapp "github.com/gymdesk/backend/internal/application/training"
)

// TrainingHandler handles trainer and class endpoints
type TrainingHandler struct {
	BaseHandler
	trainingService *trainingapp.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler
func NewTrainingHandler(trainingService *trainingapp.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// CreateTrainer adds a trainer to the roster
// POST /api/v1/trainers
func (h *TrainingHandler) CreateTrainer(c *gin.Context) {
	var req trainingapp.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid trainer request")
		return
	}

	resp, err := h.trainingService.CreateTrainer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetTrainer returns a trainer by id
// GET /api/v1/trainers/:id
func (h *TrainingHandler) GetTrainer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid trainer id")
		return
	}

	resp, err := h.trainingService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListTrainers returns trainers matching the filter
// GET /api/v1/trainers
func (h *TrainingHandler) ListTrainers(c *gin.Context) {
	filter := parseFilter(c)

	trainers, total, err := h.trainingService.ListTrainers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, trainers, total, filter.Page, filter.PageSize)
}

// UpdateTrainer updates a trainer's profile
// PUT /api/v1/trainers/:id
func (h *TrainingHandler) UpdateTrainer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid trainer id")
		return
	}

	var req trainingapp.UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid trainer request")
		return
	}

	resp, err := h.trainingService.UpdateTrainer(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeactivateTrainer removes a trainer from the active roster
// DELETE /api/v1/trainers/:id
func (h *TrainingHandler) DeactivateTrainer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid trainer id")
		return
	}

	if err := h.trainingService.DeactivateTrainer(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateClass schedules a class
// POST /api/v1/classes
func (h *TrainingHandler) CreateClass(c *gin.Context) {
	var req trainingapp.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid class request")
		return
	}

	resp, err := h.trainingService.CreateClass(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetClass returns a class by id
// GET /api/v1/classes/:id
func (h *TrainingHandler) GetClass(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid class id")
		return
	}

	resp, err := h.trainingService.GetClass(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListUpcomingClasses returns classes starting after now
// GET /api/v1/classes
func (h *TrainingHandler) ListUpcomingClasses(c *gin.Context) {
	classes, err := h.trainingService.ListUpcomingClasses(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, classes)
}

// RescheduleClass moves a class to a new time slot
// PUT /api/v1/classes/:id/schedule
func (h *TrainingHandler) RescheduleClass(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid class id")
		return
	}

	var req trainingapp.RescheduleClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid schedule request")
		return
	}

	resp, err := h.trainingService.RescheduleClass(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// EnrollInClass adds one attendee to a class
// POST /api/v1/classes/:id/enroll
func (h *TrainingHandler) EnrollInClass(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid class id")
		return
	}

	resp, err := h.trainingService.EnrollInClass(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteClass removes a class from the schedule
// DELETE /api/v1/classes/:id
func (h *TrainingHandler) DeleteClass(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid class id")
		return
	}

	if err := h.trainingService.DeleteClass(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
