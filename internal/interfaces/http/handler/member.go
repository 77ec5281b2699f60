package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/gymdesk/backend/internal/application/billing"
	membershipapp "github.com/gymdesk/backend/internal/application/membership"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	BaseHandler
	memberService  *membershipapp.MemberService
	paymentService *billingapp.PaymentService
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService *membershipapp.MemberService, paymentService *billingapp.PaymentService) *MemberHandler {
	return &MemberHandler{
		memberService:  memberService,
		paymentService: paymentService,
	}
}

// Register registers a new member
// POST /api/v1/members
func (h *MemberHandler) Register(c *gin.Context) {
	var req membershipapp.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid member request")
		return
	}

	resp, err := h.memberService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a member by id
// GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	resp, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns members matching the filter
// GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	filter := parseFilter(c)
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	members, total, err := h.memberService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, members, total, filter.Page, filter.PageSize)
}

// Update updates a member's contact details
// PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req membershipapp.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid member request")
		return
	}

	resp, err := h.memberService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Subscribe puts a member on a plan
// POST /api/v1/members/:id/subscribe
func (h *MemberHandler) Subscribe(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req membershipapp.SubscribeMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid subscribe request")
		return
	}

	resp, err := h.memberService.Subscribe(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a member
// DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPayments returns a member's payment history
// GET /api/v1/members/:id/payments
func (h *MemberHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	payments, err := h.paymentService.ListByMember(c.Request.Context(), id, parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payments)
}
