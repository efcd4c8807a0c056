package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/dto"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/service"
	apperrors "github.com/spec-kit/complaint-portal/pkg/util"
)

// AdminComplaintsHandler manages the admin triage endpoints.
type AdminComplaintsHandler struct {
	service *service.ComplaintService
}

// NewAdminComplaintsHandler constructs handler.
func NewAdminComplaintsHandler(complaintService *service.ComplaintService) *AdminComplaintsHandler {
	return &AdminComplaintsHandler{service: complaintService}
}

// List GET /admin/complaints?department=&region=. Filter values pass through
// as opaque equality predicates.
func (h *AdminComplaintsHandler) List(c *fiber.Ctx) error {
	complaints, err := h.service.ListFiltered(c.UserContext(), service.ListFilter{
		Department: c.Query("department"),
		Region:     c.Query("region"),
	})
	if err != nil {
		return err
	}
	items := make([]dto.AdminComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewAdminComplaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus PATCH /admin/complaints/:id/status.
func (h *AdminComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid complaint id", nil)
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.UpdateStatus(c.UserContext(), *principal, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}
