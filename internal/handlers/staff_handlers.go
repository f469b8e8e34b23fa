package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffhub/internal/apperrors"
	"staffhub/internal/services"
)

// StaffHandlers serves the read-only staff HTTP surface.
type StaffHandlers struct {
	staffService services.StaffService
}

func NewStaffHandlers(staffService services.StaffService) *StaffHandlers {
	return &StaffHandlers{staffService: staffService}
}

// StaffResponse is the wire shape of a staff member in list responses.
type StaffResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// ListStaffsResponse bundles a page of staff with the filtered total.
type ListStaffsResponse struct {
	Staffs     []StaffResponse `json:"staffs"`
	TotalCount uint64          `json:"total_count"`
}

// ListStaffs returns all staff members with the default list input.
func (h *StaffHandlers) ListStaffs(c echo.Context) error {
	output, err := h.staffService.List(c.Request().Context(), &services.ListStaffsInput{})
	if err != nil {
		return echo.NewHTTPError(apperrors.CategoryOf(err).HTTPStatus(), "Failed to list staffs")
	}

	staffs := make([]StaffResponse, 0, len(output.Staffs))
	for _, s := range output.Staffs {
		staffs = append(staffs, StaffResponse{
			ID:          s.ID,
			TenantID:    s.TenantID,
			DisplayName: s.DisplayName,
			Email:       s.Email,
		})
	}
	return c.JSON(http.StatusOK, ListStaffsResponse{
		Staffs:     staffs,
		TotalCount: output.TotalCount,
	})
}
