package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffhub/internal/apperrors"
	"staffhub/internal/services"
)

// TenantHandlers serves the read-only tenant HTTP surface.
type TenantHandlers struct {
	tenantService services.TenantService
}

func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// TenantResponse is the wire shape of a tenant in list responses.
type TenantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTenantsResponse bundles a page of tenants with the filtered total.
type ListTenantsResponse struct {
	Tenants    []TenantResponse `json:"tenants"`
	TotalCount uint64           `json:"total_count"`
}

// ListTenants returns all tenants. No query-parameter filtering is wired;
// the default (unfiltered, unbounded) list input is used.
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	output, err := h.tenantService.List(c.Request().Context(), &services.ListTenantsInput{})
	if err != nil {
		return echo.NewHTTPError(apperrors.CategoryOf(err).HTTPStatus(), "Failed to list tenants")
	}

	tenants := make([]TenantResponse, 0, len(output.Tenants))
	for _, t := range output.Tenants {
		tenants = append(tenants, TenantResponse{ID: t.ID, Name: t.Name})
	}
	return c.JSON(http.StatusOK, ListTenantsResponse{
		Tenants:    tenants,
		TotalCount: output.TotalCount,
	})
}
