package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yuanzh/recruit-portal/internal/pkg/logger"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/internal/utils"
	"github.com/yuanzh/recruit-portal/services/applications"
)

// AdminHandler handles the staff review endpoints
type AdminHandler struct {
	applicationUC applications.ApplicationUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(applicationUC applications.ApplicationUC) *AdminHandler {
	return &AdminHandler{
		applicationUC: applicationUC,
	}
}

// ListApplications handles the staff application listing with optional
// status and free-text filters ("all" means no status constraint).
func (h *AdminHandler) ListApplications(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "all" {
		status = ""
	}

	filter := models.ApplicationFilter{
		Status: models.Status(status),
		Query:  c.QueryParam("q"),
	}

	apps, err := h.applicationUC.ListApplications(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, applications.ErrInvalidStatus) {
			return utils.BadRequestResponse(c, "Invalid status filter")
		}
		logger.Error("Failed to list applications", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list applications")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Applications retrieved successfully", apps)
}

// GetApplication handles the staff detail view, including the ledger
func (h *AdminHandler) GetApplication(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid application ID")
	}

	result, err := h.applicationUC.GetApplication(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, applications.ErrApplicationNotFound) {
			return utils.NotFoundResponse(c, "Application not found")
		}
		logger.Error("Failed to get application",
			logger.Err(err),
			logger.Int64("application_id", id))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve application")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Application retrieved successfully", result)
}

// UpdateStatus handles staff status changes with an optional notification
// message and SMS dispatch.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid application ID")
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	app, err := h.applicationUC.UpdateStatus(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidStatus):
			return utils.BadRequestResponse(c, "Invalid status value")
		case errors.Is(err, applications.ErrApplicationNotFound):
			return utils.NotFoundResponse(c, "Application not found")
		}
		logger.Error("Failed to update application status",
			logger.Err(err),
			logger.Int64("application_id", id))
		return utils.InternalServerErrorResponse(c, "Failed to update status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", app)
}
