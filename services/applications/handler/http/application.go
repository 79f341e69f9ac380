package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yuanzh/recruit-portal/internal/pkg/logger"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
	"github.com/yuanzh/recruit-portal/internal/utils"
	"github.com/yuanzh/recruit-portal/services/applications"
)

// ApplicationHandler handles the public applicant-facing HTTP endpoints
type ApplicationHandler struct {
	applicationUC applications.ApplicationUC
	smsDebug      bool
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUC applications.ApplicationUC, smsDebug bool) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: applicationUC,
		smsDebug:      smsDebug,
	}
}

// RequestCode handles verification-code requests
func (h *ApplicationHandler) RequestCode(c echo.Context) error {
	var req models.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	code, err := h.applicationUC.RequestCode(c.Request().Context(), req.Phone)
	if err != nil {
		if errors.Is(err, applications.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}
		logger.Error("Failed to issue verification code",
			logger.Err(err),
			logger.String("phone", req.Phone))
		return utils.InternalServerErrorResponse(c, "Failed to send verification code")
	}

	data := map[string]interface{}{
		"expires_in": int(applications.CodeTTL.Seconds()),
	}
	// The code itself is never revealed outside debug deployments.
	if h.smsDebug {
		data["debug_code"] = code
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", data)
}

// SubmitApplication handles public application submissions
func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req models.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	app, err := h.applicationUC.SubmitApplication(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrNameRequired):
			return utils.BadRequestResponse(c, "Name is required")
		case errors.Is(err, applications.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number")
		case errors.Is(err, applications.ErrCodeRequired):
			return utils.BadRequestResponse(c, "Verification code is required")
		case errors.Is(err, applications.ErrCodeInvalid):
			return utils.BadRequestResponse(c, "Verification code is invalid or expired")
		case errors.Is(err, applications.ErrInvalidIDCard):
			return utils.BadRequestResponse(c, "Invalid identity number")
		}
		logger.Error("Failed to submit application",
			logger.Err(err),
			logger.String("phone", req.Phone))
		return utils.InternalServerErrorResponse(c, "Failed to submit application")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Application submitted successfully", app)
}

// LookupStatus handles self-service progress queries
func (h *ApplicationHandler) LookupStatus(c echo.Context) error {
	var req models.StatusLookupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.applicationUC.LookupStatus(c.Request().Context(), req.Phone, req.IDNumber)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number")
		case errors.Is(err, applications.ErrInvalidIDCard):
			return utils.BadRequestResponse(c, "Invalid identity number")
		case errors.Is(err, applications.ErrApplicationNotFound):
			return utils.NotFoundResponse(c, "No matching application found")
		}
		logger.Error("Failed to look up application status", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to look up application")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Application found", result)
}

// GetStats handles the public dashboard counters
func (h *ApplicationHandler) GetStats(c echo.Context) error {
	stats, err := h.applicationUC.GetStats(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get stats", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve stats")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved successfully", stats)
}
