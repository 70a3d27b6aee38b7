package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/logger"
	"autoledger/internal/services"
)

// MaintenanceHandler serves the identifier diagnostic and cleanup endpoints.
type MaintenanceHandler struct {
	maintenanceService services.MaintenanceServicer
	auditService       services.AuditServicer
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService services.MaintenanceServicer, auditService services.AuditServicer) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, auditService: auditService}
}

// DiagnosticInfo is the diagnostic report plus the client's echoed local state.
type DiagnosticInfo struct {
	*services.Diagnosis
	LocalStorage any `json:"localStorage"`
}

// Diagnostic reports how the caller's vehicles are stored
// @Summary     Vehicle identifier diagnostic
// @Tags        maintenance
// @Produce     json
// @Security    BearerAuth
// @Param       localStorage query string false "Client-side state as JSON, echoed back"
// @Success     200 {object} map[string]interface{} "Diagnostic info"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Error running diagnostic"
// @Router      /diagnostic [get]
func (h *MaintenanceHandler) Diagnostic(c *gin.Context) {
	identity, ok := requireIdentity(c, exposeEnvelope)
	if !ok {
		return
	}

	var local any
	if raw := c.Query("localStorage"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &local); err != nil {
			logger.Get().Warnw("ignoring malformed localStorage parameter",
				"error", err.Error(),
				"user_id", identity.UserID,
			)
			local = nil
		}
	}

	diagnosis, err := h.maintenanceService.Diagnose(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, exposeEnvelope, relabel(err, "Error running diagnostic"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"diagnosticInfo": DiagnosticInfo{Diagnosis: diagnosis, LocalStorage: local},
	})
}

// Cleanup backfills missing identifiers across the caller's records
// @Summary     Repair record identifiers
// @Tags        maintenance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Per-collection results"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Error during cleanup"
// @Router      /cleanup [post]
func (h *MaintenanceHandler) Cleanup(c *gin.Context) {
	identity, ok := requireIdentity(c, exposeEnvelope)
	if !ok {
		return
	}

	report, err := h.maintenanceService.Repair(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, exposeEnvelope, relabel(err, "Error during cleanup"))
		return
	}

	h.auditService.Record(c.Request.Context(), services.AuditEvent{
		UserID:       identity.UserID,
		Action:       "CLEANUP",
		ResourceType: "maintenance",
		IPAddress:    c.ClientIP(),
		Changes: map[string]interface{}{
			"vehicles_fixed":        report.Vehicles.Fixed,
			"fuel_entries_fixed":    report.FuelEntries.Fixed,
			"expense_entries_fixed": report.ExpenseEntries.Fixed,
		},
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "results": report})
}

// relabel replaces the message of a server-side failure, keeping its cause.
func relabel(err error, message string) error {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return apperrors.WithDetail(apperrors.WithMessage(apperrors.ErrInternalServer, message), err)
	}
	if appErr.StatusCode < http.StatusInternalServerError {
		return err
	}
	return apperrors.WithMessage(appErr, message)
}
