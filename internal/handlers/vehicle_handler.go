package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// VehicleHandler handles vehicle requests.
type VehicleHandler struct {
	pipeline *resource[models.Vehicle, VehicleRequest]
}

// VehicleRequest represents the request payload for creating or updating a vehicle
type VehicleRequest struct {
	Name               string                 `json:"name" binding:"max=100"`
	VehicleType        models.VehicleType     `json:"vehicleType" binding:"omitempty,vehicle_type"`
	Brand              string                 `json:"brand" binding:"max=100"`
	Model              string                 `json:"model" binding:"max=100"`
	Year               int                    `json:"year" binding:"omitempty,min=1886,max=2100"`
	Photo              string                 `json:"photo"`
	Description        string                 `json:"description" binding:"max=1000"`
	LicensePlate       string                 `json:"licensePlate" binding:"max=32"`
	VIN                string                 `json:"vin" binding:"max=32"`
	RegistrationExpiry string                 `json:"registrationExpiry"`
	UnitPreferences    UnitPreferencesRequest `json:"unitPreferences"`
}

// UnitPreferencesRequest holds a vehicle's display units.
type UnitPreferencesRequest struct {
	DistanceUnit        string `json:"distanceUnit" binding:"omitempty,distance_unit"`
	VolumeUnit          string `json:"volumeUnit" binding:"omitempty,volume_unit"`
	FuelConsumptionUnit string `json:"fuelConsumptionUnit" binding:"max=16"`
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService services.VehicleServicer, auditService services.AuditServicer) *VehicleHandler {
	return &VehicleHandler{pipeline: &resource[models.Vehicle, VehicleRequest]{
		service: vehicleService,
		audit:   auditService,
		rules: resourceRules[models.Vehicle, VehicleRequest]{
			name:      "vehicle",
			listField: "vehicles",
			itemField: "vehicle",
			envelope:  vehicleEnvelope,
			schema: validator.Schema{
				Required: []string{"name", "vehicleType"},
				Numbers: []validator.NumberRule{
					{Field: "year", Bound: validator.Positive, Message: "Year must be a valid positive number", Optional: true},
				},
			},
			partialUpdate: true,
			deleted:       "Vehicle deleted successfully",
			toRecord:      vehicleFromRequest,
		},
	}}
}

func vehicleFromRequest(req *VehicleRequest) (*models.Vehicle, error) {
	v := &models.Vehicle{
		Name:         req.Name,
		VehicleType:  req.VehicleType,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Photo:        req.Photo,
		Description:  req.Description,
		LicensePlate: req.LicensePlate,
		VIN:          req.VIN,
		UnitPreferences: models.UnitPreferences{
			DistanceUnit:        req.UnitPreferences.DistanceUnit,
			VolumeUnit:          req.UnitPreferences.VolumeUnit,
			FuelConsumptionUnit: req.UnitPreferences.FuelConsumptionUnit,
		},
	}
	if req.RegistrationExpiry != "" {
		expiry, err := parseFlexibleTime(req.RegistrationExpiry)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid registrationExpiry")
		}
		v.RegistrationExpiry = &expiry
	}
	return v, nil
}

// ListVehicles returns the user's vehicles
// @Summary     List vehicles
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number"
// @Param       pageSize  query int    false "Items per page (max 100)"
// @Param       sortBy    query string false "Sort field (name, brand, year, createdAt)"
// @Param       sortOrder query string false "asc or desc"
// @Success     200 {object} map[string]interface{} "Vehicles"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) { h.pipeline.list(c) }

// GetVehicle returns one vehicle by either identifier
// @Summary     Get a vehicle
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Vehicle ID"
// @Success     200 {object} map[string]interface{} "Vehicle"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vehicle not found"
// @Router      /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) { h.pipeline.get(c) }

// CreateVehicle registers a vehicle
// @Summary     Create a vehicle
// @Tags        vehicles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body VehicleRequest true "Vehicle details"
// @Success     201 {object} map[string]interface{} "Vehicle created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) { h.pipeline.create(c) }

// UpdateVehicle merges the submitted fields into a vehicle
// @Summary     Update a vehicle
// @Tags        vehicles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Vehicle ID"
// @Param       request body VehicleRequest true "Fields to change"
// @Success     200 {object} map[string]interface{} "Vehicle updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vehicle not found or not authorized to update"
// @Router      /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) { h.pipeline.update(c) }

// DeleteVehicle removes a vehicle
// @Summary     Delete a vehicle
// @Tags        vehicles
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Vehicle ID"
// @Success     200 {object} MessageResponse "Vehicle deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Vehicle not found or not authorized to delete"
// @Router      /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) { h.pipeline.remove(c) }
