package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// FuelEntryHandler handles fuel log requests.
type FuelEntryHandler struct {
	pipeline *resource[models.FuelEntry, FuelEntryRequest]
	now      func() time.Time
}

// FuelEntryRequest represents the request payload for a fuel entry
type FuelEntryRequest struct {
	CarID            string   `json:"carId" binding:"max=64"`
	CarName          string   `json:"carName" binding:"max=100"`
	FuelCompany      string   `json:"fuelCompany" binding:"max=100"`
	FuelType         string   `json:"fuelType" binding:"max=100"`
	Mileage          float64  `json:"mileage"`
	DistanceUnit     string   `json:"distanceUnit" binding:"omitempty,distance_unit"`
	Volume           float64  `json:"volume"`
	VolumeUnit       string   `json:"volumeUnit" binding:"omitempty,volume_unit"`
	Cost             float64  `json:"cost"`
	Currency         string   `json:"currency" binding:"omitempty,iso4217"`
	Date             string   `json:"date"`
	Time             string   `json:"time" binding:"omitempty,datetime=15:04"`
	Location         string   `json:"location" binding:"max=255"`
	PartialFuelUp    bool     `json:"partialFuelUp"`
	PaymentType      string   `json:"paymentType" binding:"max=50"`
	TyrePressure     *float64 `json:"tyrePressure"`
	TyrePressureUnit string   `json:"tyrePressureUnit" binding:"omitempty,pressure_unit"`
	Tags             []string `json:"tags" binding:"max=20,dive,max=50"`
	Notes            string   `json:"notes" binding:"max=1000"`
	Images           []string `json:"images" binding:"max=10"`
}

// fuelSchema checks volume, then mileage, then cost.
var fuelSchema = validator.Schema{
	Required: []string{"carId", "fuelCompany", "fuelType", "mileage", "volume", "cost", "currency", "date", "paymentType"},
	Numbers: []validator.NumberRule{
		{Field: "volume", Bound: validator.NonNegative, Message: "Volume must be a valid positive number"},
		{Field: "mileage", Bound: validator.NonNegative, Message: "Mileage must be a valid positive number"},
		{Field: "cost", Bound: validator.NonNegative, Message: "Cost must be a valid positive number"},
		{Field: "tyrePressure", Bound: validator.NonNegative, Message: "Tyre pressure must be a valid positive number", Optional: true},
	},
}

// NewFuelEntryHandler creates a new FuelEntryHandler.
func NewFuelEntryHandler(fuelService services.FuelEntryServicer) *FuelEntryHandler {
	h := &FuelEntryHandler{now: time.Now}
	h.pipeline = &resource[models.FuelEntry, FuelEntryRequest]{
		service: fuelService,
		rules: resourceRules[models.FuelEntry, FuelEntryRequest]{
			name:      "fuel entry",
			listField: "entries",
			itemField: "entry",
			envelope:  plainEnvelope,
			schema:    fuelSchema,
			entryIDs:  true,
			filters:   true,
			deleted:   "Fuel entry deleted successfully",
			toRecord:  h.fromRequest,
		},
	}
	return h
}

func (h *FuelEntryHandler) fromRequest(req *FuelEntryRequest) (*models.FuelEntry, error) {
	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date")
	}
	entryTime := req.Time
	if entryTime == "" {
		entryTime = h.now().Format("15:04")
	}

	return &models.FuelEntry{
		CarID:            req.CarID,
		CarName:          req.CarName,
		FuelCompany:      req.FuelCompany,
		FuelType:         req.FuelType,
		Mileage:          req.Mileage,
		DistanceUnit:     req.DistanceUnit,
		Volume:           req.Volume,
		VolumeUnit:       req.VolumeUnit,
		Cost:             req.Cost,
		Currency:         req.Currency,
		Date:             date,
		Time:             entryTime,
		Location:         req.Location,
		PartialFuelUp:    req.PartialFuelUp,
		PaymentType:      req.PaymentType,
		TyrePressure:     req.TyrePressure,
		TyrePressureUnit: req.TyrePressureUnit,
		Tags:             req.Tags,
		Notes:            req.Notes,
		Images:           req.Images,
	}, nil
}

// ListFuelEntries returns the user's fuel log
// @Summary     List fuel entries
// @Tags        fuel-entries
// @Produce     json
// @Security    BearerAuth
// @Param       carId       query string false "Vehicle ID"
// @Param       from        query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       to          query string false "End date (YYYY-MM-DD or RFC3339)"
// @Param       fuelCompany query string false "Fuel company"
// @Param       fuelType    query string false "Fuel type"
// @Param       page        query int    false "Page number"
// @Param       pageSize    query int    false "Items per page (max 100)"
// @Param       sortBy      query string false "Sort field"
// @Param       sortOrder   query string false "asc or desc"
// @Success     200 {object} map[string]interface{} "Fuel entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fuel-entries [get]
func (h *FuelEntryHandler) ListFuelEntries(c *gin.Context) { h.pipeline.list(c) }

// GetFuelEntry returns one fuel entry
// @Summary     Get a fuel entry
// @Tags        fuel-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} map[string]interface{} "Fuel entry"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Fuel entry not found"
// @Router      /fuel-entries/{id} [get]
func (h *FuelEntryHandler) GetFuelEntry(c *gin.Context) { h.pipeline.get(c) }

// CreateFuelEntry records a fuel purchase
// @Summary     Create a fuel entry
// @Tags        fuel-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FuelEntryRequest true "Fuel entry"
// @Success     201 {object} map[string]interface{} "Fuel entry created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fuel-entries [post]
func (h *FuelEntryHandler) CreateFuelEntry(c *gin.Context) { h.pipeline.create(c) }

// UpdateFuelEntry replaces a fuel entry's fields
// @Summary     Update a fuel entry
// @Tags        fuel-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Entry ID"
// @Param       request body FuelEntryRequest true "Fuel entry"
// @Success     200 {object} map[string]interface{} "Fuel entry updated"
// @Failure     400 {object} ErrorResponse "Invalid input or entry ID"
// @Failure     404 {object} ErrorResponse "Fuel entry not found"
// @Router      /fuel-entries/{id} [put]
func (h *FuelEntryHandler) UpdateFuelEntry(c *gin.Context) { h.pipeline.update(c) }

// DeleteFuelEntry removes a fuel entry
// @Summary     Delete a fuel entry
// @Tags        fuel-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Fuel entry deleted"
// @Failure     400 {object} ErrorResponse "Invalid entry ID"
// @Failure     404 {object} ErrorResponse "Fuel entry not found"
// @Router      /fuel-entries/{id} [delete]
func (h *FuelEntryHandler) DeleteFuelEntry(c *gin.Context) { h.pipeline.remove(c) }
