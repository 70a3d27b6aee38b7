package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoledger/internal/auth"
	"autoledger/internal/catalog"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// catalogRoute holds the per-kind response field names and error envelope.
type catalogRoute struct {
	listField string
	itemField string
	envelope  envelope
}

var catalogRoutes = map[models.CatalogKind]catalogRoute{
	models.CatalogKindFuelCompany:     {listField: "companies", itemField: "company", envelope: plainEnvelope},
	models.CatalogKindFuelType:        {listField: "types", itemField: "type", envelope: plainEnvelope},
	models.CatalogKindExpenseCategory: {listField: "expenseCategories", itemField: "expenseCategory", envelope: successEnvelope},
	models.CatalogKindIncomeCategory:  {listField: "incomeCategories", itemField: "incomeCategory", envelope: successEnvelope},
}

// CatalogHandler serves one catalog kind: fuel companies, fuel types,
// expense categories or income categories.
type CatalogHandler struct {
	catalogService services.CatalogServicer
	kind           models.CatalogKind
	spec           catalog.Spec
	route          catalogRoute
}

// NewCatalogHandler creates a CatalogHandler for kind.
func NewCatalogHandler(catalogService services.CatalogServicer, kind models.CatalogKind) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		kind:           kind,
		spec:           catalog.For(kind),
		route:          catalogRoutes[kind],
	}
}

// CatalogCreateRequest represents the request payload for a custom entry
type CatalogCreateRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// CatalogUpdateRequest represents the request payload for changing a custom entry
type CatalogUpdateRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Active *bool   `json:"active"`
}

// List returns the built-in names merged with the caller's custom entries.
// Anonymous callers get the built-in list only.
// @Summary     List catalog entries
// @Tags        catalogs
// @Produce     json
// @Success     200 {object} map[string]interface{} "Entries sorted by name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /fuel-companies [get]
// @Router      /fuel-types [get]
// @Router      /expense-categories [get]
// @Router      /income-categories [get]
func (h *CatalogHandler) List(c *gin.Context) {
	identity := auth.FromContext(c.Request.Context())
	if !identity.Authenticated {
		entries := catalog.Merge(h.kind, nil, h.spec.Predefined, "", h.spec.FoldCase)
		c.JSON(http.StatusOK, gin.H{h.route.listField: entries})
		return
	}

	entries, err := h.catalogService.List(c.Request.Context(), identity.UserID, h.kind)
	if err != nil {
		respondWithError(c, h.route.envelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.route.listField: entries})
}

// Create adds a custom entry. A built-in name is answered with 200 and the
// built-in entry; nothing is stored.
// @Summary     Create a catalog entry
// @Tags        catalogs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CatalogCreateRequest true "Entry name"
// @Success     201 {object} map[string]interface{} "Entry created"
// @Success     200 {object} map[string]interface{} "Built-in entry"
// @Failure     400 {object} ErrorResponse "Name is required"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Already exists"
// @Router      /fuel-companies [post]
// @Router      /fuel-types [post]
// @Router      /expense-categories [post]
// @Router      /income-categories [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c, h.route.envelope)
	if !ok {
		return
	}

	limitBody(c)
	var req CatalogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			err = apperrors.ErrNameRequired
		}
		respondWithError(c, h.route.envelope, catalogBindError(err))
		return
	}

	entry, created, err := h.catalogService.Create(c.Request.Context(), identity.UserID, h.kind, req.Name)
	if err != nil {
		respondWithError(c, h.route.envelope, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"success": true, h.route.itemField: entry})
}

// Update renames or (de)activates a custom entry.
// @Summary     Update a catalog entry
// @Tags        catalogs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Entry ID"
// @Param       request body CatalogUpdateRequest true "Changes"
// @Success     200 {object} map[string]interface{} "Entry updated"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Predefined entry"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /fuel-companies/{id} [put]
// @Router      /fuel-types/{id} [put]
// @Router      /expense-categories/{id} [put]
// @Router      /income-categories/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c, h.route.envelope)
	if !ok {
		return
	}
	id := c.Param("id")
	if catalog.IsPseudoID(id) {
		respondWithError(c, h.route.envelope, h.predefined("modify"))
		return
	}

	limitBody(c)
	var req CatalogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, h.route.envelope, catalogBindError(err))
		return
	}

	entry, err := h.catalogService.Update(c.Request.Context(), identity.UserID, h.kind, id,
		services.CatalogPatch{Name: req.Name, Active: req.Active})
	if err != nil {
		respondWithError(c, h.route.envelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, h.route.itemField: entry})
}

// Delete removes a custom entry.
// @Summary     Delete a catalog entry
// @Tags        catalogs
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Entry deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Predefined entry"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /fuel-companies/{id} [delete]
// @Router      /fuel-types/{id} [delete]
// @Router      /expense-categories/{id} [delete]
// @Router      /income-categories/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c, h.route.envelope)
	if !ok {
		return
	}
	id := c.Param("id")
	if catalog.IsPseudoID(id) {
		respondWithError(c, h.route.envelope, h.predefined("delete"))
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), identity.UserID, h.kind, id); err != nil {
		respondWithError(c, h.route.envelope, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: h.spec.Label + " deleted successfully"})
}

// catalogBindError reports an over-long name as "Invalid name" and anything
// unreadable as an invalid body.
func catalogBindError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if validator.IsFieldError(err) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.FieldMessage(err))
	}
	return bodyError(err)
}

func (h *CatalogHandler) predefined(verb string) error {
	return apperrors.WithMessage(apperrors.ErrPredefinedEntry, "Cannot "+verb+" predefined "+h.spec.Plural)
}
