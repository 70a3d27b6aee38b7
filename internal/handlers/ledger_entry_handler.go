package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/models"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// LedgerEntryRequest represents the request payload for an expense or income entry
type LedgerEntryRequest struct {
	CarID    string   `json:"carId" binding:"max=64"`
	CarName  string   `json:"carName" binding:"max=100"`
	Category string   `json:"category" binding:"max=100"`
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency" binding:"omitempty,iso4217"`
	Date     string   `json:"date"`
	Notes    string   `json:"notes" binding:"max=1000"`
	Images   []string `json:"images" binding:"max=10"`
}

var ledgerSchema = validator.Schema{
	Required: []string{"carId", "category", "amount", "currency", "date"},
	Numbers: []validator.NumberRule{
		{Field: "amount", Bound: validator.Positive, Message: "Amount must be a positive number"},
	},
}

func (req *LedgerEntryRequest) date() (time.Time, error) {
	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date")
	}
	return date, nil
}

// ExpenseEntryHandler handles expense requests.
type ExpenseEntryHandler struct {
	pipeline *resource[models.ExpenseEntry, LedgerEntryRequest]
}

// NewExpenseEntryHandler creates a new ExpenseEntryHandler.
func NewExpenseEntryHandler(expenseService services.ExpenseEntryServicer) *ExpenseEntryHandler {
	return &ExpenseEntryHandler{pipeline: &resource[models.ExpenseEntry, LedgerEntryRequest]{
		service: expenseService,
		rules: resourceRules[models.ExpenseEntry, LedgerEntryRequest]{
			name:      "expense entry",
			listField: "entries",
			itemField: "entry",
			envelope:  exposeEnvelope,
			schema:    ledgerSchema,
			entryIDs:  true,
			filters:   true,
			deleted:   "Expense entry deleted successfully",
			toRecord: func(req *LedgerEntryRequest) (*models.ExpenseEntry, error) {
				date, err := req.date()
				if err != nil {
					return nil, err
				}
				return &models.ExpenseEntry{
					CarID:    req.CarID,
					CarName:  req.CarName,
					Category: req.Category,
					Amount:   req.Amount,
					Currency: req.Currency,
					Date:     date,
					Notes:    req.Notes,
					Images:   req.Images,
				}, nil
			},
		},
	}}
}

// ListExpenseEntries returns the user's expenses
// @Summary     List expense entries
// @Tags        expense-entries
// @Produce     json
// @Security    BearerAuth
// @Param       carId     query string false "Vehicle ID"
// @Param       category  query string false "Category"
// @Param       from      query string false "Start date"
// @Param       to        query string false "End date"
// @Param       page      query int    false "Page number"
// @Param       pageSize  query int    false "Items per page (max 100)"
// @Param       sortBy    query string false "Sort field"
// @Param       sortOrder query string false "asc or desc"
// @Success     200 {object} map[string]interface{} "Expense entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense-entries [get]
func (h *ExpenseEntryHandler) ListExpenseEntries(c *gin.Context) { h.pipeline.list(c) }

// GetExpenseEntry returns one expense entry
// @Summary     Get an expense entry
// @Tags        expense-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} map[string]interface{} "Expense entry"
// @Failure     404 {object} ErrorResponse "Expense entry not found"
// @Router      /expense-entries/{id} [get]
func (h *ExpenseEntryHandler) GetExpenseEntry(c *gin.Context) { h.pipeline.get(c) }

// CreateExpenseEntry records an expense
// @Summary     Create an expense entry
// @Tags        expense-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body LedgerEntryRequest true "Expense entry"
// @Success     201 {object} map[string]interface{} "Expense entry created"
// @Failure     400 {object} ErrorResponse "Missing required fields or invalid amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expense-entries [post]
func (h *ExpenseEntryHandler) CreateExpenseEntry(c *gin.Context) { h.pipeline.create(c) }

// UpdateExpenseEntry replaces an expense entry's fields
// @Summary     Update an expense entry
// @Tags        expense-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Entry ID"
// @Param       request body LedgerEntryRequest true "Expense entry"
// @Success     200 {object} map[string]interface{} "Expense entry updated"
// @Failure     400 {object} ErrorResponse "Invalid input or entry ID"
// @Failure     404 {object} ErrorResponse "Expense entry not found"
// @Router      /expense-entries/{id} [put]
func (h *ExpenseEntryHandler) UpdateExpenseEntry(c *gin.Context) { h.pipeline.update(c) }

// DeleteExpenseEntry removes an expense entry
// @Summary     Delete an expense entry
// @Tags        expense-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Expense entry deleted"
// @Failure     404 {object} ErrorResponse "Expense entry not found"
// @Router      /expense-entries/{id} [delete]
func (h *ExpenseEntryHandler) DeleteExpenseEntry(c *gin.Context) { h.pipeline.remove(c) }

// IncomeEntryHandler handles income requests.
type IncomeEntryHandler struct {
	pipeline *resource[models.IncomeEntry, LedgerEntryRequest]
}

// NewIncomeEntryHandler creates a new IncomeEntryHandler.
func NewIncomeEntryHandler(incomeService services.IncomeEntryServicer) *IncomeEntryHandler {
	return &IncomeEntryHandler{pipeline: &resource[models.IncomeEntry, LedgerEntryRequest]{
		service: incomeService,
		rules: resourceRules[models.IncomeEntry, LedgerEntryRequest]{
			name:      "income entry",
			listField: "entries",
			itemField: "entry",
			envelope:  exposeEnvelope,
			schema:    ledgerSchema,
			entryIDs:  true,
			filters:   true,
			deleted:   "Income entry deleted successfully",
			toRecord: func(req *LedgerEntryRequest) (*models.IncomeEntry, error) {
				date, err := req.date()
				if err != nil {
					return nil, err
				}
				return &models.IncomeEntry{
					CarID:    req.CarID,
					CarName:  req.CarName,
					Category: req.Category,
					Amount:   req.Amount,
					Currency: req.Currency,
					Date:     date,
					Notes:    req.Notes,
				}, nil
			},
		},
	}}
}

// ListIncomeEntries returns the user's income
// @Summary     List income entries
// @Tags        income-entries
// @Produce     json
// @Security    BearerAuth
// @Param       carId     query string false "Vehicle ID"
// @Param       category  query string false "Category"
// @Param       from      query string false "Start date"
// @Param       to        query string false "End date"
// @Param       page      query int    false "Page number"
// @Param       pageSize  query int    false "Items per page (max 100)"
// @Success     200 {object} map[string]interface{} "Income entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income-entries [get]
func (h *IncomeEntryHandler) ListIncomeEntries(c *gin.Context) { h.pipeline.list(c) }

// GetIncomeEntry returns one income entry
// @Summary     Get an income entry
// @Tags        income-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} map[string]interface{} "Income entry"
// @Failure     404 {object} ErrorResponse "Income entry not found"
// @Router      /income-entries/{id} [get]
func (h *IncomeEntryHandler) GetIncomeEntry(c *gin.Context) { h.pipeline.get(c) }

// CreateIncomeEntry records income
// @Summary     Create an income entry
// @Tags        income-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body LedgerEntryRequest true "Income entry"
// @Success     201 {object} map[string]interface{} "Income entry created"
// @Failure     400 {object} ErrorResponse "Missing required fields or invalid amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income-entries [post]
func (h *IncomeEntryHandler) CreateIncomeEntry(c *gin.Context) { h.pipeline.create(c) }

// UpdateIncomeEntry replaces an income entry's fields
// @Summary     Update an income entry
// @Tags        income-entries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Entry ID"
// @Param       request body LedgerEntryRequest true "Income entry"
// @Success     200 {object} map[string]interface{} "Income entry updated"
// @Failure     404 {object} ErrorResponse "Income entry not found"
// @Router      /income-entries/{id} [put]
func (h *IncomeEntryHandler) UpdateIncomeEntry(c *gin.Context) { h.pipeline.update(c) }

// DeleteIncomeEntry removes an income entry
// @Summary     Delete an income entry
// @Tags        income-entries
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Entry ID"
// @Success     200 {object} MessageResponse "Income entry deleted"
// @Failure     404 {object} ErrorResponse "Income entry not found"
// @Router      /income-entries/{id} [delete]
func (h *IncomeEntryHandler) DeleteIncomeEntry(c *gin.Context) { h.pipeline.remove(c) }
