package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/ids"
	"autoledger/internal/pagination"
	"autoledger/internal/services"
	"autoledger/internal/validator"
)

// resourceRules is the rule table one user-scoped resource is served from.
// T is the stored record, R the request body it is built from.
type resourceRules[T any, R any] struct {
	// name is the singular resource name used in audit records and messages.
	name      string
	listField string
	itemField string
	envelope  envelope
	schema    validator.Schema
	// partialUpdate drops the required-field check on PUT.
	partialUpdate bool
	// entryIDs requires native 24-hex ids on id routes.
	entryIDs bool
	// filters enables the history-table query filters on list.
	filters  bool
	deleted  string
	toRecord func(req *R) (*T, error)
}

// resource runs the authorize, validate, scope, execute and shape steps
// shared by vehicles and the entry resources.
type resource[T any, R any] struct {
	service services.ResourceServicer[T]
	audit   services.AuditServicer
	rules   resourceRules[T, R]
}

func (p *resource[T, R]) list(c *gin.Context) {
	identity, ok := requireIdentity(c, p.rules.envelope)
	if !ok {
		return
	}

	var filter services.EntryFilter
	if p.rules.filters {
		var err error
		if filter, err = parseEntryFilter(c); err != nil {
			respondWithError(c, p.rules.envelope, err)
			return
		}
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, p.rules.envelope, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid pagination parameters"))
		return
	}
	page.Defaults()

	records, total, err := p.service.List(c.Request.Context(), identity.UserID, filter, page)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}
	if records == nil {
		records = []T{}
	}

	body := gin.H{"success": true, p.rules.listField: records}
	if page.Enabled() {
		body["pagination"] = pagination.NewMeta(page, total)
	}
	c.JSON(http.StatusOK, body)
}

func (p *resource[T, R]) get(c *gin.Context) {
	identity, ok := requireIdentity(c, p.rules.envelope)
	if !ok {
		return
	}
	id, err := p.targetID(c)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	rec, err := p.service.Get(c.Request.Context(), identity.UserID, id)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, p.rules.itemField: rec})
}

func (p *resource[T, R]) create(c *gin.Context) {
	identity, ok := requireIdentity(c, p.rules.envelope)
	if !ok {
		return
	}

	rec, body, err := p.decode(c, p.rules.schema)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	created, err := p.service.Create(c.Request.Context(), identity.UserID, rec)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	p.log(c, identity.UserID, "CREATE", created, body)
	c.JSON(http.StatusCreated, gin.H{"success": true, p.rules.itemField: created})
}

func (p *resource[T, R]) update(c *gin.Context) {
	identity, ok := requireIdentity(c, p.rules.envelope)
	if !ok {
		return
	}
	id, err := p.targetID(c)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	schema := p.rules.schema
	if p.rules.partialUpdate {
		schema.Required = nil
		schema.Numbers = make([]validator.NumberRule, len(p.rules.schema.Numbers))
		for i, rule := range p.rules.schema.Numbers {
			rule.Optional = true
			schema.Numbers[i] = rule
		}
	}
	rec, body, err := p.decode(c, schema)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	updated, err := p.service.Update(c.Request.Context(), identity.UserID, id, rec, updateColumns[T](body))
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	p.log(c, identity.UserID, "UPDATE", updated, body)
	c.JSON(http.StatusOK, gin.H{"success": true, p.rules.itemField: updated})
}

func (p *resource[T, R]) remove(c *gin.Context) {
	identity, ok := requireIdentity(c, p.rules.envelope)
	if !ok {
		return
	}
	id, err := p.targetID(c)
	if err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	if err := p.service.Delete(c.Request.Context(), identity.UserID, id); err != nil {
		respondWithError(c, p.rules.envelope, err)
		return
	}

	if p.audit != nil {
		p.audit.Record(c.Request.Context(), p.event(c, identity.UserID, "DELETE", id, nil))
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: p.rules.deleted})
}

// decode validates the body against schema and builds the record.
func (p *resource[T, R]) decode(c *gin.Context, schema validator.Schema) (*T, map[string]any, error) {
	body, err := decodeBody(c)
	if err != nil {
		return nil, nil, err
	}
	if err := schema.Validate(body); err != nil {
		return nil, nil, err
	}

	var req R
	if err := bindBody(body, &req); err != nil {
		return nil, nil, err
	}
	rec, err := p.rules.toRecord(&req)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

// targetID returns the :id route parameter.
func (p *resource[T, R]) targetID(c *gin.Context) (string, error) {
	id := c.Param("id")
	switch id {
	case "", "undefined", "null":
		if p.rules.entryIDs {
			return "", apperrors.ErrMissingEntryID
		}
		return "", apperrors.WithMessage(apperrors.ErrMissingEntryID, "Missing or invalid "+p.rules.name+" ID")
	}
	if p.rules.entryIDs && !ids.IsValidObjectID(id) {
		return "", apperrors.ErrBadEntryID
	}
	return id, nil
}

func (p *resource[T, R]) log(c *gin.Context, userID, verb string, rec *T, body map[string]any) {
	if p.audit == nil {
		return
	}
	var resourceID string
	if r, ok := any(rec).(ids.Identifiable); ok {
		resourceID = r.CanonicalID()
	}
	changes := make(map[string]interface{}, len(body))
	for k, v := range body {
		if !protectedKeys[k] {
			changes[k] = v
		}
	}
	p.audit.Record(c.Request.Context(), p.event(c, userID, verb, resourceID, changes))
}

func (p *resource[T, R]) event(c *gin.Context, userID, verb, resourceID string, changes map[string]interface{}) services.AuditEvent {
	return services.AuditEvent{
		UserID:       userID,
		Action:       verb + "_" + strings.ToUpper(p.rules.name),
		ResourceType: p.rules.name,
		ResourceID:   resourceID,
		IPAddress:    c.ClientIP(),
		Changes:      changes,
	}
}

// parseEntryFilter reads the history-table filters. A bare "to" date covers
// the whole day.
func parseEntryFilter(c *gin.Context) (services.EntryFilter, error) {
	filter := services.EntryFilter{
		CarID:       c.Query("carId"),
		Category:    c.Query("category"),
		FuelCompany: c.Query("fuelCompany"),
		FuelType:    c.Query("fuelType"),
	}

	if s := c.Query("from"); s != "" {
		from, err := parseFlexibleTime(s)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date")
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := parseFlexibleTime(s)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date")
		}
		if isDateOnly(s) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.To = &to
	}
	return filter, nil
}
