package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoledger/internal/services"
)

// PreferencesHandler handles user settings requests.
type PreferencesHandler struct {
	preferencesService services.PreferencesServicer
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferencesService services.PreferencesServicer) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

var knownPreferenceKeys = jsonKeys(services.PreferencesPatch{})

// GetPreferences returns the caller's settings, creating the defaults on first use
// @Summary     Get user preferences
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Preferences"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /user-preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	identity, ok := requireIdentity(c, plainEnvelope)
	if !ok {
		return
	}

	prefs, err := h.preferencesService.Get(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, plainEnvelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}

// UpdatePreferences changes the submitted settings. Keys outside the known
// set are kept in the free-form extra map; a null value removes the key.
// @Summary     Update user preferences
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.PreferencesPatch true "Settings to change"
// @Success     200 {object} map[string]interface{} "Preferences"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /user-preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	identity, ok := requireIdentity(c, plainEnvelope)
	if !ok {
		return
	}

	body, err := decodeBody(c)
	if err != nil {
		respondWithError(c, plainEnvelope, err)
		return
	}

	var patch services.PreferencesPatch
	if err := bindBody(body, &patch); err != nil {
		respondWithError(c, plainEnvelope, err)
		return
	}
	extra := map[string]any{}
	for k, v := range body {
		if knownPreferenceKeys[k] || protectedKeys[k] {
			continue
		}
		// A round-tripped settings object carries its extras nested.
		if nested, ok := v.(map[string]any); ok && k == "extra" {
			for nk, nv := range nested {
				extra[nk] = nv
			}
			continue
		}
		extra[k] = v
	}
	if len(extra) > 0 {
		patch.Extra = extra
	}

	prefs, err := h.preferencesService.Update(c.Request.Context(), identity.UserID, patch)
	if err != nil {
		respondWithError(c, plainEnvelope, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}
