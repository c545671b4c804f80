package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/auth"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type PreferencesHandler struct {
	prefs services.PreferencesService
	log   *zap.Logger
}

func NewPreferencesHandler(prefs services.PreferencesService, log *zap.Logger) *PreferencesHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreferencesHandler{prefs: prefs, log: log}
}

// PreferencesUpdate sets the remembered selections. Omitted fields are left
// unchanged.
type PreferencesUpdate struct {
	LastInvestor *string `json:"last_investor"`
	LastSeries   *string `json:"last_series"`
}

// HandlePreferences handles GET and PUT /api/preferences
// @Summary Read or update the caller's remembered selections
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body PreferencesUpdate false "New selections (PUT)"
// @Success 200 {object} models.UserPreferences
// @Router /preferences [get]
// @Router /preferences [put]
func (h *PreferencesHandler) HandlePreferences(w http.ResponseWriter, r *http.Request) {
	email := auth.EmailFromContext(r.Context())
	if email == "" {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	switch r.Method {
	case http.MethodGet:
	case http.MethodPut:
		var req PreferencesUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}
		if req.LastInvestor != nil {
			if err := h.prefs.RememberInvestor(r.Context(), email, *req.LastInvestor); err != nil {
				writeServiceError(w, h.log, err)
				return
			}
		}
		if req.LastSeries != nil {
			if err := h.prefs.RememberSeries(r.Context(), email, *req.LastSeries); err != nil {
				writeServiceError(w, h.log, err)
				return
			}
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	p, err := h.prefs.Get(r.Context(), email)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
