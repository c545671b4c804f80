package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/auth"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/services"
)

type AssistantHandler struct {
	service services.AssistantService
	seq     *services.Sequencer
	log     *zap.Logger
}

func NewAssistantHandler(service services.AssistantService, seq *services.Sequencer, log *zap.Logger) *AssistantHandler {
	if seq == nil {
		seq = services.NewSequencer(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistantHandler{service: service, seq: seq, log: log}
}

// HandleQuery handles POST /api/assistant/query
// @Summary Ask a question about the series data
// @Description The question is turned into a SELECT, run read-only, and the formatted rows are returned
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.AssistantRequest true "Question"
// @Success 200 {object} models.AssistantAnswer
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Model did not return a SELECT"
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Query failed"
// @Router /assistant/query [post]
func (h *AssistantHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req models.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	email := auth.EmailFromContext(r.Context())
	answer, err := services.Run(r.Context(), h.seq, email+":assistant", func(ctx context.Context) (*models.AssistantAnswer, error) {
		return h.service.Ask(ctx, email, &req)
	})
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

// HandleRuns handles GET /api/assistant/runs
// @Summary The caller's recent assistant questions
// @Tags assistant
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset"
// @Success 200 {array} models.AssistantRun
// @Router /assistant/runs [get]
func (h *AssistantHandler) HandleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit := parseLimit(r, "limit", 20)
	offset := parseLimit(r, "offset", 0)
	runs, err := h.service.History(r.Context(), auth.EmailFromContext(r.Context()), limit, offset)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if runs == nil {
		runs = []*models.AssistantRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}
