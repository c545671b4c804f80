package handlers

import (
	"net/http"

	"github.com/aliyacapital/seriesdash/internal/schema"
)

// HandleSchema handles GET /api/schema
// @Summary Column descriptor for series_data
// @Tags schema
// @Produce json
// @Success 200 {array} schema.Column
// @Router /schema [get]
func HandleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, schema.Columns())
}
