package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/services"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAssistantHandler_Query(t *testing.T) {
	svc := &mockAssistant{answer: &models.AssistantAnswer{
		RunID:   "run-1",
		SQL:     "SELECT spv FROM series_data",
		Columns: []string{"spv"},
		Headers: []string{"SPV"},
		Rows:    [][]string{{"SPV One"}},
	}}
	h := NewAssistantHandler(svc, nil, nil)

	req := withEmail(postJSON("/api/assistant/query", `{"question":"which spvs?"}`), "ana@example.com")
	rw := httptest.NewRecorder()
	h.HandleQuery(rw, req)

	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
	var answer models.AssistantAnswer
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&answer))
	assert.Equal(t, "run-1", answer.RunID)
	assert.Equal(t, []string{"ana@example.com: which spvs?"}, svc.asked)
}

func TestAssistantHandler_QueryErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"blank question", `{"question":"  "}`, nil, http.StatusBadRequest},
		{"not a select", `{"question":"drop it"}`, services.ErrNotSelect, http.StatusUnprocessableEntity},
		{"query failed", `{"question":"q"}`, &services.QueryError{SQL: "SELECT x", Err: errors.New(`column "x" does not exist`)}, http.StatusBadGateway},
		{"model failed", `{"question":"q"}`, errors.New("failed to generate SQL: timeout"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAssistantHandler(&mockAssistant{err: tc.err}, nil, nil)
			rw := httptest.NewRecorder()
			h.HandleQuery(rw, postJSON("/api/assistant/query", tc.body))
			assert.Equal(t, tc.status, rw.Code, rw.Body.String())
		})
	}
}

func TestAssistantHandler_QueryErrorIsVerbatim(t *testing.T) {
	qe := &services.QueryError{SQL: "SELECT x", Err: errors.New(`column "x" does not exist`)}
	h := NewAssistantHandler(&mockAssistant{err: qe}, nil, nil)
	rw := httptest.NewRecorder()
	h.HandleQuery(rw, postJSON("/api/assistant/query", `{"question":"q"}`))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&body))
	assert.Equal(t, `column "x" does not exist`, body.Error)
}

func TestAssistantHandler_RateLimited(t *testing.T) {
	svc := &mockAssistant{answer: &models.AssistantAnswer{}}
	h := RateLimit(rate.NewLimiter(rate.Limit(0), 1))(http.HandlerFunc(NewAssistantHandler(svc, nil, nil).HandleQuery))

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, postJSON("/api/assistant/query", `{"question":"one"}`))
	assert.Equal(t, http.StatusOK, rw.Code)

	rw = httptest.NewRecorder()
	h.ServeHTTP(rw, postJSON("/api/assistant/query", `{"question":"two"}`))
	assert.Equal(t, http.StatusTooManyRequests, rw.Code)
	assert.Len(t, svc.asked, 1)
}

func TestAssistantHandler_Runs(t *testing.T) {
	h := NewAssistantHandler(&mockAssistant{}, nil, nil)
	rw := httptest.NewRecorder()
	h.HandleRuns(rw, withEmail(httptest.NewRequest(http.MethodGet, "/api/assistant/runs", nil), "ana@example.com"))
	require.Equal(t, http.StatusOK, rw.Code)
	assert.JSONEq(t, `[]`, rw.Body.String())

	rw = httptest.NewRecorder()
	h.HandleRuns(rw, httptest.NewRequest(http.MethodDelete, "/api/assistant/runs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rw.Code)
}
