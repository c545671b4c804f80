package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/models"
)

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain", "SELECT * FROM series_data", "SELECT * FROM series_data", false},
		{"lowercase with spaces", "  select investor from series_data  ", "select investor from series_data", false},
		{"trailing semicolon", "SELECT 1;  ", "SELECT 1", false},
		{"semicolon then space", "SELECT 1 ;\n", "SELECT 1", false},
		{"fenced", "```sql\nSELECT spv FROM series_data;\n```", "SELECT spv FROM series_data", false},
		{"fenced no language", "```\nSelect 1\n```", "Select 1", false},
		{"multi statement", "SELECT 1; DROP TABLE series_data", "", true},
		{"two trailing semicolons", "SELECT 1;;", "", true},
		{"delete", "DELETE FROM series_data", "", true},
		{"prose", "Here is your query: SELECT 1", "", true},
		{"with cte", "WITH x AS (SELECT 1) SELECT * FROM x", "", true},
		{"empty", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSQL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotSelect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatResult(t *testing.T) {
	res := &models.QueryResult{
		Columns: []string{"total_fees", "subscription_amount", "investor", "percent_ownership"},
		Rows: []map[string]any{
			{"total_fees": json.Number("1234.567"), "subscription_amount": 1234.5, "investor": "Acme", "percent_ownership": 0.05},
			{"total_fees": nil, "subscription_amount": nil, "investor": "Bolt", "percent_ownership": "n/a"},
		},
	}
	ans := FormatResult(res)
	assert.Equal(t, []string{"investor", "percent_ownership", "subscription_amount", "total_fees"}, ans.Columns)
	assert.Equal(t, []string{"Investor", "% Ownership", "Subscription Amount", "total_fees"}, ans.Headers)
	require.Len(t, ans.Rows, 2)
	assert.Equal(t, []string{"Acme", "5.00%", "$1,234.50", "1,234.57"}, ans.Rows[0])
	assert.Equal(t, []string{"Bolt", "n/a", "", ""}, ans.Rows[1])
	assert.False(t, ans.NoRows)

	empty := FormatResult(&models.QueryResult{Columns: []string{"investor"}})
	assert.True(t, empty.NoRows)
	assert.Equal(t, NoRowsMessage, empty.Message)
	assert.Empty(t, empty.Rows)
}

func TestSQLSystemPromptListsSchema(t *testing.T) {
	p := SQLSystemPrompt()
	assert.Contains(t, p, "series_data")
	assert.Contains(t, p, "- sheet_name text -- Series (text)")
	assert.Contains(t, p, "percent_ownership")
	assert.Less(t, strings.Index(p, "sheet_name"), strings.Index(p, "net_subscription"))
}

func TestAssistantService_AskHappyPathWithSummary(t *testing.T) {
	llm := &mockCompleter{replies: []string{"```sql\nSELECT investor, subscription_amount FROM series_data;\n```", "Acme leads."}}
	exec := &mockExecutor{result: &models.QueryResult{
		Columns: []string{"subscription_amount", "investor"},
		Rows:    []map[string]any{{"investor": "Acme", "subscription_amount": 100.0}},
	}}
	runs := newMockRunRepo()
	svc := NewAssistantService(llm, exec, runs, 0, nil)

	ans, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: " who invested most? ", Summarize: true})
	require.NoError(t, err)
	assert.Equal(t, "SELECT investor, subscription_amount FROM series_data", ans.SQL)
	assert.Equal(t, []string{"SELECT investor, subscription_amount FROM series_data"}, exec.queries)
	assert.Equal(t, []string{"investor", "subscription_amount"}, ans.Columns)
	assert.Equal(t, [][]string{{"Acme", "$100.00"}}, ans.Rows)
	assert.Equal(t, "Acme leads.", ans.Summary)

	require.Len(t, llm.users, 2)
	assert.Equal(t, "who invested most?", llm.users[0])
	assert.Contains(t, llm.users[1], `"investor":"Acme"`)

	run := runs.runs[ans.RunID]
	require.NotNil(t, run)
	assert.Equal(t, models.RunStatusSucceeded, run.Status)
	assert.Equal(t, 1, run.RowCount)
	assert.Equal(t, "mock", run.Provider)
}

func TestAssistantService_RejectsNonSelect(t *testing.T) {
	llm := &mockCompleter{replies: []string{"DELETE FROM series_data"}}
	exec := &mockExecutor{}
	runs := newMockRunRepo()
	svc := NewAssistantService(llm, exec, runs, 0, nil)

	_, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "delete everything"})
	assert.ErrorIs(t, err, ErrNotSelect)
	assert.Empty(t, exec.queries, "rejected SQL must never run")

	require.Len(t, runs.runs, 1)
	for _, r := range runs.runs {
		assert.Equal(t, models.RunStatusRejected, r.Status)
		require.NotNil(t, r.Error)
		assert.Equal(t, "model did not return a SELECT", *r.Error)
	}
}

func TestAssistantService_ExecutionErrorIsVerbatim(t *testing.T) {
	llm := &mockCompleter{replies: []string{"SELECT nope FROM series_data"}}
	exec := &mockExecutor{err: errors.New(`column "nope" does not exist`)}
	svc := NewAssistantService(llm, exec, nil, 0, nil)

	_, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "q"})
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, `column "nope" does not exist`, err.Error())
	assert.Equal(t, "SELECT nope FROM series_data", qe.SQL)
}

func TestAssistantService_SummaryFailureIsSuppressed(t *testing.T) {
	llm := &mockCompleter{
		replies: []string{"SELECT investor FROM series_data", ""},
		errs:    []error{nil, errors.New("rate limited")},
	}
	exec := &mockExecutor{result: &models.QueryResult{Columns: []string{"investor"}, Rows: []map[string]any{{"investor": "Acme"}}}}
	svc := NewAssistantService(llm, exec, newMockRunRepo(), 0, nil)

	ans, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "q", Summarize: true})
	require.NoError(t, err)
	assert.Empty(t, ans.Summary)
	assert.Len(t, ans.Rows, 1)
}

func TestAssistantService_NoRowsSkipsSummary(t *testing.T) {
	llm := &mockCompleter{replies: []string{"SELECT investor FROM series_data WHERE false"}}
	exec := &mockExecutor{result: &models.QueryResult{Columns: []string{"investor"}, Rows: []map[string]any{}}}
	svc := NewAssistantService(llm, exec, nil, 0, nil)

	ans, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "q", Summarize: true})
	require.NoError(t, err)
	assert.True(t, ans.NoRows)
	assert.Equal(t, "No rows returned.", ans.Message)
	assert.Len(t, llm.users, 1)
}

func TestAssistantService_SummaryRowLimit(t *testing.T) {
	rows := make([]map[string]any, 5)
	for i := range rows {
		rows[i] = map[string]any{"n": i}
	}
	llm := &mockCompleter{replies: []string{"SELECT n FROM t", "ok"}}
	exec := &mockExecutor{result: &models.QueryResult{Columns: []string{"n"}, Rows: rows}}
	svc := NewAssistantService(llm, exec, nil, 2, nil)

	_, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "q", Summarize: true})
	require.NoError(t, err)
	assert.Contains(t, llm.users[1], `[{"n":0},{"n":1}]`)
}

func TestAssistantService_ValidationAndModelErrors(t *testing.T) {
	svc := NewAssistantService(&mockCompleter{errs: []error{errors.New("boom")}}, &mockExecutor{}, nil, 0, nil)

	_, err := svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "  "})
	var ve *apperrors.ErrValidation
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Ask(context.Background(), "a@x.com", &models.AssistantRequest{Question: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate SQL")
}

// cancellingCompleter cancels the request while the model is generating.
type cancellingCompleter struct {
	cancel context.CancelFunc
}

func (c *cancellingCompleter) Provider() string { return "mock" }
func (c *cancellingCompleter) Model() string    { return "mock-1" }

func (c *cancellingCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	c.cancel()
	return "", ctx.Err()
}

func TestAssistantService_CancelledRunIsMarkedFailed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runs := newMockRunRepo()
	svc := NewAssistantService(&cancellingCompleter{cancel: cancel}, &mockExecutor{}, runs, 0, nil)

	_, err := svc.Ask(ctx, "a@x.com", &models.AssistantRequest{Question: "q"})
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, runs.runs, 1)
	for _, r := range runs.runs {
		assert.Equal(t, models.RunStatusFailed, r.Status)
		require.NotNil(t, r.Error)
		assert.Equal(t, "context canceled", *r.Error)
	}
}
