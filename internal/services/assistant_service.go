package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/repositories"
	"github.com/aliyacapital/seriesdash/internal/schema"
)

// ErrNotSelect rejects model output that is not a single SELECT statement.
var ErrNotSelect = stderrors.New("model did not return a SELECT")

// NoRowsMessage is shown when a query matches nothing.
const NoRowsMessage = "No rows returned."

// DefaultSummaryRows bounds how many result rows are sent for summarizing.
const DefaultSummaryRows = 100

// QueryError carries a database error from executing generated SQL.
type QueryError struct {
	SQL string
	Err error
}

func (e *QueryError) Error() string { return e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

type assistantService struct {
	completer   Completer
	executor    repositories.QueryExecutor
	runs        repositories.AssistantRunRepository
	log         *zap.Logger
	summaryRows int
}

// NewAssistantService wires the model, the query executor and the run log.
// runs may be nil when history is not kept.
func NewAssistantService(completer Completer, executor repositories.QueryExecutor, runs repositories.AssistantRunRepository, summaryRows int, log *zap.Logger) AssistantService {
	if log == nil {
		log = zap.NewNop()
	}
	if summaryRows <= 0 {
		summaryRows = DefaultSummaryRows
	}
	return &assistantService{completer: completer, executor: executor, runs: runs, log: log, summaryRows: summaryRows}
}

func (s *assistantService) Ask(ctx context.Context, email string, req *models.AssistantRequest) (*models.AssistantAnswer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	question := strings.TrimSpace(req.Question)

	run := &models.AssistantRun{
		ID:        uuid.NewString(),
		UserEmail: email,
		Question:  question,
		Provider:  s.completer.Provider(),
		Model:     s.completer.Model(),
		Status:    models.RunStatusPending,
	}
	s.record(ctx, func(ctx context.Context) error { return s.runs.Create(ctx, run) })

	raw, err := s.completer.Complete(ctx, SQLSystemPrompt(), question)
	if err != nil {
		s.fail(ctx, run.ID, models.RunStatusFailed, nil, err)
		return nil, fmt.Errorf("failed to generate SQL: %w", err)
	}

	query, err := ValidateSQL(raw)
	if err != nil {
		s.fail(ctx, run.ID, models.RunStatusRejected, &raw, err)
		return nil, err
	}

	result, err := s.executor.Execute(ctx, query)
	if err != nil {
		s.fail(ctx, run.ID, models.RunStatusFailed, &query, err)
		return nil, &QueryError{SQL: query, Err: err}
	}

	answer := FormatResult(result)
	answer.RunID = run.ID
	answer.SQL = query

	if req.Summarize && !answer.NoRows {
		answer.Summary = s.summarize(ctx, question, answer.Columns, result)
	}

	s.record(ctx, func(ctx context.Context) error { return s.runs.SetSucceeded(ctx, run.ID, query, len(result.Rows)) })
	return answer, nil
}

func (s *assistantService) History(ctx context.Context, email string, limit, offset int) ([]*models.AssistantRun, error) {
	if s.runs == nil {
		return []*models.AssistantRun{}, nil
	}
	return s.runs.List(ctx, email, "", limit, offset)
}

// recordTimeout bounds run-history writes, which outlive the request context
// so a cancelled or superseded run still reaches a final status.
const recordTimeout = 5 * time.Second

func (s *assistantService) record(ctx context.Context, op func(context.Context) error) {
	if s.runs == nil {
		return
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := op(wctx); err != nil {
		s.log.Warn("failed to record assistant run", zap.Error(err))
	}
}

func (s *assistantService) fail(ctx context.Context, id, status string, sql *string, cause error) {
	s.record(ctx, func(ctx context.Context) error { return s.runs.SetFailed(ctx, id, status, sql, cause.Error()) })
}

// summarize asks the model for a short prose summary. Failures leave the
// summary empty.
func (s *assistantService) summarize(ctx context.Context, question string, columns []string, result *models.QueryResult) string {
	rows := result.Rows
	if len(rows) > s.summaryRows {
		rows = rows[:s.summaryRows]
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		s.log.Warn("failed to encode rows for summary", zap.Error(err))
		return ""
	}
	prompt := fmt.Sprintf("Question: %s\nColumns: %s\nRows (JSON):\n%s", question, strings.Join(columns, ", "), payload)

	start := time.Now()
	summary, err := s.completer.Complete(ctx, summarySystemPrompt, prompt)
	if err != nil {
		s.log.Warn("assistant summary failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return ""
	}
	return strings.TrimSpace(summary)
}

const summarySystemPrompt = `You are a financial analyst at a private investment firm.
Summarize the query result below for the person who asked the question.
Answer in a few sentences of Markdown. Percentages in the data are fractions (0.02 means 2%).
Do not invent figures that are not in the rows.`

// SQLSystemPrompt describes the series_data table to the model.
func SQLSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You translate questions about investor subscriptions and fees into one PostgreSQL query.\n")
	sb.WriteString("The only table is series_data. Its columns, in display order, are:\n")
	for _, c := range schema.Columns() {
		fmt.Fprintf(&sb, "- %s %s -- %s (%s)\n", c.Key, c.SQLType, c.Display, c.Kind)
	}
	sb.WriteString("Other columns: table_type text ('tblSeries' for summary rows, 'tblDetailSeries' for detail rows), inserted_at timestamptz.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Reply with a single SELECT statement and nothing else. No explanations, no code fences.\n")
	sb.WriteString("- Unless the question asks about detail rows, filter on table_type = 'tblSeries'.\n")
	sb.WriteString("- Percentages are stored as fractions (0.02 means 2%).\n")
	sb.WriteString("- Match names with ILIKE and wildcards, since spelling and case vary.\n")
	sb.WriteString("- Alias aggregate columns with short snake_case names.\n")
	return sb.String()
}

var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// ValidateSQL normalizes model output into a single SELECT statement.
func ValidateSQL(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(q); m != nil {
		q = strings.TrimSpace(m[1])
	}
	if len(q) < 6 || !strings.EqualFold(q[:6], "select") {
		return "", ErrNotSelect
	}
	q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	if strings.Contains(q, ";") {
		return "", ErrNotSelect
	}
	return q, nil
}

// FormatResult orders the columns, renders every cell for display and flags
// an empty result.
func FormatResult(result *models.QueryResult) *models.AssistantAnswer {
	cols := schema.OrderColumns(result.Columns)
	answer := &models.AssistantAnswer{
		Columns: cols,
		Headers: make([]string, len(cols)),
		Rows:    make([][]string, 0, len(result.Rows)),
	}
	for i, c := range cols {
		answer.Headers[i] = schema.DisplayName(c)
	}
	for _, row := range result.Rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = schema.FormatColumn(c, row[c])
		}
		answer.Rows = append(answer.Rows, cells)
	}
	if len(answer.Rows) == 0 {
		answer.NoRows = true
		answer.Message = NoRowsMessage
	}
	return answer
}
