package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/repositories"
)

// ---- Mocks for repositories and the model used in unit tests ----

type mockSeriesRepo struct {
	mu        sync.Mutex
	rows      []*models.SeriesRow
	listCalls int
	filters   []models.RowFilter
	distinct  map[string][]string
	err       error
}

var _ repositories.SeriesRepository = (*mockSeriesRepo)(nil)

func (m *mockSeriesRepo) List(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	m.filters = append(m.filters, filter)
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func (m *mockSeriesRepo) Distinct(ctx context.Context, column string, tableType models.RecordType) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.distinct[column], nil
}

func (m *mockSeriesRepo) Count(ctx context.Context, filter models.RowFilter) (int64, error) {
	return int64(len(m.rows)), m.err
}

type mockPreferencesRepo struct {
	prefs   map[string]*models.UserPreferences
	cleared []string
}

var _ repositories.PreferencesRepository = (*mockPreferencesRepo)(nil)

func newMockPreferencesRepo() *mockPreferencesRepo {
	return &mockPreferencesRepo{prefs: map[string]*models.UserPreferences{}}
}

func (m *mockPreferencesRepo) entry(email string) *models.UserPreferences {
	p, ok := m.prefs[email]
	if !ok {
		p = &models.UserPreferences{Email: email}
		m.prefs[email] = p
	}
	return p
}

func (m *mockPreferencesRepo) Get(ctx context.Context, email string) (*models.UserPreferences, error) {
	cp := *m.entry(email)
	return &cp, nil
}

func (m *mockPreferencesRepo) StartSession(ctx context.Context, email string, at time.Time) error {
	m.entry(email).SessionStart = &at
	return nil
}

func (m *mockPreferencesRepo) ClearSession(ctx context.Context, email string) error {
	m.entry(email).SessionStart = nil
	m.cleared = append(m.cleared, email)
	return nil
}

func (m *mockPreferencesRepo) SetLastInvestor(ctx context.Context, email, investor string) error {
	m.entry(email).LastInvestor = investor
	return nil
}

func (m *mockPreferencesRepo) SetLastSeries(ctx context.Context, email, series string) error {
	m.entry(email).LastSeries = series
	return nil
}

// mockRunRepo refuses writes on a done context, as a database driver would.
type mockRunRepo struct {
	runs map[string]*models.AssistantRun
}

var _ repositories.AssistantRunRepository = (*mockRunRepo)(nil)

func newMockRunRepo() *mockRunRepo { return &mockRunRepo{runs: map[string]*models.AssistantRun{}} }

func (m *mockRunRepo) Create(ctx context.Context, run *models.AssistantRun) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := *run
	m.runs[run.ID] = &cp
	return nil
}

func (m *mockRunRepo) GetByID(ctx context.Context, id string) (*models.AssistantRun, error) {
	r, ok := m.runs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (m *mockRunRepo) List(ctx context.Context, email, status string, limit, offset int) ([]*models.AssistantRun, error) {
	var out []*models.AssistantRun
	for _, r := range m.runs {
		if email == "" || r.UserEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRunRepo) SetSucceeded(ctx context.Context, id, sql string, rowCount int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r := m.runs[id]
	r.Status = models.RunStatusSucceeded
	r.SQL = &sql
	r.RowCount = rowCount
	return nil
}

func (m *mockRunRepo) SetFailed(ctx context.Context, id, status string, sql *string, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r := m.runs[id]
	r.Status = status
	r.SQL = sql
	r.Error = &reason
	return nil
}

type mockExecutor struct {
	result  *models.QueryResult
	err     error
	queries []string
}

var _ repositories.QueryExecutor = (*mockExecutor)(nil)

func (m *mockExecutor) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockCompleter replays canned replies in order.
type mockCompleter struct {
	replies []string
	errs    []error
	systems []string
	users   []string
}

var _ Completer = (*mockCompleter)(nil)

func (m *mockCompleter) Provider() string { return "mock" }
func (m *mockCompleter) Model() string    { return "mock-1" }

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	i := len(m.users)
	m.systems = append(m.systems, system)
	m.users = append(m.users, user)
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	if i < len(m.replies) {
		return m.replies[i], nil
	}
	return "", errors.New("no reply scripted")
}
