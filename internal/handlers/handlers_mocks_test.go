package handlers

import (
	"context"

	"github.com/aliyacapital/seriesdash/internal/auth"
	"github.com/aliyacapital/seriesdash/internal/models"
	"github.com/aliyacapital/seriesdash/internal/reports"
	"github.com/aliyacapital/seriesdash/internal/services"
)

// ---- Mocks for handler tests ----

type mockReporting struct {
	rows      []*models.SeriesRow
	err       error
	filters   []models.RowFilter
	series    []string
	investors []string
	sortKey   string
	desc      bool
	sheet     string
	investor  string
}

var _ services.ReportingService = (*mockReporting)(nil)

func (m *mockReporting) Rows(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	m.filters = append(m.filters, filter)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.rows, m.err
}
func (m *mockReporting) Refresh(ctx context.Context, filter models.RowFilter) ([]*models.SeriesRow, error) {
	return m.Rows(ctx, filter)
}
func (m *mockReporting) Dashboard(ctx context.Context, filter models.RowFilter, opts reports.WaterfallOptions) (*models.Dashboard, error) {
	if m.err != nil {
		return nil, m.err
	}
	return reports.BuildDashboard(m.rows, filter, opts), nil
}
func (m *mockReporting) SeriesSummary(ctx context.Context, filter models.RowFilter, sortKey string, desc bool) ([]models.SeriesSummaryRow, error) {
	m.sortKey, m.desc = sortKey, desc
	if m.err != nil {
		return nil, m.err
	}
	out := reports.SeriesSummary(m.rows, nil)
	if err := reports.SortSeriesSummary(out, sortKey, desc); err != nil {
		return nil, err
	}
	return out, nil
}
func (m *mockReporting) SeriesDetail(ctx context.Context, filter models.RowFilter, sheet string) (*models.SeriesDetail, error) {
	m.sheet = sheet
	if m.err != nil {
		return nil, m.err
	}
	return &models.SeriesDetail{SheetName: sheet, Rows: reports.MatchSeries(m.rows, sheet)}, nil
}
func (m *mockReporting) InvestorDetail(ctx context.Context, filter models.RowFilter, investor string) (*models.InvestorDetail, error) {
	m.investor = investor
	if m.err != nil {
		return nil, m.err
	}
	d := reports.InvestorBreakdown(m.rows, investor)
	return &d, nil
}
func (m *mockReporting) ListSeries(ctx context.Context, tableType models.RecordType) ([]string, error) {
	return m.series, m.err
}
func (m *mockReporting) ListInvestors(ctx context.Context, tableType models.RecordType) ([]string, error) {
	return m.investors, m.err
}

type mockPrefs struct {
	prefs map[string]*models.UserPreferences
	ended []string
}

var _ services.PreferencesService = (*mockPrefs)(nil)

func newMockPrefs() *mockPrefs {
	return &mockPrefs{prefs: make(map[string]*models.UserPreferences)}
}

func (m *mockPrefs) get(email string) *models.UserPreferences {
	p, ok := m.prefs[email]
	if !ok {
		p = &models.UserPreferences{Email: email}
		m.prefs[email] = p
	}
	return p
}

func (m *mockPrefs) Get(ctx context.Context, email string) (*models.UserPreferences, error) {
	p := *m.get(email)
	return &p, nil
}
func (m *mockPrefs) StartSession(ctx context.Context, email string) error { m.get(email); return nil }
func (m *mockPrefs) EndSession(ctx context.Context, email string) error {
	m.ended = append(m.ended, email)
	return nil
}
func (m *mockPrefs) CheckSession(ctx context.Context, email string) error { return nil }
func (m *mockPrefs) RememberInvestor(ctx context.Context, email, investor string) error {
	m.get(email).LastInvestor = investor
	return nil
}
func (m *mockPrefs) RememberSeries(ctx context.Context, email, series string) error {
	m.get(email).LastSeries = series
	return nil
}

type mockAssistant struct {
	answer *models.AssistantAnswer
	err    error
	asked  []string
	runs   []*models.AssistantRun
}

var _ services.AssistantService = (*mockAssistant)(nil)

func (m *mockAssistant) Ask(ctx context.Context, email string, req *models.AssistantRequest) (*models.AssistantAnswer, error) {
	m.asked = append(m.asked, email+": "+req.Question)
	return m.answer, m.err
}
func (m *mockAssistant) History(ctx context.Context, email string, limit, offset int) ([]*models.AssistantRun, error) {
	return m.runs, m.err
}

type stubProvider struct {
	signInErr error
}

var _ auth.IdentityProvider = (*stubProvider)(nil)

func (s *stubProvider) SignIn(ctx context.Context, email, password string) (*auth.ProviderUser, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return &auth.ProviderUser{ID: "u1", Email: email}, nil
}
func (s *stubProvider) SignUp(ctx context.Context, email, password string) (*auth.ProviderUser, error) {
	return &auth.ProviderUser{ID: "u2", Email: email}, nil
}
func (s *stubProvider) ResendConfirmation(ctx context.Context, email string) error { return nil }
