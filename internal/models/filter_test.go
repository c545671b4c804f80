package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	w, err := ParseTimeWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, w)

	w, err = ParseTimeWindow("lastYear")
	require.NoError(t, err)
	assert.Equal(t, WindowLastYear, w)

	_, err = ParseTimeWindow("lastWeek")
	assert.Error(t, err)
}

func TestTimeWindowSince(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Nil(t, WindowAll.Since(now))

	m := WindowLastMonth.Since(now)
	require.NotNil(t, m)
	assert.Equal(t, time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC), *m)

	y := WindowLastYear.Since(now)
	require.NotNil(t, y)
	assert.Equal(t, time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC), *y)
}

func TestRowFilterValidate(t *testing.T) {
	require.NoError(t, RowFilter{}.Validate())
	require.NoError(t, RowFilter{TableType: RecordTypeDetail, Window: WindowLastMonth}.Validate())
	assert.EqualError(t, RowFilter{TableType: "tblOther"}.Validate(), "table_type: must be tblSeries or tblDetailSeries")
	assert.Error(t, RowFilter{Window: "yesterday"}.Validate())
}

func TestRowFilterCacheKey(t *testing.T) {
	a := RowFilter{Investor: "ACME"}
	b := RowFilter{Investor: "acme", Window: WindowAll}
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), RowFilter{Investor: "acme", Fund: "F"}.CacheKey())

	assert.NotEqual(t,
		RowFilter{Fund: "A|B"}.CacheKey(),
		RowFilter{Fund: "A", SPV: "B|"}.CacheKey())
	assert.NotEqual(t,
		RowFilter{Fund: `A\`, SPV: "B"}.CacheKey(),
		RowFilter{Fund: `A\|B`}.CacheKey())
}

func TestSeriesRowHasSideLetter(t *testing.T) {
	assert.False(t, (&SeriesRow{}).HasSideLetter())
	assert.True(t, (&SeriesRow{SLNotes: Text("MFN clause")}).HasSideLetter())
	assert.False(t, (&SeriesRow{SLNotes: Text("   ")}).HasSideLetter())
	assert.True(t, (&SeriesRow{SideLetter: Text("Yes")}).HasSideLetter())
	assert.False(t, (&SeriesRow{SideLetter: Text("No")}).HasSideLetter())
}

func TestAssistantRequestValidate(t *testing.T) {
	assert.Error(t, (&AssistantRequest{Question: "  "}).Validate())
	assert.NoError(t, (&AssistantRequest{Question: "top investors"}).Validate())
}
