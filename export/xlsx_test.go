// ABOUTME: Tests for spreadsheet export
// ABOUTME: Opens generated workbooks with excelize and checks headers and rows
package export

import (
	"bytes"
	"testing"

	"github.com/harperreed/crmdash/stats"
	"github.com/harperreed/crmdash/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, buf *bytes.Buffer, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWorkbookLeads(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Workbook(&buf, "leads", store.NewDefault(), stats.DefaultFormatter()))

	rows := readSheet(t, &buf, "Leads")
	require.Len(t, rows, 9)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "John Doe", rows[1][1])
	assert.Equal(t, "$15,000", rows[6][6])
}

func TestWorkbookAdsIncludeRates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Workbook(&buf, "advertisements", store.NewDefault(), stats.DefaultFormatter()))

	rows := readSheet(t, &buf, "Advertisements")
	require.Len(t, rows, 11)
	assert.Equal(t, "Summer Product Launch 2024", rows[1][2])
	assert.Equal(t, "3", rows[1][11])
	assert.Equal(t, "0", rows[6][11], "ads without impressions have a zero CTR")
}

func TestWorkbookCampaignDrift(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Workbook(&buf, "campaigns", store.NewDefault(), stats.DefaultFormatter()))

	rows := readSheet(t, &buf, "Campaigns")
	require.Len(t, rows, 8)
	assert.Equal(t, "Drift", rows[0][9])
	for _, row := range rows[1:] {
		assert.Equal(t, "0", row[9])
	}
}

func TestWorkbookEveryDataset(t *testing.T) {
	s := store.NewDefault()
	for _, ds := range Datasets {
		var buf bytes.Buffer
		assert.NoError(t, Workbook(&buf, ds, s, stats.DefaultFormatter()), ds)
		assert.NotZero(t, buf.Len(), ds)
	}
}

func TestWorkbookUnknownDataset(t *testing.T) {
	var buf bytes.Buffer
	err := Workbook(&buf, "invoices", store.NewDefault(), stats.DefaultFormatter())
	assert.ErrorIs(t, err, ErrUnknownDataset)
	assert.Zero(t, buf.Len())
}
