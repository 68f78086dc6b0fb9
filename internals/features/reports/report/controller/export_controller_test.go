package controller

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"luctreports_backend/internals/testutils"
)

func TestExportReports(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newReportApp(db)
	refs := seedRefs(t, db)

	resp, _ := testutils.DoJSON(t, app, http.MethodPost, "/api/reports", reportPayload(refs), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw := testutils.RawBody(t, app, "/api/reports/export", "")

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Lecture Reports")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header row plus one report")

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Week", rows[0][1])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "6", rows[1][1])
	assert.Equal(t, "2024-03-11", rows[1][2])
	assert.Equal(t, "ICT", rows[1][3])
	assert.Equal(t, "Databases", rows[1][4])
	assert.Equal(t, "DB101-A", rows[1][5])
	assert.Equal(t, "thabo", rows[1][6])
	assert.Equal(t, "Normalization", rows[1][9])
}

func TestExportReports_EmptyWorkbook(t *testing.T) {
	db := testutils.SetupDB(t)
	app := newReportApp(db)

	raw := testutils.RawBody(t, app, "/api/reports/export", "")

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Lecture Reports")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}
