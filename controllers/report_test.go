package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pgDuplicateKey = pgconn.PgError{
	Code:    "23505",
	Message: "duplicate key value violates unique constraint",
}

var payColumns = []string{"appointment_id", "caregiver_name", "hourly_rate", "work_hours"}

func TestJobsReportRequiresContains(t *testing.T) {
	app, mock := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/jobs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Error, "contains query parameter")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAboveAverageEarningsNoAccepted(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM "appointments" JOIN caregivers c`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows(payColumns))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/above-average-earnings", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No accepted appointments exist", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAboveAverageEarningsNobodyAbove(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM "appointments" JOIN caregivers c`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows(payColumns).
			AddRow(1, "Arman Armanov", "10.00", "2").
			AddRow(2, "Kate Brown", "10.00", "2"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/above-average-earnings", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No caregivers earn above average", body["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalHoursReport(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM "appointments" JOIN caregivers c`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows(payColumns).
			AddRow(1, "Arman Armanov", "8.50", "3").
			AddRow(2, "Kate Brown", "11.50", "6"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/total-hours", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "9.00", body["total_hours"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCostLineItemsEmpty(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`FROM "appointments" JOIN caregivers c`).
		WithArgs("accepted").
		WillReturnRows(sqlmock.NewRows(payColumns))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports/cost-line-items", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "No accepted appointments found", body["message"])
	assert.Equal(t, "0.00", body["grand_total"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
