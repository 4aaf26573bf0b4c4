package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/caregivers-platform/backend/reports"
	"github.com/caregivers-platform/backend/routes"
	"github.com/caregivers-platform/backend/store"
	"github.com/caregivers-platform/backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	routes.SetupEntityRoutes(app, store.New(db))
	routes.SetupReportRoutes(app, reports.New(db))
	return app, mock
}

func decodeError(t *testing.T, body io.Reader) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestGetUserReturns404(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "email"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/99", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decodeError(t, resp.Body).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserReturns400OnMissingFields(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"no.name@email.com"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp.Body).Error, "given_name is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserReturns409OnDuplicateEmail(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgDuplicateKey)
	mock.ExpectRollback()

	body := `{
		"email": "taken@email.com",
		"given_name": "Arman",
		"surname": "Armanov",
		"city": "Astana",
		"phone_number": "+77771234567",
		"password": "password123"
	}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserInvalidID(t *testing.T) {
	app, mock := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
