// internal/tests/datastore_failure_test.go
package tests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/jobtracker/internal/router"
)

// mockedRouter serves the API over a postgres dialect backed by sqlmock.
func mockedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return router.Initialize(ctx, db, testConfig()), mock
}

func TestListSurfacesDatastoreFailureAsInternalError(t *testing.T) {
	r, mock := mockedRouter(t)
	mock.ExpectQuery(`SELECT \* FROM "applications"`).WillReturnError(errors.New("connection refused"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/applications", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSurfacesDatastoreFailureAsInternalError(t *testing.T) {
	r, mock := mockedRouter(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "applications"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	body := `{"company_name":"Acme","role_title":"Engineer","applied_on":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/applications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQueriesByPrimaryKey(t *testing.T) {
	r, mock := mockedRouter(t)
	rows := sqlmock.NewRows([]string{"id", "company_name", "role_title", "status", "applied_on"}).
		AddRow(7, "Acme", "Engineer", "offer", "2024-01-01")
	mock.ExpectQuery(`SELECT \* FROM "applications" WHERE "applications"."id" = \$1`).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/applications/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"offer"`)
	assert.Contains(t, w.Body.String(), `"applied_on":"2024-01-01"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
