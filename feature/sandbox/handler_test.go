package sandbox

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-seeder/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, NewFeature(db, zap.NewNop()).Load(app))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	data, _ := io.ReadAll(resp.Body)
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), string(data))
	}
	return resp.StatusCode, out
}

func TestHandlerLifecycle(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/dcim/regions/", `{"name":"China","slug":"china"}`)
	require.Equal(t, fiber.StatusCreated, status)
	chinaID := body["id"].(float64)

	status, body = doJSON(t, app, "POST", "/dcim/regions/", `{"name":"Shanghai","slug":"shanghai","parent":1}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, map[string]any{"id": chinaID}, body["parent"])

	status, body = doJSON(t, app, "GET", "/dcim/regions/?slug=shanghai", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	results := body["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Shanghai", results[0].(map[string]any)["name"])

	status, body = doJSON(t, app, "GET", "/dcim/regions/?slug=nowhere", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["results"])

	status, body = doJSON(t, app, "POST", "/dcim/regions/", `{"name":"China","slug":"china"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{"region with this slug already exists."}, body["slug"])

	status, body = doJSON(t, app, "PATCH", "/dcim/regions/2/", `{"parent":null}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, body["parent"])

	status, body = doJSON(t, app, "GET", "/dcim/regions/2/", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, body["parent"])
	assert.Equal(t, "shanghai", body["slug"])
}

func TestHandlerErrors(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, "GET", "/dcim/sites/42/", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not found.", body["detail"])

	req := httptest.NewRequest("POST", "/tenancy/tenants/", strings.NewReader("{not json"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("GET", "/dcim/sites/abc/", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlerPagination(t *testing.T) {
	app := setupTestApp(t)
	for _, slug := range []string{"a", "b", "c"} {
		status, _ := doJSON(t, app, "POST", "/dcim/manufacturers/", `{"name":"`+slug+`","slug":"`+slug+`"}`)
		require.Equal(t, fiber.StatusCreated, status)
	}

	_, body := doJSON(t, app, "GET", "/dcim/manufacturers/?limit=2&offset=1", "")
	assert.Equal(t, float64(3), body["count"])
	results := body["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].(map[string]any)["slug"])
}

func TestHandlerStatus(t *testing.T) {
	app := setupTestApp(t)
	status, body := doJSON(t, app, "GET", "/status/", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["sandbox"])
}

func TestHandlerStoreFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `sandbox_records`").WillReturnError(assert.AnError)

	app := fiber.New()
	NewHandler(NewService(NewStore(db), nil), nil).RegisterRoutes(app)

	status, body := doJSON(t, app, "GET", "/dcim/regions/?slug=china", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body["detail"], "failed to list region")
	assert.NoError(t, mock.ExpectationsWereMet())
}
