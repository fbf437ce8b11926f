package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakhollow/squirreld/internal/config"
	"github.com/oakhollow/squirreld/internal/handler"
	"github.com/oakhollow/squirreld/internal/middleware"
	"github.com/oakhollow/squirreld/internal/repository"
	"github.com/oakhollow/squirreld/internal/server"
	"github.com/oakhollow/squirreld/internal/service"
)

// newTestAPI wires the full stack (router, middleware, handlers,
// services, sqlite store) against a temp database file.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  5,
			WriteTimeout: 5,
			IdleTimeout:  5,
		},
		Database: config.DatabaseConfig{
			Path: filepath.Join(t.TempDir(), "squirrels.db"),
		},
		Log: config.DefaultLogConfig(),
	}
	cfg.Log.ServiceName = "squirreld"
	cfg.Log.Environment = "test"

	log := zerolog.Nop()

	s, err := server.New(cfg, &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DB.Close() })

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	return New(s, middlewares, handlers)
}

// do issues a request against the router. A non-empty body is sent as
// a form payload with an explicit Content-Length, the way a real
// client would put it on the wire.
func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Length", strconv.Itoa(len(body)))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func listSquirrels(t *testing.T, e *echo.Echo) []repository.Squirrel {
	t.Helper()

	rec := do(e, http.MethodGet, "/squirrels", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var squirrels []repository.Squirrel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &squirrels))
	return squirrels
}

func createSquirrel(t *testing.T, e *echo.Echo, name, size string) repository.Squirrel {
	t.Helper()

	before := len(listSquirrels(t, e))

	rec := do(e, http.MethodPost, "/squirrels", "name="+name+"&size="+size)
	require.Equal(t, http.StatusCreated, rec.Code)

	all := listSquirrels(t, e)
	require.Len(t, all, before+1)
	return all[len(all)-1]
}

func TestIndex_EmptyStore(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/squirrels", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/json")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreate_RoundTrip(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodPost, "/squirrels", "name=Chip&size=small")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String(), "201 body must be empty")
	assert.Empty(t, rec.Header().Get(echo.HeaderContentType), "201 must not set Content-Type")

	all := listSquirrels(t, e)
	require.Len(t, all, 1)

	rec = do(e, http.MethodGet, "/squirrels/"+strconv.FormatInt(all[0].ID, 10), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got repository.Squirrel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, repository.Squirrel{ID: all[0].ID, Name: "Chip", Size: "small"}, got)
}

func TestCreate_IDsStrictlyIncreaseAcrossDeletes(t *testing.T) {
	e := newTestAPI(t)

	first := createSquirrel(t, e, "Alpha", "medium")

	rec := do(e, http.MethodDelete, "/squirrels/"+strconv.FormatInt(first.ID, 10), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	second := createSquirrel(t, e, "Bravo", "medium")
	assert.Greater(t, second.ID, first.ID, "deleted ids must never be reused")
}

func TestCreate_MissingOrEmptyFields(t *testing.T) {
	e := newTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", "size=small"},
		{"missing size", "name=Chip"},
		{"empty name", "name=&size=small"},
		{"empty size", "name=Chip&size="},
		{"empty body", ""},
		{"unrelated fields", "color=gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/squirrels", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Empty(t, listSquirrels(t, e), "failed creates must not insert rows")
}

func TestCreate_ContentTypeIsAdvisory(t *testing.T) {
	e := newTestAPI(t)

	body := "name=Chip&size=small"
	req := httptest.NewRequest(http.MethodPost, "/squirrels", strings.NewReader(body))
	req.Header.Set("Content-Length", strconv.Itoa(len(body)))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreate_MissingContentLength(t *testing.T) {
	e := newTestAPI(t)

	// No Content-Length header: the field map degrades to empty and the
	// missing-field path reports 400. The connection is not dropped.
	req := httptest.NewRequest(http.MethodPost, "/squirrels", strings.NewReader("name=Chip&size=small"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetrieve_UnknownIDs(t *testing.T) {
	e := newTestAPI(t)

	for _, id := range []string{"9999", "abc", "-3", "0"} {
		rec := do(e, http.MethodGet, "/squirrels/"+id, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "id %q", id)
		assert.Equal(t, "404 Not Found", rec.Body.String())
	}
}

func TestUpdate_ExistingRecord(t *testing.T) {
	e := newTestAPI(t)

	created := createSquirrel(t, e, "Bravo", "medium")
	id := strconv.FormatInt(created.ID, 10)

	rec := do(e, http.MethodPut, "/squirrels/"+id, "name=Bravo&size=large")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	all := listSquirrels(t, e)
	require.Len(t, all, 1, "update must not change row count")
	assert.Equal(t, created.ID, all[0].ID, "update must not change the id")
	assert.Equal(t, "large", all[0].Size)
}

func TestUpdate_UnknownIDCheckedBeforeBody(t *testing.T) {
	e := newTestAPI(t)

	// Bad body AND unknown id: the id check runs first, so 404 wins.
	rec := do(e, http.MethodPut, "/squirrels/42", "name=")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404 Not Found", rec.Body.String())
}

func TestUpdate_BadFieldsLeaveRecordUnchanged(t *testing.T) {
	e := newTestAPI(t)

	created := createSquirrel(t, e, "Bravo", "medium")
	id := strconv.FormatInt(created.ID, 10)

	for _, body := range []string{"size=large", "name=Other", "name=&size=large", "name=Other&size=", ""} {
		rec := do(e, http.MethodPut, "/squirrels/"+id, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}

	all := listSquirrels(t, e)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0], "failed updates must leave the record unchanged")
}

func TestDelete_ThenRetrieve(t *testing.T) {
	e := newTestAPI(t)

	created := createSquirrel(t, e, "Chip", "small")
	id := strconv.FormatInt(created.ID, 10)

	rec := do(e, http.MethodDelete, "/squirrels/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/squirrels/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Second delete on the same id.
	rec = do(e, http.MethodDelete, "/squirrels/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrailingSlash_EquivalentToNoID(t *testing.T) {
	e := newTestAPI(t)

	createSquirrel(t, e, "Chip", "small")

	plain := do(e, http.MethodGet, "/squirrels", "")
	slash := do(e, http.MethodGet, "/squirrels/", "")

	assert.Equal(t, plain.Code, slash.Code)
	assert.Equal(t, plain.Body.String(), slash.Body.String())
}

func TestPatch_AlwaysMethodNotAllowed(t *testing.T) {
	e := newTestAPI(t)

	created := createSquirrel(t, e, "Chip", "small")

	targets := []string{
		"/squirrels",
		"/squirrels/" + strconv.FormatInt(created.ID, 10),
		"/squirrels/9999",
		"/acorns",
		"/",
	}

	for _, target := range targets {
		rec := do(e, http.MethodPatch, target, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "target %q", target)
		assert.Equal(t, "405 Method Not Allowed", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	}
}

func TestRoutingTable_NotFoundCombinations(t *testing.T) {
	e := newTestAPI(t)

	created := createSquirrel(t, e, "Chip", "small")
	id := strconv.FormatInt(created.ID, 10)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/squirrels/" + id}, // POST with id
		{http.MethodPut, "/squirrels"},        // PUT without id
		{http.MethodDelete, "/squirrels"},     // DELETE without id
		{http.MethodGet, "/acorns"},           // unknown resource
		{http.MethodGet, "/"},                 // empty path
		{http.MethodHead, "/squirrels"},       // unsupported method
		{http.MethodOptions, "/squirrels"},    // unsupported method
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, "name=X&size=Y")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestNotFound_PlainTextBody(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/acorns", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404 Not Found", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestAPI(t)

	rec := do(e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestEndToEndScenario(t *testing.T) {
	e := newTestAPI(t)

	alpha := createSquirrel(t, e, "Alpha", "medium")
	bravo := createSquirrel(t, e, "Bravo", "medium")
	charlie := createSquirrel(t, e, "Charlie", "medium")

	require.Len(t, listSquirrels(t, e), 3)

	bravoID := strconv.FormatInt(bravo.ID, 10)
	rec := do(e, http.MethodPut, "/squirrels/"+bravoID, "name=Bravo&size=large")
	require.Equal(t, http.StatusNoContent, rec.Code)

	alphaID := strconv.FormatInt(alpha.ID, 10)
	rec = do(e, http.MethodDelete, "/squirrels/"+alphaID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	all := listSquirrels(t, e)
	require.Len(t, all, 2)
	assert.Equal(t, []repository.Squirrel{
		{ID: bravo.ID, Name: "Bravo", Size: "large"},
		{ID: charlie.ID, Name: "Charlie", Size: "medium"},
	}, all)

	rec = do(e, http.MethodGet, "/squirrels/"+alphaID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
