package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/libreriasansebastian/usuarios-service/internal/repository"
	"github.com/libreriasansebastian/usuarios-service/internal/service"
	"github.com/libreriasansebastian/usuarios-service/pkg/response"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e *echo.Echo
}

func newTestServer() *testServer {
	store := repository.NewMemoryStore()

	e := echo.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	g := e.Group("/api/v1")
	CreateRoleController(g, service.CreateRoleService(repository.CreateRoleMemoryRepository(store)))
	CreateUserController(g, service.CreateUserService(repository.CreateUserMemoryRepository(store)))

	return &testServer{e: e}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Host = "localhost:8081"
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func href(t *testing.T, body map[string]interface{}, rel string) string {
	t.Helper()

	links, ok := body["_links"].(map[string]interface{})
	require.True(t, ok, "missing _links")
	link, ok := links[rel].(map[string]interface{})
	require.True(t, ok, "missing link %q", rel)
	return link["href"].(string)
}
