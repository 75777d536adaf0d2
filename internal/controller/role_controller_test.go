package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleController_Lifecycle(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/api/v1/roles", `{"nombre":"ADMIN","descripcion":"Administrador"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode(t, rec)
	id := int64(created["id"].(float64))
	assert.NotZero(t, id)
	assert.Equal(t, "ADMIN", created["nombre"])
	assert.Equal(t, "Administrador", created["descripcion"])

	self := fmt.Sprintf("http://localhost:8081/api/v1/roles/%d", id)
	assert.Equal(t, self, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, self, href(t, created, "self"))
	assert.Equal(t, "http://localhost:8081/api/v1/roles", href(t, created, "roles"))
	assert.Equal(t, self, href(t, created, "actualizar"))
	assert.Equal(t, self, href(t, created, "eliminar"))

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/roles/%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode(t, rec))

	rec = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/roles/%d", id), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/roles/%d", id), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRoleController_Create(t *testing.T) {
	testCases := []struct {
		Name           string
		Body           string
		ExpectedStatus int
		ExpectedError  string
	}{
		{Name: "Valid request", Body: `{"nombre":"CLIENTE"}`, ExpectedStatus: http.StatusCreated},
		{Name: "Missing nombre", Body: `{"descripcion":"Sin nombre"}`, ExpectedStatus: http.StatusBadRequest, ExpectedError: "El nombre del rol es requerido"},
		{Name: "Null nombre", Body: `{"nombre":null}`, ExpectedStatus: http.StatusBadRequest, ExpectedError: "El nombre del rol es requerido"},
		{Name: "Empty nombre", Body: `{"nombre":""}`, ExpectedStatus: http.StatusBadRequest, ExpectedError: "El nombre del rol es requerido"},
		{Name: "Malformed body", Body: `{"nombre":`, ExpectedStatus: http.StatusBadRequest, ExpectedError: "Bad request"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := newTestServer()

			rec := s.do(t, http.MethodPost, "/api/v1/roles", tc.Body)
			assert.Equal(t, tc.ExpectedStatus, rec.Code)

			if tc.ExpectedError != "" {
				assert.Equal(t, map[string]interface{}{"error": tc.ExpectedError}, decode(t, rec))

				list := decode(t, s.do(t, http.MethodGet, "/api/v1/roles", ""))
				assert.NotContains(t, list, "_embedded")
			}
		})
	}
}

func TestRoleController_CreateIgnoresBodyID(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/api/v1/roles", `{"id":50,"nombre":"ADMIN"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["id"])
}

func TestRoleController_ListKeepsInsertionOrder(t *testing.T) {
	s := newTestServer()

	for _, nombre := range []string{"ADMIN", "CLIENTE", "VENDEDOR"} {
		require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/roles", fmt.Sprintf(`{"nombre":%q}`, nombre)).Code)
	}

	rec := s.do(t, http.MethodGet, "/api/v1/roles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "http://localhost:8081/api/v1/roles", href(t, body, "self"))

	embedded := body["_embedded"].(map[string]interface{})
	roles := embedded["rolList"].([]interface{})
	require.Len(t, roles, 3)
	for i, nombre := range []string{"ADMIN", "CLIENTE", "VENDEDOR"} {
		assert.Equal(t, nombre, roles[i].(map[string]interface{})["nombre"])
	}
}

func TestRoleController_GetByName(t *testing.T) {
	s := newTestServer()
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/roles", `{"nombre":"ADMIN"}`).Code)

	rec := s.do(t, http.MethodGet, "/api/v1/roles/nombre/ADMIN", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ADMIN", decode(t, rec)["nombre"])

	rec = s.do(t, http.MethodGet, "/api/v1/roles/nombre/INVITADO", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleController_Update(t *testing.T) {
	s := newTestServer()
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/roles", `{"nombre":"ADMIN","descripcion":"Administrador"}`).Code)

	rec := s.do(t, http.MethodPut, "/api/v1/roles/1", `{"id":99,"nombre":"SUPERADMIN"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "SUPERADMIN", body["nombre"])
	assert.Nil(t, body["descripcion"])

	rec = s.do(t, http.MethodPut, "/api/v1/roles/1", `{"nombre":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/api/v1/roles/42", `{"nombre":"FANTASMA"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/roles/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	list := decode(t, s.do(t, http.MethodGet, "/api/v1/roles", ""))
	roles := list["_embedded"].(map[string]interface{})["rolList"].([]interface{})
	require.Len(t, roles, 1)
	assert.Equal(t, "SUPERADMIN", roles[0].(map[string]interface{})["nombre"])
}

func TestRoleController_DeleteMissing(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodDelete, "/api/v1/roles/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleController_DeleteAssignedRole(t *testing.T) {
	s := newTestServer()
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/roles", `{"nombre":"ADMIN"}`).Code)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/usuarios",
		`{"nombre":"Juan Pérez","email":"juan@email.com","rut":"12345678-9","rol":{"id":1}}`).Code)

	rec := s.do(t, http.MethodDelete, "/api/v1/roles/1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/roles/1", "").Code)
}

func TestRoleController_InvalidID(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodGet, "/api/v1/roles/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "El id debe ser un número entero"}, decode(t, rec))
}
