package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turismo_api/internal/auth"
	"turismo_api/internal/models"
)

func gateRouter(t *testing.T, tm *auth.TokenManager, roles ...models.Rol) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", RequireRoles(tm, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRolesMissingToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	r := gateRouter(t, tm, models.RolAdministrador)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token de autorización faltante o inválido")
}

func TestRequireRolesMalformedHeader(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	r := gateRouter(t, tm, models.RolAdministrador)

	w := doGet(r, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesInvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	r := gateRouter(t, tm, models.RolAdministrador)

	w := doGet(r, "Bearer no.un.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesForbidden(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	r := gateRouter(t, tm, models.RolAdministrador)

	token, err := tm.Issue("agente@b.com", models.RolAgente)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acceso denegado, se requiere rol(es): [Administrador]")
}

func TestRequireRolesAllowed(t *testing.T) {
	tm := auth.NewTokenManager("test-secret")
	r := gateRouter(t, tm, models.RolAdministrador, models.RolAgente)

	token, err := tm.Issue("agente@b.com", models.RolAgente)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
