package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turismo_api/internal/auth"
	"turismo_api/internal/models"
)

// Context keys for verified claims set by RequireRoles.
const (
	CtxCorreo = "correo"
	CtxRol    = "rol"
)

// RequireRoles guards a route group with a role allow-list. The token
// is verified first (401 on any failure), then the role claim is
// checked against the list (403 naming the required roles). The gate
// never mutates the request.
func RequireRoles(tm *auth.TokenManager, roles ...models.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de autorización faltante o inválido"})
			return
		}

		claims, err := tm.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
			return
		}

		if !roleAllowed(claims.Rol, roles) {
			nombres := make([]string, len(roles))
			for i, r := range roles {
				nombres[i] = r.String()
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"msg": fmt.Sprintf("Acceso denegado, se requiere rol(es): [%s]", strings.Join(nombres, ", ")),
			})
			return
		}

		c.Set(CtxCorreo, claims.Correo)
		c.Set(CtxRol, claims.Rol)
		c.Next()
	}
}

func roleAllowed(rol models.Rol, allowed []models.Rol) bool {
	for _, r := range allowed {
		if r == rol {
			return true
		}
	}
	return false
}
