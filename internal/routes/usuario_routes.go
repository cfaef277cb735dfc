package routes

import (
	"github.com/gin-gonic/gin"

	"turismo_api/internal/auth"
	"turismo_api/internal/controllers"
	"turismo_api/internal/middleware"
	"turismo_api/internal/models"
)

func UsuarioRoutes(r *gin.Engine, ctl *controllers.UsuarioController, tokens *auth.TokenManager) {
	// Registration is public; the listing is Administrador only.
	r.POST("/usuarios", ctl.Create)
	r.GET("/usuarios", middleware.RequireRoles(tokens, models.RolAdministrador), ctl.List)
}
