package routes

import (
	"github.com/gin-gonic/gin"

	"turismo_api/internal/auth"
	"turismo_api/internal/controllers"
	"turismo_api/internal/middleware"
	"turismo_api/internal/models"
)

func ProveedorRoutes(r *gin.Engine, ctl *controllers.ProveedorController, tokens *auth.TokenManager) {
	r.GET("/proveedores",
		middleware.RequireRoles(tokens, models.RolCliente, models.RolAgente, models.RolAdministrador),
		ctl.List)
	r.POST("/proveedores",
		middleware.RequireRoles(tokens, models.RolAdministrador, models.RolAgente),
		ctl.Create)
	r.PUT("/proveedores/:id",
		middleware.RequireRoles(tokens, models.RolAdministrador, models.RolAgente),
		ctl.Update)
	r.DELETE("/proveedores/:id",
		middleware.RequireRoles(tokens, models.RolAdministrador),
		ctl.Delete)
}
