package routes

import (
	"github.com/gin-gonic/gin"

	"turismo_api/internal/auth"
	"turismo_api/internal/controllers"
	"turismo_api/internal/middleware"
	"turismo_api/internal/models"
)

func CotizacionRoutes(r *gin.Engine, ctl *controllers.CotizacionController, tokens *auth.TokenManager) {
	todos := middleware.RequireRoles(tokens, models.RolCliente, models.RolAgente, models.RolAdministrador)

	r.GET("/cotizaciones", todos, ctl.List)
	r.POST("/cotizaciones", todos, ctl.Create)
	r.PUT("/cotizaciones/:id",
		middleware.RequireRoles(tokens, models.RolAdministrador, models.RolAgente),
		ctl.Update)
	r.DELETE("/cotizaciones/:id",
		middleware.RequireRoles(tokens, models.RolAdministrador, models.RolAgente),
		ctl.Delete)
}
