package routes

import (
	"github.com/gin-gonic/gin"

	"turismo_api/internal/auth"
	"turismo_api/internal/controllers"
	"turismo_api/internal/middleware"
	"turismo_api/internal/models"
)

func ReservacionRoutes(r *gin.Engine, ctl *controllers.ReservacionController, tokens *auth.TokenManager) {
	gestores := middleware.RequireRoles(tokens, models.RolAdministrador, models.RolAgente)

	r.GET("/reservaciones",
		middleware.RequireRoles(tokens, models.RolCliente, models.RolAgente, models.RolAdministrador),
		ctl.List)
	r.POST("/reservaciones", gestores, ctl.Create)
	r.PUT("/reservaciones/:id", gestores, ctl.Update)
	r.DELETE("/reservaciones/:id", gestores, ctl.Delete)
}
