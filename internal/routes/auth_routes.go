package routes

import (
	"github.com/gin-gonic/gin"

	"turismo_api/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	r.POST("/login", ctl.Login)
}
