package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"turismo_api/internal/auth"
	"turismo_api/internal/config"
	"turismo_api/internal/controllers"
	"turismo_api/internal/store"
)

// SetupRouter wires repositories, controllers and role-gated route
// groups onto a gin engine.
func SetupRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	usuarios := store.NewUsuarioRepository(db)
	proveedores := store.NewProveedorRepository(db)
	cotizaciones := store.NewCotizacionRepository(db)
	reservaciones := store.NewReservacionRepository(db)

	// Liveness root
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "")
	})

	AuthRoutes(r, controllers.NewAuthController(usuarios, tokens))
	UsuarioRoutes(r, controllers.NewUsuarioController(usuarios), tokens)
	ProveedorRoutes(r, controllers.NewProveedorController(proveedores), tokens)
	CotizacionRoutes(r, controllers.NewCotizacionController(cotizaciones), tokens)
	ReservacionRoutes(r, controllers.NewReservacionController(reservaciones, usuarios), tokens)

	return r
}
