package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"turismo_api/internal/models"
	"turismo_api/internal/store"
	"turismo_api/internal/validation"
)

type CotizacionController struct {
	cotizaciones *store.CotizacionRepository
}

func NewCotizacionController(cotizaciones *store.CotizacionRepository) *CotizacionController {
	return &CotizacionController{cotizaciones: cotizaciones}
}

func (ctl *CotizacionController) List(c *gin.Context) {
	cotizaciones, err := ctl.cotizaciones.List()
	if err != nil {
		abortWithError(c, err)
		return
	}

	salida := make([]map[string]any, 0, len(cotizaciones))
	for i := range cotizaciones {
		salida = append(salida, cotizaciones[i].ToJSON())
	}
	c.JSON(http.StatusOK, salida)
}

type crearCotizacionInput struct {
	Servicio string `json:"servicio"`
	Detalle  string `json:"detalle"`
}

// Create registers a quote. Any estado sent by the caller is ignored;
// quotes always start Pendiente.
func (ctl *CotizacionController) Create(c *gin.Context) {
	var input crearCotizacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.Requerido("servicio", input.Servicio); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("detalle", input.Detalle); err != nil {
		abortWithError(c, err)
		return
	}

	cotizacion := models.Cotizacion{
		Servicio: input.Servicio,
		Detalle:  input.Detalle,
		Estado:   models.CotizacionPendiente,
	}
	if err := ctl.cotizaciones.Create(&cotizacion); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Cotización creada", "cotizacion": cotizacion.ToJSON()})
}

type actualizarCotizacionInput struct {
	Servicio *string         `json:"servicio"`
	Detalle  *string         `json:"detalle"`
	Estado   json.RawMessage `json:"estado"`
}

func (ctl *CotizacionController) Update(c *gin.Context) {
	cotizacion, err := ctl.cotizaciones.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var input actualizarCotizacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Servicio != nil {
		cotizacion.Servicio = *input.Servicio
	}
	if input.Detalle != nil {
		cotizacion.Detalle = *input.Detalle
	}
	if len(input.Estado) > 0 && string(input.Estado) != "null" {
		estado, err := models.ParseEstadoCotizacion(input.Estado)
		if err != nil {
			abortWithError(c, err)
			return
		}
		cotizacion.Estado = estado
	}

	if err := ctl.cotizaciones.Update(cotizacion); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cotizacion.ToJSON())
}

func (ctl *CotizacionController) Delete(c *gin.Context) {
	if err := ctl.cotizaciones.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Cotización eliminada"})
}
