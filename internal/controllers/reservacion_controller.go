package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
	"turismo_api/internal/store"
	"turismo_api/internal/validation"
)

type ReservacionController struct {
	reservaciones *store.ReservacionRepository
	usuarios      *store.UsuarioRepository
}

func NewReservacionController(reservaciones *store.ReservacionRepository, usuarios *store.UsuarioRepository) *ReservacionController {
	return &ReservacionController{reservaciones: reservaciones, usuarios: usuarios}
}

func (ctl *ReservacionController) List(c *gin.Context) {
	reservaciones, err := ctl.reservaciones.List()
	if err != nil {
		abortWithError(c, err)
		return
	}

	salida := make([]map[string]any, 0, len(reservaciones))
	for i := range reservaciones {
		salida = append(salida, reservaciones[i].ToJSON())
	}
	c.JSON(http.StatusOK, salida)
}

// Dates bind as strings so the format error carries the field name.
type crearReservacionInput struct {
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Detalle     string `json:"detalle"`
	IDUsuario   uint   `json:"id_usuario"`
}

// Create registers a booking. Estado is always Confirmada regardless
// of caller input; the owning user must exist. The existence pre-check
// gives the friendly message, the FK constraint stays authoritative.
func (ctl *ReservacionController) Create(c *gin.Context) {
	var input crearReservacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.Requerido("fecha_inicio", input.FechaInicio); err != nil {
		abortWithError(c, err)
		return
	}
	inicio, err := models.ParseFecha("fecha_inicio", input.FechaInicio)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("fecha_fin", input.FechaFin); err != nil {
		abortWithError(c, err)
		return
	}
	fin, err := models.ParseFecha("fecha_fin", input.FechaFin)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.RangoFechas(inicio, fin); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("detalle", input.Detalle); err != nil {
		abortWithError(c, err)
		return
	}
	if input.IDUsuario == 0 {
		abortWithError(c, apierrors.Validation("El campo 'id_usuario' es obligatorio"))
		return
	}
	existe, err := ctl.usuarios.Exists(input.IDUsuario)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if !existe {
		abortWithError(c, apierrors.Validation("El usuario referenciado no existe"))
		return
	}

	reservacion := models.Reservacion{
		FechaInicio: inicio,
		FechaFin:    fin,
		Detalle:     input.Detalle,
		Estado:      models.ReservacionConfirmada,
		IDUsuario:   input.IDUsuario,
	}
	if err := ctl.reservaciones.Create(&reservacion); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Reservación creada", "reservacion": reservacion.ToJSON()})
}

type actualizarReservacionInput struct {
	FechaInicio *string         `json:"fecha_inicio"`
	FechaFin    *string         `json:"fecha_fin"`
	Detalle     *string         `json:"detalle"`
	Estado      json.RawMessage `json:"estado"`
	IDUsuario   *uint           `json:"id_usuario"`
}

// Update merges the supplied fields and re-checks the date ordering
// against the merged values.
func (ctl *ReservacionController) Update(c *gin.Context) {
	reservacion, err := ctl.reservaciones.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var input actualizarReservacionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FechaInicio != nil {
		inicio, err := models.ParseFecha("fecha_inicio", *input.FechaInicio)
		if err != nil {
			abortWithError(c, err)
			return
		}
		reservacion.FechaInicio = inicio
	}
	if input.FechaFin != nil {
		fin, err := models.ParseFecha("fecha_fin", *input.FechaFin)
		if err != nil {
			abortWithError(c, err)
			return
		}
		reservacion.FechaFin = fin
	}
	if err := validation.RangoFechas(reservacion.FechaInicio, reservacion.FechaFin); err != nil {
		abortWithError(c, err)
		return
	}
	if input.Detalle != nil {
		reservacion.Detalle = *input.Detalle
	}
	if len(input.Estado) > 0 && string(input.Estado) != "null" {
		estado, err := models.ParseEstadoReservacion(input.Estado)
		if err != nil {
			abortWithError(c, err)
			return
		}
		reservacion.Estado = estado
	}
	if input.IDUsuario != nil {
		existe, err := ctl.usuarios.Exists(*input.IDUsuario)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !existe {
			abortWithError(c, apierrors.Validation("El usuario referenciado no existe"))
			return
		}
		reservacion.IDUsuario = *input.IDUsuario
	}

	if err := ctl.reservaciones.Update(reservacion); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservacion.ToJSON())
}

func (ctl *ReservacionController) Delete(c *gin.Context) {
	if err := ctl.reservaciones.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Reservación eliminada"})
}
