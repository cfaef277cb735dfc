package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"turismo_api/internal/models"
	"turismo_api/internal/store"
	"turismo_api/internal/validation"
)

type ProveedorController struct {
	proveedores *store.ProveedorRepository
}

func NewProveedorController(proveedores *store.ProveedorRepository) *ProveedorController {
	return &ProveedorController{proveedores: proveedores}
}

func (ctl *ProveedorController) List(c *gin.Context) {
	proveedores, err := ctl.proveedores.List()
	if err != nil {
		abortWithError(c, err)
		return
	}

	salida := make([]map[string]any, 0, len(proveedores))
	for i := range proveedores {
		salida = append(salida, proveedores[i].ToJSON())
	}
	c.JSON(http.StatusOK, salida)
}

type crearProveedorInput struct {
	Nombre string          `json:"nombre"`
	Tipo   json.RawMessage `json:"tipo"`
	Enlace string          `json:"enlace"`
}

func (ctl *ProveedorController) Create(c *gin.Context) {
	var input crearProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.Requerido("nombre", input.Nombre); err != nil {
		abortWithError(c, err)
		return
	}
	if len(input.Tipo) == 0 || string(input.Tipo) == "null" {
		abortWithError(c, validation.Requerido("tipo", ""))
		return
	}
	tipo, err := models.ParseTipoProveedor(input.Tipo)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("enlace", input.Enlace); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.EnlaceValido(input.Enlace); err != nil {
		abortWithError(c, err)
		return
	}

	proveedor := models.Proveedor{Nombre: input.Nombre, Tipo: tipo, Enlace: input.Enlace}
	if err := ctl.proveedores.Create(&proveedor); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Proveedor creado", "proveedor": proveedor.ToJSON()})
}

type actualizarProveedorInput struct {
	Nombre *string         `json:"nombre"`
	Tipo   json.RawMessage `json:"tipo"`
	Enlace *string         `json:"enlace"`
}

// Update overwrites only the supplied fields; each one is re-validated
// with the same rule as on creation.
func (ctl *ProveedorController) Update(c *gin.Context) {
	proveedor, err := ctl.proveedores.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var input actualizarProveedorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Nombre != nil {
		if err := validation.Requerido("nombre", *input.Nombre); err != nil {
			abortWithError(c, err)
			return
		}
		proveedor.Nombre = *input.Nombre
	}
	if len(input.Tipo) > 0 && string(input.Tipo) != "null" {
		tipo, err := models.ParseTipoProveedor(input.Tipo)
		if err != nil {
			abortWithError(c, err)
			return
		}
		proveedor.Tipo = tipo
	}
	if input.Enlace != nil {
		if err := validation.EnlaceValido(*input.Enlace); err != nil {
			abortWithError(c, err)
			return
		}
		proveedor.Enlace = *input.Enlace
	}

	if err := ctl.proveedores.Update(proveedor); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor.ToJSON())
}

func (ctl *ProveedorController) Delete(c *gin.Context) {
	if err := ctl.proveedores.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Proveedor eliminado"})
}
