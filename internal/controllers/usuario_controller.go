package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/auth"
	"turismo_api/internal/models"
	"turismo_api/internal/store"
	"turismo_api/internal/validation"
)

type UsuarioController struct {
	usuarios *store.UsuarioRepository
}

func NewUsuarioController(usuarios *store.UsuarioRepository) *UsuarioController {
	return &UsuarioController{usuarios: usuarios}
}

// List returns every registered user; Administrador only (enforced by
// the route group).
func (ctl *UsuarioController) List(c *gin.Context) {
	usuarios, err := ctl.usuarios.List()
	if err != nil {
		abortWithError(c, err)
		return
	}

	salida := make([]map[string]any, 0, len(usuarios))
	for i := range usuarios {
		salida = append(salida, usuarios[i].ToJSON())
	}
	c.JSON(http.StatusOK, salida)
}

// Enum fields bind as raw JSON so a bad value cannot preempt the
// presence checks that come before it in field order.
type crearUsuarioInput struct {
	Nombre     string          `json:"nombre"`
	Cedula     string          `json:"cedula"`
	Correo     string          `json:"correo_electronico"`
	Contrasena string          `json:"contrasena"`
	Rol        json.RawMessage `json:"rol"`
}

// Create is the public registration endpoint. Rules run left-to-right
// in declared field order and the first failure wins.
func (ctl *UsuarioController) Create(c *gin.Context) {
	var input crearUsuarioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.Requerido("nombre", input.Nombre); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("cedula", input.Cedula); err != nil {
		abortWithError(c, err)
		return
	}
	dup, err := ctl.usuarios.CedulaExists(input.Cedula)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if dup {
		abortWithError(c, apierrors.DuplicateKey(store.MsgCedulaDuplicada))
		return
	}
	if err := validation.Requerido("correo_electronico", input.Correo); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.CorreoValido(input.Correo); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("contrasena", input.Contrasena); err != nil {
		abortWithError(c, err)
		return
	}

	rol := models.RolCliente
	if len(input.Rol) > 0 && string(input.Rol) != "null" {
		rol, err = models.ParseRol(input.Rol)
		if err != nil {
			abortWithError(c, err)
			return
		}
	}

	digest, err := auth.HashPassword(input.Contrasena)
	if err != nil {
		abortWithError(c, err)
		return
	}

	usuario := models.Usuario{
		Nombre:     input.Nombre,
		Cedula:     input.Cedula,
		Correo:     input.Correo,
		Contrasena: digest,
		Rol:        rol,
	}
	if err := ctl.usuarios.Create(&usuario); err != nil {
		abortWithError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{"id": usuario.ID, "rol": usuario.Rol.String()}).Info("usuario creado")
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Usuario creado", "usuario": usuario.ToJSON()})
}
