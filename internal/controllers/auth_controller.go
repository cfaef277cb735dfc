package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/auth"
	"turismo_api/internal/store"
	"turismo_api/internal/validation"
)

type AuthController struct {
	usuarios *store.UsuarioRepository
	tokens   *auth.TokenManager
}

func NewAuthController(usuarios *store.UsuarioRepository, tokens *auth.TokenManager) *AuthController {
	return &AuthController{usuarios: usuarios, tokens: tokens}
}

type loginInput struct {
	Correo     string `json:"correo_electronico"`
	Contrasena string `json:"contrasena"`
}

// Login checks credentials and issues an access token. Unknown email
// and wrong password produce the same 401 body so the response does
// not leak which accounts exist.
func (ctl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validation.Requerido("correo_electronico", input.Correo); err != nil {
		abortWithError(c, err)
		return
	}
	if err := validation.Requerido("contrasena", input.Contrasena); err != nil {
		abortWithError(c, err)
		return
	}

	usuario, err := ctl.usuarios.FindByCorreo(input.Correo)
	if err != nil {
		var apiErr *apierrors.Error
		if errors.As(err, &apiErr) && apiErr.Kind == apierrors.KindNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciales inválidas"})
			return
		}
		abortWithError(c, err)
		return
	}
	if !auth.CheckPassword(input.Contrasena, usuario.Contrasena) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciales inválidas"})
		return
	}

	token, err := ctl.tokens.Issue(usuario.Correo, usuario.Rol)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logrus.WithField("correo", usuario.Correo).Info("login")
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
