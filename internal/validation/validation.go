// Package validation holds the per-field rules applied before any
// persistence mutation. Checks run in declared field order and the
// first failure short-circuits the request.
package validation

import (
	"regexp"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

// Fixed shapes, deliberately simpler than the full RFCs.
var (
	correoRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	enlaceRegexp = regexp.MustCompile(`^(https?://)?[A-Za-z0-9.-]+\.[A-Za-z]{2,}(/\S*)?$`)
)

// Requerido rejects empty values.
func Requerido(campo, valor string) error {
	if valor == "" {
		return apierrors.Validation("El campo '%s' es obligatorio", campo)
	}
	return nil
}

// CorreoValido checks the local@domain.tld shape.
func CorreoValido(correo string) error {
	if !correoRegexp.MatchString(correo) {
		return apierrors.Validation("El campo 'correo_electronico' no tiene un formato válido")
	}
	return nil
}

// EnlaceValido checks the optional-scheme dotted-host URL shape.
func EnlaceValido(enlace string) error {
	if !enlaceRegexp.MatchString(enlace) {
		return apierrors.Validation("El campo 'enlace' no tiene un formato válido")
	}
	return nil
}

// RangoFechas enforces that a booking ends strictly after it starts.
func RangoFechas(inicio, fin models.Fecha) error {
	if !fin.After(inicio) {
		return apierrors.Validation("La 'fecha_fin' debe ser posterior a la 'fecha_inicio'")
	}
	return nil
}
