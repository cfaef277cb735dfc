package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turismo_api/internal/models"
)

func TestRequerido(t *testing.T) {
	require.NoError(t, Requerido("nombre", "A"))

	err := Requerido("nombre", "")
	require.Error(t, err)
	assert.Equal(t, "El campo 'nombre' es obligatorio", err.Error())
}

func TestCorreoValido(t *testing.T) {
	valid := []string{"a@b.com", "persona.apellido@empresa.com.mx", "x_1@dominio.org"}
	for _, correo := range valid {
		assert.NoError(t, CorreoValido(correo), correo)
	}

	invalid := []string{"bademail", "a@b", "@b.com", "a@.com", "a b@c.com", "a@b .com"}
	for _, correo := range invalid {
		assert.Error(t, CorreoValido(correo), correo)
	}
}

func TestEnlaceValido(t *testing.T) {
	valid := []string{
		"https://hotel.com",
		"http://hotel.com/reservas",
		"hotel.com",
		"www.tours.co/paquetes?promo=1",
	}
	for _, enlace := range valid {
		assert.NoError(t, EnlaceValido(enlace), enlace)
	}

	invalid := []string{"badurl", "http://", "ftp espacio.com", "hotel"}
	for _, enlace := range invalid {
		assert.Error(t, EnlaceValido(enlace), enlace)
	}
}

func TestRangoFechas(t *testing.T) {
	inicio, err := models.ParseFecha("fecha_inicio", "2025-08-21")
	require.NoError(t, err)
	fin, err := models.ParseFecha("fecha_fin", "2025-08-22")
	require.NoError(t, err)

	assert.NoError(t, RangoFechas(inicio, fin))
	// equal dates are rejected: the end must be strictly later
	assert.Error(t, RangoFechas(inicio, inicio))
	assert.Error(t, RangoFechas(fin, inicio))
}
