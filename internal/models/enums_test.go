package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRol(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Rol
		ok   bool
	}{
		{"codigo cliente", `1`, RolCliente, true},
		{"codigo agente", `2`, RolAgente, true},
		{"codigo administrador", `3`, RolAdministrador, true},
		{"nombre cliente", `"Cliente"`, RolCliente, true},
		{"nombre agente", `"Agente"`, RolAgente, true},
		{"nombre administrador", `"Administrador"`, RolAdministrador, true},
		{"codigo fuera de rango", `7`, 0, false},
		{"codigo cero", `0`, 0, false},
		{"nombre desconocido", `"NoExiste"`, 0, false},
		{"tipo no admitido", `true`, 0, false},
		{"nombre en minusculas", `"cliente"`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRol(json.RawMessage(tc.raw))
			if !tc.ok {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "rol")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnumCodeAndNameNormalizeEqually(t *testing.T) {
	tipoPorCodigo, err := ParseTipoProveedor(json.RawMessage(`4`))
	require.NoError(t, err)
	tipoPorNombre, err := ParseTipoProveedor(json.RawMessage(`"RentaVehiculo"`))
	require.NoError(t, err)
	assert.Equal(t, tipoPorCodigo, tipoPorNombre)

	estadoPorCodigo, err := ParseEstadoCotizacion(json.RawMessage(`3`))
	require.NoError(t, err)
	estadoPorNombre, err := ParseEstadoCotizacion(json.RawMessage(`"Aceptada"`))
	require.NoError(t, err)
	assert.Equal(t, estadoPorCodigo, estadoPorNombre)

	resPorCodigo, err := ParseEstadoReservacion(json.RawMessage(`2`))
	require.NoError(t, err)
	resPorNombre, err := ParseEstadoReservacion(json.RawMessage(`"Cancelada"`))
	require.NoError(t, err)
	assert.Equal(t, resPorCodigo, resPorNombre)
}

func TestEnumsMarshalAsNames(t *testing.T) {
	b, err := json.Marshal(RolAdministrador)
	require.NoError(t, err)
	assert.Equal(t, `"Administrador"`, string(b))

	b, err = json.Marshal(TipoHotel)
	require.NoError(t, err)
	assert.Equal(t, `"Hotel"`, string(b))

	b, err = json.Marshal(CotizacionPendiente)
	require.NoError(t, err)
	assert.Equal(t, `"Pendiente"`, string(b))

	b, err = json.Marshal(ReservacionConfirmada)
	require.NoError(t, err)
	assert.Equal(t, `"Confirmada"`, string(b))
}

func TestEnumUnmarshalRejectsInvalid(t *testing.T) {
	var tipo TipoProveedor
	require.Error(t, json.Unmarshal([]byte(`5`), &tipo))
	require.Error(t, json.Unmarshal([]byte(`"Motel"`), &tipo))
	require.NoError(t, json.Unmarshal([]byte(`"Agencia"`), &tipo))
	assert.Equal(t, TipoAgencia, tipo)

	var estado EstadoReservacion
	require.Error(t, json.Unmarshal([]byte(`0`), &estado))
	require.NoError(t, json.Unmarshal([]byte(`1`), &estado))
	assert.Equal(t, ReservacionCompletada, estado)
}

func TestUsuarioToJSONOmitsContrasena(t *testing.T) {
	u := Usuario{ID: 1, Nombre: "A", Cedula: "1", Correo: "a@b.com", Contrasena: "$2a$10$hash", Rol: RolCliente}
	out := u.ToJSON()
	assert.NotContains(t, out, "contrasena")
	assert.Equal(t, "Cliente", out["rol"])
}
