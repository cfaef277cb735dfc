package models

import (
	"encoding/json"
	"time"
)

// Rol gates endpoint access for a Usuario.
type Rol int

const (
	RolCliente       Rol = 1
	RolAgente        Rol = 2
	RolAdministrador Rol = 3
)

var rolPorNombre = map[string]int{
	"Cliente":       int(RolCliente),
	"Agente":        int(RolAgente),
	"Administrador": int(RolAdministrador),
}

func (r Rol) String() string {
	switch r {
	case RolCliente:
		return "Cliente"
	case RolAgente:
		return "Agente"
	case RolAdministrador:
		return "Administrador"
	default:
		return ""
	}
}

// ParseRol accepts the integer code or the symbolic name of a role.
func ParseRol(raw json.RawMessage) (Rol, error) {
	code, err := parseEnumJSON(raw, "rol", rolPorNombre)
	if err != nil {
		return 0, err
	}
	return Rol(code), nil
}

// RolDesdeNombre resolves a role by its symbolic name only; token
// claims carry the name, never the code.
func RolDesdeNombre(nombre string) (Rol, bool) {
	code, ok := rolPorNombre[nombre]
	return Rol(code), ok
}

func (r Rol) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rol) UnmarshalJSON(data []byte) error {
	code, err := parseEnumJSON(data, "rol", rolPorNombre)
	if err != nil {
		return err
	}
	*r = Rol(code)
	return nil
}

// Usuario is a back-office account. The password column only ever
// holds a bcrypt digest and is never serialized.
type Usuario struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Nombre     string    `gorm:"size:200" json:"nombre"`
	Cedula     string    `gorm:"size:50;uniqueIndex" json:"cedula"`
	Correo     string    `gorm:"size:100" json:"correo_electronico"`
	Contrasena string    `gorm:"size:100" json:"-"`
	Rol        Rol       `gorm:"default:1" json:"rol"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (u *Usuario) ToJSON() map[string]any {
	return map[string]any{
		"id":                  u.ID,
		"nombre":              u.Nombre,
		"cedula":              u.Cedula,
		"correo_electronico":  u.Correo,
		"rol":                 u.Rol.String(),
		"fecha_creacion":      Fecha(u.CreatedAt).String(),
		"fecha_actualizacion": Fecha(u.UpdatedAt).String(),
	}
}
