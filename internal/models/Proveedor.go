package models

import (
	"encoding/json"
	"time"
)

// TipoProveedor classifies the kind of service a provider offers.
type TipoProveedor int

const (
	TipoHotel         TipoProveedor = 1
	TipoTour          TipoProveedor = 2
	TipoAgencia       TipoProveedor = 3
	TipoRentaVehiculo TipoProveedor = 4
)

var tipoProveedorPorNombre = map[string]int{
	"Hotel":         int(TipoHotel),
	"Tour":          int(TipoTour),
	"Agencia":       int(TipoAgencia),
	"RentaVehiculo": int(TipoRentaVehiculo),
}

func (t TipoProveedor) String() string {
	switch t {
	case TipoHotel:
		return "Hotel"
	case TipoTour:
		return "Tour"
	case TipoAgencia:
		return "Agencia"
	case TipoRentaVehiculo:
		return "RentaVehiculo"
	default:
		return ""
	}
}

func ParseTipoProveedor(raw json.RawMessage) (TipoProveedor, error) {
	code, err := parseEnumJSON(raw, "tipo", tipoProveedorPorNombre)
	if err != nil {
		return 0, err
	}
	return TipoProveedor(code), nil
}

func (t TipoProveedor) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TipoProveedor) UnmarshalJSON(data []byte) error {
	code, err := parseEnumJSON(data, "tipo", tipoProveedorPorNombre)
	if err != nil {
		return err
	}
	*t = TipoProveedor(code)
	return nil
}

// Proveedor is a service provider reachable through an external link.
type Proveedor struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Nombre    string        `gorm:"size:200" json:"nombre"`
	Tipo      TipoProveedor `json:"tipo"`
	Enlace    string        `gorm:"size:500" json:"enlace"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

func (p *Proveedor) ToJSON() map[string]any {
	return map[string]any{
		"id":                  p.ID,
		"nombre":              p.Nombre,
		"tipo":                p.Tipo.String(),
		"enlace":              p.Enlace,
		"fecha_creacion":      Fecha(p.CreatedAt).String(),
		"fecha_actualizacion": Fecha(p.UpdatedAt).String(),
	}
}
