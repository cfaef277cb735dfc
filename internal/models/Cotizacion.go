package models

import (
	"encoding/json"
	"time"
)

// EstadoCotizacion tracks a quote through its answer lifecycle.
type EstadoCotizacion int

const (
	CotizacionPendiente  EstadoCotizacion = 1
	CotizacionRespondida EstadoCotizacion = 2
	CotizacionAceptada   EstadoCotizacion = 3
	CotizacionRechazada  EstadoCotizacion = 4
)

var estadoCotizacionPorNombre = map[string]int{
	"Pendiente":  int(CotizacionPendiente),
	"Respondida": int(CotizacionRespondida),
	"Aceptada":   int(CotizacionAceptada),
	"Rechazada":  int(CotizacionRechazada),
}

func (e EstadoCotizacion) String() string {
	switch e {
	case CotizacionPendiente:
		return "Pendiente"
	case CotizacionRespondida:
		return "Respondida"
	case CotizacionAceptada:
		return "Aceptada"
	case CotizacionRechazada:
		return "Rechazada"
	default:
		return ""
	}
}

func ParseEstadoCotizacion(raw json.RawMessage) (EstadoCotizacion, error) {
	code, err := parseEnumJSON(raw, "estado", estadoCotizacionPorNombre)
	if err != nil {
		return 0, err
	}
	return EstadoCotizacion(code), nil
}

func (e EstadoCotizacion) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *EstadoCotizacion) UnmarshalJSON(data []byte) error {
	code, err := parseEnumJSON(data, "estado", estadoCotizacionPorNombre)
	if err != nil {
		return err
	}
	*e = EstadoCotizacion(code)
	return nil
}

// Cotizacion is a priced-service request; it always starts Pendiente.
type Cotizacion struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Servicio  string           `gorm:"size:100" json:"servicio"`
	Detalle   string           `gorm:"size:500" json:"detalle"`
	Estado    EstadoCotizacion `gorm:"default:1" json:"estado"`
	CreatedAt time.Time        `json:"-"`
	UpdatedAt time.Time        `json:"-"`
}

func (q *Cotizacion) ToJSON() map[string]any {
	return map[string]any{
		"id":                  q.ID,
		"servicio":            q.Servicio,
		"detalle":             q.Detalle,
		"estado":              q.Estado.String(),
		"fecha_creacion":      Fecha(q.CreatedAt).String(),
		"fecha_actualizacion": Fecha(q.UpdatedAt).String(),
	}
}
