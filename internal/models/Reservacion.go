package models

import (
	"encoding/json"
	"time"
)

// EstadoReservacion tracks a booking's lifecycle; new bookings are
// always Confirmada.
type EstadoReservacion int

const (
	ReservacionCompletada EstadoReservacion = 1
	ReservacionCancelada  EstadoReservacion = 2
	ReservacionConfirmada EstadoReservacion = 3
)

var estadoReservacionPorNombre = map[string]int{
	"Completada": int(ReservacionCompletada),
	"Cancelada":  int(ReservacionCancelada),
	"Confirmada": int(ReservacionConfirmada),
}

func (e EstadoReservacion) String() string {
	switch e {
	case ReservacionCompletada:
		return "Completada"
	case ReservacionCancelada:
		return "Cancelada"
	case ReservacionConfirmada:
		return "Confirmada"
	default:
		return ""
	}
}

func ParseEstadoReservacion(raw json.RawMessage) (EstadoReservacion, error) {
	code, err := parseEnumJSON(raw, "estado", estadoReservacionPorNombre)
	if err != nil {
		return 0, err
	}
	return EstadoReservacion(code), nil
}

func (e EstadoReservacion) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

func (e *EstadoReservacion) UnmarshalJSON(data []byte) error {
	code, err := parseEnumJSON(data, "estado", estadoReservacionPorNombre)
	if err != nil {
		return err
	}
	*e = EstadoReservacion(code)
	return nil
}

// Reservacion is a date-ranged booking owned by exactly one Usuario.
// FechaFin must be strictly after FechaInicio.
type Reservacion struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	FechaInicio Fecha             `gorm:"type:date" json:"fecha_inicio"`
	FechaFin    Fecha             `gorm:"type:date" json:"fecha_fin"`
	Detalle     string            `gorm:"size:500" json:"detalle"`
	Estado      EstadoReservacion `gorm:"default:3" json:"estado"`
	IDUsuario   uint              `gorm:"not null" json:"id_usuario"`
	Usuario     *Usuario          `gorm:"foreignKey:IDUsuario;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time         `json:"-"`
	UpdatedAt   time.Time         `json:"-"`
}

func (r *Reservacion) ToJSON() map[string]any {
	return map[string]any{
		"id":                  r.ID,
		"fecha_inicio":        r.FechaInicio.String(),
		"fecha_fin":           r.FechaFin.String(),
		"detalle":             r.Detalle,
		"estado":              r.Estado.String(),
		"id_usuario":          r.IDUsuario,
		"fecha_creacion":      Fecha(r.CreatedAt).String(),
		"fecha_actualizacion": Fecha(r.UpdatedAt).String(),
	}
}
