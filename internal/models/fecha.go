package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"turismo_api/internal/apierrors"
)

const fechaLayout = "2006-01-02"

// Fecha is a calendar date stored without a time-of-day component and
// rendered as YYYY-MM-DD on the wire.
type Fecha time.Time

// ParseFecha parses a YYYY-MM-DD string, failing with a validation
// error naming the field on any other shape.
func ParseFecha(campo, valor string) (Fecha, error) {
	t, err := time.Parse(fechaLayout, valor)
	if err != nil {
		return Fecha{}, apierrors.Validation("El campo '%s' debe tener formato YYYY-MM-DD", campo)
	}
	return Fecha(t), nil
}

func (f Fecha) Time() time.Time {
	return time.Time(f)
}

func (f Fecha) String() string {
	return time.Time(f).Format(fechaLayout)
}

// After reports whether f is strictly later than other.
func (f Fecha) After(other Fecha) bool {
	return time.Time(f).After(time.Time(other))
}

func (f Fecha) IsZero() bool {
	return time.Time(f).IsZero()
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return err
	}
	*f = Fecha(t)
	return nil
}

// Value implements driver.Valuer so gorm can persist the date column.
func (f Fecha) Value() (driver.Value, error) {
	return time.Time(f), nil
}

// Scan implements sql.Scanner; drivers hand dates back as time.Time,
// string or []byte depending on the backend.
func (f *Fecha) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*f = Fecha(v)
		return nil
	case string:
		t, err := time.Parse(fechaLayout, v[:min(len(v), len(fechaLayout))])
		if err != nil {
			return err
		}
		*f = Fecha(t)
		return nil
	case []byte:
		return f.Scan(string(v))
	case nil:
		*f = Fecha{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Fecha", src)
	}
}
