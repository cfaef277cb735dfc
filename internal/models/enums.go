package models

import (
	"encoding/json"

	"turismo_api/internal/apierrors"
)

// parseEnumJSON resolves a raw JSON value against an enum's name table.
// Both the integer code and the symbolic name are accepted; anything
// else fails with a validation error naming the field.
func parseEnumJSON(raw json.RawMessage, campo string, porNombre map[string]int) (int, error) {
	var code int
	if err := json.Unmarshal(raw, &code); err == nil {
		for _, c := range porNombre {
			if c == code {
				return code, nil
			}
		}
		return 0, invalidEnum(campo)
	}

	var nombre string
	if err := json.Unmarshal(raw, &nombre); err == nil {
		if c, ok := porNombre[nombre]; ok {
			return c, nil
		}
	}
	return 0, invalidEnum(campo)
}

func invalidEnum(campo string) error {
	return apierrors.Validation("El valor de '%s' no es válido", campo)
}
