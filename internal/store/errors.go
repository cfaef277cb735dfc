// Package store holds the per-entity repositories. Uniqueness and
// referential integrity are ultimately enforced by the database;
// repositories classify those rejections into the typed errors the
// handlers know how to surface.
package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
)

const (
	MsgCedulaDuplicada    = "La cédula ya está registrada"
	msgUsuarioReferencial = "El usuario referenciado no existe"
)

// classifyWriteError normalizes constraint rejections from the
// database. The unique constraint is the authoritative duplicate
// check; pre-checks done by handlers are only a fast path, so a late
// violation here must produce the same error. lib/pq codes are checked
// as a backstop to gorm's translated errors.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierrors.DuplicateKey(MsgCedulaDuplicada)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apierrors.Validation(msgUsuarioReferencial)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return apierrors.DuplicateKey(MsgCedulaDuplicada)
		case "23503":
			return apierrors.Validation(msgUsuarioReferencial)
		}
	}
	return err
}
