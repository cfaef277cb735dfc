package store

import (
	"errors"

	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// List returns every user in insertion order.
func (r *UsuarioRepository) List() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.Order("id").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioRepository) Create(u *models.Usuario) error {
	return classifyWriteError(r.db.Create(u).Error)
}

// FindByCorreo looks a user up by email for login. A miss is reported
// as NotFound so the caller can fold it into the credentials error.
func (r *UsuarioRepository) FindByCorreo(correo string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.Where("correo = ?", correo).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	return &usuario, nil
}

// CedulaExists is the duplicate fast path; the unique index remains
// the authoritative check at insert time.
func (r *UsuarioRepository) CedulaExists(cedula string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Usuario{}).Where("cedula = ?", cedula).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Exists reports whether a user id is present; used as the referential
// pre-check for reservations.
func (r *UsuarioRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Usuario{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
