package store

import (
	"errors"

	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

type ProveedorRepository struct {
	db *gorm.DB
}

func NewProveedorRepository(db *gorm.DB) *ProveedorRepository {
	return &ProveedorRepository{db: db}
}

func (r *ProveedorRepository) List() ([]models.Proveedor, error) {
	var proveedores []models.Proveedor
	if err := r.db.Order("id").Find(&proveedores).Error; err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (r *ProveedorRepository) Create(p *models.Proveedor) error {
	return classifyWriteError(r.db.Create(p).Error)
}

// Get fails the whole operation with NotFound on an unknown id.
func (r *ProveedorRepository) Get(id string) (*models.Proveedor, error) {
	var proveedor models.Proveedor
	if err := r.db.First(&proveedor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Proveedor no encontrado")
		}
		return nil, err
	}
	return &proveedor, nil
}

func (r *ProveedorRepository) Update(p *models.Proveedor) error {
	return classifyWriteError(r.db.Save(p).Error)
}

func (r *ProveedorRepository) Delete(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Proveedor{}, "id = ?", id).Error
}
