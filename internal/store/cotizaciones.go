package store

import (
	"errors"

	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

type CotizacionRepository struct {
	db *gorm.DB
}

func NewCotizacionRepository(db *gorm.DB) *CotizacionRepository {
	return &CotizacionRepository{db: db}
}

func (r *CotizacionRepository) List() ([]models.Cotizacion, error) {
	var cotizaciones []models.Cotizacion
	if err := r.db.Order("id").Find(&cotizaciones).Error; err != nil {
		return nil, err
	}
	return cotizaciones, nil
}

func (r *CotizacionRepository) Create(q *models.Cotizacion) error {
	return classifyWriteError(r.db.Create(q).Error)
}

func (r *CotizacionRepository) Get(id string) (*models.Cotizacion, error) {
	var cotizacion models.Cotizacion
	if err := r.db.First(&cotizacion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Cotización no encontrada")
		}
		return nil, err
	}
	return &cotizacion, nil
}

func (r *CotizacionRepository) Update(q *models.Cotizacion) error {
	return classifyWriteError(r.db.Save(q).Error)
}

func (r *CotizacionRepository) Delete(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Cotizacion{}, "id = ?", id).Error
}
