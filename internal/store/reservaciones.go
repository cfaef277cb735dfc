package store

import (
	"errors"

	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

type ReservacionRepository struct {
	db *gorm.DB
}

func NewReservacionRepository(db *gorm.DB) *ReservacionRepository {
	return &ReservacionRepository{db: db}
}

func (r *ReservacionRepository) List() ([]models.Reservacion, error) {
	var reservaciones []models.Reservacion
	if err := r.db.Order("id").Find(&reservaciones).Error; err != nil {
		return nil, err
	}
	return reservaciones, nil
}

func (r *ReservacionRepository) Create(res *models.Reservacion) error {
	return classifyWriteError(r.db.Create(res).Error)
}

func (r *ReservacionRepository) Get(id string) (*models.Reservacion, error) {
	var reservacion models.Reservacion
	if err := r.db.First(&reservacion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound("Reservación no encontrada")
		}
		return nil, err
	}
	return &reservacion, nil
}

func (r *ReservacionRepository) Update(res *models.Reservacion) error {
	return classifyWriteError(r.db.Save(res).Error)
}

func (r *ReservacionRepository) Delete(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	return r.db.Delete(&models.Reservacion{}, "id = ?", id).Error
}
