package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository is the persistence surface for reservation holds. The tx-scoped
// methods run inside the caller's transaction so the inventory credit and the
// row removal commit together.
type Repository interface {
	ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]models.Reservation, error)
	FindInTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Reservation, error)
	DeleteInTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a reservation repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListExpired returns holds whose expiry has passed, oldest first.
func (r *repository) ListExpired(ctx context.Context, cutoff time.Time, limit int) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("expires_at <= ?", cutoff).
		Order("expires_at ASC").
		Limit(limit).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *repository) FindInTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := tx.WithContext(ctx).First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteInTx removes the hold and reports how many rows went away. A zero
// count means another path already settled the reservation.
func (r *repository) DeleteInTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
