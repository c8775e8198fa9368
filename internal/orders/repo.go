package orders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/pkg/db/models"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"gorm.io/gorm"
)

// OrderView is one row of a caller's order history. The payload is surfaced
// as-is when it holds valid JSON and as null otherwise.
type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repository reads the order history written by the checkout pipeline.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds an order history repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListByUser returns the caller's orders, newest first.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			ID:        order.ID,
			Payload:   rawPayload(order.Payload),
			CreatedAt: order.CreatedAt,
		})
	}
	return views, nil
}

func rawPayload(payload []byte) json.RawMessage {
	if len(payload) == 0 || !json.Valid(payload) {
		return nil
	}
	return json.RawMessage(payload)
}
