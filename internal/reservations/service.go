package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mayaverdell/threadline-backend/internal/inventory"
	"github.com/mayaverdell/threadline-backend/pkg/db"
	pkgerrors "github.com/mayaverdell/threadline-backend/pkg/errors"
	"github.com/mayaverdell/threadline-backend/pkg/logger"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// sweepBatchSize bounds how many expired holds one sweep pass settles.
const sweepBatchSize = 100

// Service owns the reservation release flow. Releasing a hold credits the
// quantity back to its variant and removes the row in one transaction, so a
// hold can only ever be settled once.
type Service interface {
	Release(ctx context.Context, reservationID string) error
	SweepExpired(ctx context.Context) (int, error)
}

type service struct {
	tx        db.TxRunner
	repo      Repository
	inventory inventory.Adjuster
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds the reservation service.
func NewService(tx db.TxRunner, repo Repository, adjuster inventory.Adjuster, logg *logger.Logger) Service {
	return &service{
		tx:        tx,
		repo:      repo,
		inventory: adjuster,
		logg:      logg,
		now:       time.Now,
	}
}

// Release settles the hold identified by reservationID. Expired holds are
// swept first, so releasing one that already lapsed reports not found rather
// than double-crediting stock. A failed sweep fails the release.
func (s *service) Release(ctx context.Context, reservationID string) error {
	if reservationID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation_id is required")
	}
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation_id must be a valid uuid")
	}

	if _, err := s.SweepExpired(ctx); err != nil {
		s.logg.Error(ctx, "expired reservation sweep failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sweep expired reservations")
	}

	return s.settle(ctx, id)
}

// SweepExpired settles every lapsed hold in its own transaction and returns
// how many were credited back. Individual failures do not stop the pass.
func (s *service) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.ListExpired(ctx, s.now(), sweepBatchSize)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list expired reservations")
	}

	var (
		swept int
		errs  error
	)
	for _, reservation := range expired {
		if err := s.settle(ctx, reservation.ID); err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				continue
			}
			errs = multierr.Append(errs, err)
			continue
		}
		swept++
	}
	return swept, errs
}

// settle credits the reserved quantity back to its variant and deletes the
// hold atomically. Zero rows deleted means another settle won the race, so
// the whole transaction rolls back.
func (s *service) settle(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		reservation, err := s.repo.FindInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load reservation")
		}

		err = s.inventory.Adjust(ctx, tx, reservation.ProductID, reservation.Size, reservation.VariantColor(), reservation.Quantity)
		if err != nil {
			return err
		}

		deleted, err := s.repo.DeleteInTx(ctx, tx, id)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete reservation")
		}
		if deleted == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return typed
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "release reservation")
	}
	return nil
}
