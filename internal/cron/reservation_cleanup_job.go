package cron

import (
	"context"
	"errors"
)

// ExpiredSweeper settles lapsed reservation holds.
type ExpiredSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// ReservationCleanupJob credits expired cart holds back to inventory so
// abandoned checkouts do not strand stock until someone hits the release
// endpoint.
type ReservationCleanupJob struct {
	sweeper ExpiredSweeper
}

// NewReservationCleanupJob builds the cleanup job.
func NewReservationCleanupJob(sweeper ExpiredSweeper) (*ReservationCleanupJob, error) {
	if sweeper == nil {
		return nil, errors.New("sweeper required")
	}
	return &ReservationCleanupJob{sweeper: sweeper}, nil
}

// Name identifies the job in logs and metrics.
func (j *ReservationCleanupJob) Name() string {
	return "reservation-cleanup"
}

// Run sweeps expired holds and reports how many were settled.
func (j *ReservationCleanupJob) Run(ctx context.Context) (int, error) {
	return j.sweeper.SweepExpired(ctx)
}
