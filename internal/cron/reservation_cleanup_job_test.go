package cron

import (
	"context"
	"errors"
	"testing"
)

type stubSweeper struct {
	swept int
	err   error
	calls int
}

func (s *stubSweeper) SweepExpired(ctx context.Context) (int, error) {
	s.calls++
	return s.swept, s.err
}

func TestReservationCleanupJobReportsSweptCount(t *testing.T) {
	sweeper := &stubSweeper{swept: 7}
	job, err := NewReservationCleanupJob(sweeper)
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	if job.Name() != "reservation-cleanup" {
		t.Fatalf("unexpected job name %q", job.Name())
	}

	processed, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if processed != 7 || sweeper.calls != 1 {
		t.Fatalf("expected 7 processed from one sweep, got %d from %d calls", processed, sweeper.calls)
	}
}

func TestReservationCleanupJobPropagatesError(t *testing.T) {
	job, err := NewReservationCleanupJob(&stubSweeper{err: errors.New("db down")})
	if err != nil {
		t.Fatalf("construct job: %v", err)
	}
	if _, err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error propagated")
	}
}

func TestNewReservationCleanupJobRequiresSweeper(t *testing.T) {
	if _, err := NewReservationCleanupJob(nil); err == nil {
		t.Fatal("expected constructor error")
	}
}
