package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/mayaverdell/threadline-backend/pkg/logger"
	"github.com/mayaverdell/threadline-backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type fakeLock struct {
	held    bool
	refused bool
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	if f.refused {
		return false, nil
	}
	f.held = true
	return true, nil
}

func (f *fakeLock) Release(context.Context) error { f.held = false; return nil }

type testJob struct {
	name      string
	processed int
	err       error
	runs      int
}

func (t *testJob) Name() string { return t.name }

func (t *testJob) Run(context.Context) (int, error) {
	t.runs++
	return t.processed, t.err
}

func testCronLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "cron-test", Output: io.Discard})
}

func TestServiceRunCycleRunsAllJobsEvenOnFailure(t *testing.T) {
	registry := NewRegistry(
		&testJob{name: "sweeps", processed: 3},
		&testJob{name: "fails", err: errors.New("boom")},
	)
	service, err := NewService(ServiceParams{
		Logger:   testCronLogger(),
		Registry: registry,
		Lock:     &fakeLock{},
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	err = service.RunCycle(context.Background())
	if err == nil {
		t.Fatal("expected aggregated failure from cycle")
	}
	for _, job := range registry.Jobs() {
		typed := job.(*testJob)
		if typed.runs != 1 {
			t.Fatalf("expected job %q to run once, ran %d", typed.name, typed.runs)
		}
	}
}

func TestServiceRunCycleSkipsWithoutLock(t *testing.T) {
	job := &testJob{name: "sweeps"}
	service, err := NewService(ServiceParams{
		Logger:   testCronLogger(),
		Registry: NewRegistry(job),
		Lock:     &fakeLock{refused: true},
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	if err := service.RunCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if job.runs != 0 {
		t.Fatalf("expected job skipped, ran %d", job.runs)
	}
}

func TestServiceRecordsProcessedItems(t *testing.T) {
	reg := prometheus.NewRegistry()
	cronMetrics := metrics.NewCronJobMetrics(reg)
	service, err := NewService(ServiceParams{
		Logger:   testCronLogger(),
		Registry: NewRegistry(&testJob{name: "sweeps", processed: 4}),
		Lock:     &fakeLock{},
		Metrics:  cronMetrics,
	})
	if err != nil {
		t.Fatalf("construct service: %v", err)
	}

	if err := service.RunCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	var processed *dto.MetricFamily
	for _, family := range families {
		if family.GetName() == "job_items_processed" {
			processed = family
		}
	}
	if processed == nil {
		t.Fatal("expected job_items_processed family")
	}
	if len(processed.GetMetric()) != 1 || processed.GetMetric()[0].GetCounter().GetValue() != 4 {
		t.Fatalf("expected processed counter of 4, got %+v", processed.GetMetric())
	}
}

func TestRegistryIgnoresNilJobs(t *testing.T) {
	registry := NewRegistry(nil, &testJob{name: "sweeps"})
	registry.Register(nil)
	if len(registry.Jobs()) != 1 {
		t.Fatalf("expected 1 job, got %d", len(registry.Jobs()))
	}
}
