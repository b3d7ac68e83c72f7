package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pick-settler/internal/service"
)

type fakeRunner struct {
	calls   atomic.Int32
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context) (*service.RunStats, error) {
	f.calls.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return service.NewRunStats("run-1", time.Now()), nil
}

func TestRunNowRecordsOutcome(t *testing.T) {
	runner := &fakeRunner{err: errors.New("db down")}
	s := NewScheduler(runner, nil)

	at, err := s.LastRun()
	assert.True(t, at.IsZero())
	assert.NoError(t, err)

	s.RunNow(context.Background())
	at, err = s.LastRun()
	assert.False(t, at.IsZero())
	assert.EqualError(t, err, "db down")
	assert.Nil(t, s.LastStats())

	runner.err = nil
	s.RunNow(context.Background())
	_, err = s.LastRun()
	assert.NoError(t, err)
	require.NotNil(t, s.LastStats())
	assert.Equal(t, "run-1", s.LastStats().RunID)
}

func TestScheduleValidation(t *testing.T) {
	s := NewScheduler(&fakeRunner{}, nil)
	assert.Error(t, s.Start(), "no jobs scheduled")
	assert.Error(t, s.ScheduleSettlement("not a schedule"))

	require.NoError(t, s.ScheduleSettlement("*/15 * * * *"))
	assert.Error(t, s.ScheduleSettlement("*/5 * * * *"))
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(&fakeRunner{}, nil)
	require.NoError(t, s.ScheduleSettlement("@every 1h"))
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.False(t, s.NextRun().IsZero())
	assert.Error(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.IsRunning())
	assert.True(t, s.NextRun().IsZero())
}

func TestOverlappingTicksAreSkipped(t *testing.T) {
	runner := &fakeRunner{block: make(chan struct{}), started: make(chan struct{}, 10)}
	s := NewScheduler(runner, nil)
	require.NoError(t, s.ScheduleSettlement("@every 1s"))
	require.NoError(t, s.Start())

	select {
	case <-runner.started:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled run did not start")
	}

	// further ticks fire while the first run is blocked
	time.Sleep(2500 * time.Millisecond)
	assert.Equal(t, int32(1), runner.calls.Load())

	close(runner.block)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
