package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gridiron/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReloader struct {
	calls atomic.Int32
	err   error
}

func (f *fakeReloader) Reload(ctx context.Context) (*roster.Dataset, error) {
	f.calls.Add(1)
	return roster.Empty(), f.err
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := NewScheduler("not a schedule", &fakeReloader{})
	assert.Error(t, s.Start(context.Background()))
}

func TestRunReloads(t *testing.T) {
	f := &fakeReloader{}
	s := NewScheduler("@hourly", f)

	s.run(context.Background())
	assert.EqualValues(t, 1, f.calls.Load())

	f.err = errors.New("disk gone")
	s.run(context.Background())
	assert.EqualValues(t, 2, f.calls.Load())
}

func TestRunSkipsAfterCancel(t *testing.T) {
	f := &fakeReloader{}
	s := NewScheduler("@hourly", f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.run(ctx)
	assert.Zero(t, f.calls.Load())
}

func TestScheduledReloadFires(t *testing.T) {
	if testing.Short() {
		t.Skip("waits on the cron clock")
	}
	f := &fakeReloader{}
	s := NewScheduler("@every 1s", f)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Eventually(t, func() bool { return f.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}
