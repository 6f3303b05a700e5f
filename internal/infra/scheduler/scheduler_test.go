//go:build unit

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMaintenance struct {
	purged  int64
	expired int64
	granted int
	err     error
	calls   []string
}

func (s *stubMaintenance) PurgeExpiredIdempotencyKeys(context.Context) (int64, error) {
	s.calls = append(s.calls, JobIdempotencyCleanup)
	return s.purged, s.err
}

func (s *stubMaintenance) ExpireGiftCards(context.Context) (int64, error) {
	s.calls = append(s.calls, JobGiftCardExpiry)
	return s.expired, s.err
}

func (s *stubMaintenance) GrantBirthdayDiscounts(context.Context) (int, error) {
	s.calls = append(s.calls, JobBirthdayGrant)
	return s.granted, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultSchedules() config.SchedulerConfig {
	return config.SchedulerConfig{
		Enabled:            true,
		IdempotencyCleanup: "0 * * * *",
		GiftCardExpiry:     "15 3 * * *",
		BirthdayGrant:      "5 0 1 * *",
	}
}

func TestNew_RegistersEntries(t *testing.T) {
	s, err := New(defaultSchedules(), &stubMaintenance{}, discardLogger())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 3)
}

func TestNew_SkipsEmptySchedules(t *testing.T) {
	cfg := defaultSchedules()
	cfg.BirthdayGrant = ""

	s, err := New(cfg, &stubMaintenance{}, discardLogger())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestNew_InvalidSchedule(t *testing.T) {
	cfg := defaultSchedules()
	cfg.GiftCardExpiry = "every tuesday"

	_, err := New(cfg, &stubMaintenance{}, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), JobGiftCardExpiry)
}

func TestRun(t *testing.T) {
	t.Run("each job dispatches to its maintenance command", func(t *testing.T) {
		maint := &stubMaintenance{purged: 3, expired: 1, granted: 2}
		s, err := New(defaultSchedules(), maint, discardLogger())
		require.NoError(t, err)

		assert.True(t, s.Run(context.Background(), JobIdempotencyCleanup))
		assert.True(t, s.Run(context.Background(), JobGiftCardExpiry))
		assert.True(t, s.Run(context.Background(), JobBirthdayGrant))
		assert.Equal(t, []string{JobIdempotencyCleanup, JobGiftCardExpiry, JobBirthdayGrant}, maint.calls)
	})

	t.Run("failure is reported", func(t *testing.T) {
		maint := &stubMaintenance{err: errors.New("db down")}
		s, err := New(defaultSchedules(), maint, discardLogger())
		require.NoError(t, err)

		assert.False(t, s.Run(context.Background(), JobGiftCardExpiry))
	})

	t.Run("unknown job", func(t *testing.T) {
		maint := &stubMaintenance{}
		s, err := New(defaultSchedules(), maint, discardLogger())
		require.NoError(t, err)

		assert.False(t, s.Run(context.Background(), "nope"))
		assert.Empty(t, maint.calls)
	})
}

func TestStartStop_Disabled(t *testing.T) {
	cfg := defaultSchedules()
	cfg.Enabled = false
	cfg.GrantBirthdayOnBoot = true
	maint := &stubMaintenance{}

	s, err := New(cfg, maint, discardLogger())
	require.NoError(t, err)

	s.Start()
	require.NoError(t, s.Stop(context.Background()))
	assert.Empty(t, maint.calls)
}

// blockingMaintenance holds GrantBirthdayDiscounts until release is closed.
type blockingMaintenance struct {
	stubMaintenance
	grants  atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (b *blockingMaintenance) GrantBirthdayDiscounts(context.Context) (int, error) {
	if b.grants.Add(1) == 1 {
		close(b.entered)
	}
	<-b.release
	return 0, nil
}

func TestStart_BootGrantJoinsTheJobChain(t *testing.T) {
	cfg := defaultSchedules()
	cfg.GrantBirthdayOnBoot = true
	maint := &blockingMaintenance{entered: make(chan struct{}), release: make(chan struct{})}

	s, err := New(cfg, maint, discardLogger())
	require.NoError(t, err)

	s.Start()
	select {
	case <-maint.entered:
	case <-time.After(time.Second):
		t.Fatal("boot birthday grant did not start")
	}

	// a scheduled tick while the boot run is in flight is skipped
	s.wrapped[JobBirthdayGrant].Run()
	assert.Equal(t, int32(1), maint.grants.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded, "stop waits for the boot run")

	close(maint.release)
	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, int32(1), maint.grants.Load())
}
