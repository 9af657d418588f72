package timer

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mixer/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nightswitch/app/enum"
	"github.com/umputun/nightswitch/app/settings"
	"github.com/umputun/nightswitch/app/store"
)

func TestBySchedule(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 3, 10, h, m, 0, 0, time.UTC) }
	tests := []struct {
		name            string
		now             time.Time
		sunrise, sunset float64
		expected        enum.TimeOfDay
	}{
		{"morning before sunrise", at(5, 59), 6, 20, enum.TimeOfDayNight},
		{"exactly sunrise", at(6, 0), 6, 20, enum.TimeOfDayDay},
		{"noon", at(12, 0), 6, 20, enum.TimeOfDayDay},
		{"exactly sunset", at(20, 0), 6, 20, enum.TimeOfDayNight},
		{"fractional sunrise before", at(6, 29), 6.5, 20, enum.TimeOfDayNight},
		{"fractional sunrise after", at(6, 30), 6.5, 20, enum.TimeOfDayDay},
		{"wrapping day late evening", at(23, 0), 22, 4, enum.TimeOfDayDay},
		{"wrapping day early morning", at(3, 0), 22, 4, enum.TimeOfDayDay},
		{"wrapping day noon is night", at(12, 0), 22, 4, enum.TimeOfDayNight},
		{"equal hours", at(12, 0), 8, 8, enum.TimeOfDayUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bySchedule(tc.now, tc.sunrise, tc.sunset))
		})
	}
}

func TestByLocation(t *testing.T) {
	// paris, summer solstice: sunrise ~03:47 UTC, sunset ~19:58 UTC
	lat, lon := 48.8566, 2.3522
	assert.Equal(t, enum.TimeOfDayDay, byLocation(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), lat, lon))
	assert.Equal(t, enum.TimeOfDayNight, byLocation(time.Date(2024, 6, 21, 2, 0, 0, 0, time.UTC), lat, lon))
	assert.Equal(t, enum.TimeOfDayNight, byLocation(time.Date(2024, 6, 21, 21, 30, 0, 0, time.UTC), lat, lon))

	// tromsø, midnight sun
	assert.Equal(t, enum.TimeOfDayUnknown, byLocation(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), 69.6492, 18.9553))
}

func TestTimer_Lifecycle(t *testing.T) {
	s := newTestSettings(t)
	clk := clock.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	tm := New(Params{Settings: s, Clock: clk})
	assert.Equal(t, enum.TimeOfDayUnknown, tm.Time())

	var got []enum.TimeOfDay
	id := tm.Connect(func() { got = append(got, tm.Time()) })

	tm.Start()
	assert.Equal(t, enum.TimeOfDayDay, tm.Time())
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayDay}, got)

	tm.Start() // second start is ignored
	tm.Update()
	assert.Len(t, got, 1, "no notification without a change")

	clk.AddTime(9 * time.Hour) // 21:00
	tm.Update()
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayDay, enum.TimeOfDayNight}, got)

	// moving sunset past now brings the day back through the settings watch
	require.NoError(t, s.SetDouble("sunset", 22))
	assert.Equal(t, enum.TimeOfDayDay, tm.Time())
	assert.Len(t, got, 3)

	tm.Stop()
	require.NoError(t, s.SetDouble("sunset", 20))
	assert.Equal(t, enum.TimeOfDayDay, tm.Time(), "settings ignored after stop")

	tm.Disconnect(id)
	tm.Update()
	assert.Equal(t, enum.TimeOfDayNight, tm.Time())
	assert.Len(t, got, 3, "disconnected handler not called")
}

func TestTimer_LocationSource(t *testing.T) {
	s := newTestSettings(t)
	clk := clock.NewMockClock(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC))
	tm := New(Params{Settings: s, Clock: clk})
	tm.Start()
	defer tm.Stop()

	require.NoError(t, s.SetString("source", "location"))
	assert.Equal(t, enum.TimeOfDayUnknown, tm.Time(), "location not set yet")

	require.NoError(t, s.SetDouble("latitude", 48.8566))
	require.NoError(t, s.SetDouble("longitude", 2.3522))
	require.NoError(t, s.SetBoolean("location-set", true))
	assert.Equal(t, enum.TimeOfDayDay, tm.Time())

	require.NoError(t, s.SetString("source", "bogus"))
	assert.Equal(t, enum.TimeOfDayDay, tm.Time(), "invalid source falls back to schedule")
}

func TestTimer_HandlerDisconnectsDuringNotify(t *testing.T) {
	s := newTestSettings(t)
	tm := New(Params{Settings: s, Clock: clock.NewMockClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))})

	calls := 0
	var second HandlerID
	tm.Connect(func() { calls++; tm.Disconnect(second) })
	second = tm.Connect(func() { calls++ })

	tm.Update()
	assert.Equal(t, 1, calls)
}

func TestTimer_Run(t *testing.T) {
	s := newTestSettings(t)
	tm := New(Params{Settings: s})

	var posted int32
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- tm.Run(ctx, func(func()) { atomic.AddInt32(&posted, 1) }, 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&posted) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)
}

func newTestSettings(t *testing.T) *settings.Settings {
	t.Helper()
	kv, err := store.New(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return settings.New(kv, settings.DefaultSchema, settings.RootNamespace).Child("time")
}
