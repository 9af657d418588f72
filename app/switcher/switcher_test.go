package switcher

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nightswitch/app/enum"
	"github.com/umputun/nightswitch/app/settings"
	"github.com/umputun/nightswitch/app/switcher/mocks"
	"github.com/umputun/nightswitch/app/timer"
)

func TestSwitcher_EnableNotDisableable(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayNight, false)
	var got []enum.TimeOfDay
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(tod enum.TimeOfDay) { got = append(got, tod) }})

	assert.Empty(t, e.timer.ConnectCalls(), "constructing subscribes nothing")

	sw.Enable()
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayNight}, got, "current time evaluated right away")
	assert.Len(t, e.timer.ConnectCalls(), 1)
	assert.Empty(t, e.settings.ConnectCalls(), "no status watch for non-disableable")
	assert.Empty(t, e.settings.GetBooleanCalls(), "enabled setting ignored")
	assert.True(t, sw.Enabled())
	assert.True(t, sw.Active())

	e.setTime(enum.TimeOfDayDay)
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayNight, enum.TimeOfDayDay}, got)

	sw.Disable()
	assert.Len(t, e.timer.DisconnectCalls(), 1)
	assert.Empty(t, e.settings.DisconnectCalls())
	assert.False(t, sw.Enabled())
	assert.False(t, sw.Active())

	e.setTime(enum.TimeOfDayNight)
	assert.Len(t, got, 2, "no callbacks after disable")
}

func TestSwitcher_EnableDisableableOff(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayDay, false)
	calls := 0
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(enum.TimeOfDay) { calls++ }, Disableable: true})

	sw.Enable()
	assert.Equal(t, 0, calls)
	assert.Empty(t, e.timer.ConnectCalls(), "timer not connected while setting is off")
	require.Len(t, e.settings.ConnectCalls(), 1, "status watch created")
	assert.Equal(t, "enabled", e.settings.ConnectCalls()[0].Key)
	assert.True(t, sw.Enabled())
	assert.False(t, sw.Active())

	e.setTime(enum.TimeOfDayNight)
	assert.Equal(t, 0, calls)
}

func TestSwitcher_ToggleEnabled(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayDay, false)
	var got []enum.TimeOfDay
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(tod enum.TimeOfDay) { got = append(got, tod) }, Disableable: true})
	sw.Enable()

	t.Run("off to on evaluates current time once", func(t *testing.T) {
		e.setEnabled(true)
		assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayDay}, got)
		assert.True(t, sw.Active())
		assert.Len(t, e.timerHandlers, 1)
		assert.Len(t, e.statusHandlers, 1, "status watch restarted, not duplicated")
	})

	t.Run("time change delivered while on", func(t *testing.T) {
		e.setTime(enum.TimeOfDayNight)
		assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayDay, enum.TimeOfDayNight}, got)
	})

	t.Run("on to off removes timer subscription", func(t *testing.T) {
		e.setEnabled(false)
		assert.False(t, sw.Active())
		assert.Empty(t, e.timerHandlers)
		assert.Len(t, e.statusHandlers, 1)
		assert.True(t, sw.Enabled())

		e.setTime(enum.TimeOfDayDay)
		assert.Len(t, got, 2, "no callbacks until re-enabled")
	})

	t.Run("on again", func(t *testing.T) {
		e.setEnabled(true)
		assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayDay, enum.TimeOfDayNight, enum.TimeOfDayDay}, got)
	})
}

func TestSwitcher_DisableIdempotent(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayDay, true)
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(enum.TimeOfDay) {}, Disableable: true})

	assert.NotPanics(t, sw.Disable, "disable before enable is safe")
	assert.Empty(t, e.timer.DisconnectCalls())
	assert.Empty(t, e.settings.DisconnectCalls())

	sw.Enable()
	sw.Disable()
	assert.NotPanics(t, sw.Disable)
	assert.Len(t, e.timer.DisconnectCalls(), 1, "timer disconnected once")
	assert.Len(t, e.settings.DisconnectCalls(), 1, "status watch removed once")
	assert.Empty(t, e.timerHandlers)
	assert.Empty(t, e.statusHandlers)
}

func TestSwitcher_DoubleEnableIgnored(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayDay, true)
	calls := 0
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(enum.TimeOfDay) { calls++ }, Disableable: true})

	sw.Enable()
	sw.Enable()
	assert.Equal(t, 1, calls)
	assert.Len(t, e.timer.ConnectCalls(), 1)
	assert.Len(t, e.settings.ConnectCalls(), 1)

	// repeated cycles leak nothing
	for range 3 {
		sw.Disable()
		sw.Enable()
	}
	assert.Len(t, e.timerHandlers, 1)
	assert.Len(t, e.statusHandlers, 1)
	sw.Disable()
	assert.Empty(t, e.timerHandlers)
	assert.Empty(t, e.statusHandlers)
}

func TestSwitcher_UnknownThenDay(t *testing.T) {
	e := newTestEnv(enum.TimeOfDayUnknown, true)
	var got []enum.TimeOfDay
	sw := New(Params{Name: "Test", Timer: e.timer, Settings: e.settings,
		Callback: func(tod enum.TimeOfDay) { got = append(got, tod) }, Disableable: true})

	sw.Enable()
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayUnknown}, got, "unknown is passed through unfiltered")

	e.setTime(enum.TimeOfDayDay)
	assert.Equal(t, []enum.TimeOfDay{enum.TimeOfDayUnknown, enum.TimeOfDayDay}, got)
}

// testEnv keeps timer and settings state behind moq mocks
type testEnv struct {
	timer    *mocks.TimerMock
	settings *mocks.SettingsMock

	tod            enum.TimeOfDay
	enabled        bool
	strings        map[string]string
	timerHandlers  map[timer.HandlerID]func()
	statusHandlers map[settings.HandlerID]settings.Handler
}

func newTestEnv(tod enum.TimeOfDay, enabled bool) *testEnv {
	e := &testEnv{tod: tod, enabled: enabled, strings: map[string]string{},
		timerHandlers: map[timer.HandlerID]func(){}, statusHandlers: map[settings.HandlerID]settings.Handler{}}

	var timerID timer.HandlerID
	e.timer = &mocks.TimerMock{
		TimeFunc: func() enum.TimeOfDay { return e.tod },
		ConnectFunc: func(fn func()) timer.HandlerID {
			timerID++
			e.timerHandlers[timerID] = fn
			return timerID
		},
		DisconnectFunc: func(id timer.HandlerID) { delete(e.timerHandlers, id) },
	}

	var settingsID settings.HandlerID
	e.settings = &mocks.SettingsMock{
		GetBooleanFunc: func(key string) bool { return key == "enabled" && e.enabled },
		GetStringFunc:  func(key string) string { return e.strings[key] },
		ConnectFunc: func(key string, fn settings.Handler) settings.HandlerID {
			settingsID++
			e.statusHandlers[settingsID] = fn
			return settingsID
		},
		DisconnectFunc: func(id settings.HandlerID) { delete(e.statusHandlers, id) },
	}
	return e
}

func (e *testEnv) setTime(tod enum.TimeOfDay) {
	e.tod = tod
	for _, id := range slices.Sorted(maps.Keys(e.timerHandlers)) {
		if fn, ok := e.timerHandlers[id]; ok {
			fn()
		}
	}
}

func (e *testEnv) setEnabled(v bool) {
	e.enabled = v
	// snapshot, handlers reconnect themselves while being called
	for _, id := range slices.Sorted(maps.Keys(e.statusHandlers)) {
		if fn, ok := e.statusHandlers[id]; ok {
			fn("enabled")
		}
	}
}
