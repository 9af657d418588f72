// Package switcher runs side effects when the time of day changes. A Switcher subscribes
// a callback to the Timer and, when disableable, follows the "enabled" key of its settings
// to turn the subscription on and off.
package switcher

import (
	"github.com/umputun/nightswitch/app/debug"
	"github.com/umputun/nightswitch/app/enum"
	"github.com/umputun/nightswitch/app/settings"
	"github.com/umputun/nightswitch/app/timer"
)

//go:generate moq -out mocks/timer.go -pkg mocks -skip-ensure -fmt goimports . Timer
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/spawner.go -pkg mocks -skip-ensure -fmt goimports . Spawner
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Timer provides the current time of day and notifies about its changes.
type Timer interface {
	Time() enum.TimeOfDay
	Connect(fn func()) timer.HandlerID
	Disconnect(id timer.HandlerID)
}

// Settings is the switcher's own settings namespace.
type Settings interface {
	GetBoolean(key string) bool
	GetString(key string) string
	Connect(key string, fn settings.Handler) settings.HandlerID
	Disconnect(id settings.HandlerID)
}

// Params configures a Switcher. All fields but Disableable and Log are required.
type Params struct {
	Name        string               // used in log messages only
	Timer       Timer                // shared, not owned
	Settings    Settings             // owned by this switcher
	Callback    func(enum.TimeOfDay) // called with the timer's time
	Disableable bool                 // follow the "enabled" settings key
	Log         *debug.Logger
}

// Switcher calls its callback with the current time on enable and on every time change.
// Not safe for concurrent use, expected to run on the event loop.
type Switcher struct {
	Params
	enabled  bool
	statusID settings.HandlerID // non-zero while the "enabled" key is watched
	timerID  timer.HandlerID    // non-zero while connected to the timer
}

// New makes an inert switcher, nothing is subscribed until Enable.
func New(p Params) *Switcher {
	return &Switcher{Params: p}
}

// Enable starts watching. Calling it on an already enabled switcher does nothing.
func (s *Switcher) Enable() {
	if s.enabled {
		s.Log.Message(s.Name + " switcher is already enabled.")
		return
	}
	s.Log.Message("Enabling " + s.Name + " switcher...")
	s.enabled = true
	if s.Disableable {
		s.watchStatus()
	}
	if !s.Disableable || s.Settings.GetBoolean("enabled") {
		s.connectTimer()
		s.onTimeChanged()
	}
	s.Log.Message(s.Name + " switcher enabled.")
}

// Disable stops watching. Safe to call on a disabled switcher.
func (s *Switcher) Disable() {
	s.Log.Message("Disabling " + s.Name + " switcher...")
	s.disconnectTimer()
	if s.Disableable {
		s.unwatchStatus()
	}
	s.enabled = false
	s.Log.Message(s.Name + " switcher disabled.")
}

// Enabled reports whether Enable was called without a following Disable.
func (s *Switcher) Enabled() bool { return s.enabled }

// Active reports whether the switcher is connected to the timer.
func (s *Switcher) Active() bool { return s.timerID != 0 }

func (s *Switcher) watchStatus() {
	s.Log.Message("Watching " + s.Name + " switching status...")
	s.statusID = s.Settings.Connect("enabled", func(string) { s.onStatusChanged() })
}

func (s *Switcher) unwatchStatus() {
	if s.statusID != 0 {
		s.Settings.Disconnect(s.statusID)
		s.statusID = 0
	}
	s.Log.Message("Stopped watching " + s.Name + " switching status.")
}

func (s *Switcher) connectTimer() {
	s.Log.Message("Connecting " + s.Name + " switcher to Timer...")
	s.timerID = s.Timer.Connect(s.onTimeChanged)
}

func (s *Switcher) disconnectTimer() {
	if s.timerID != 0 {
		s.Timer.Disconnect(s.timerID)
		s.timerID = 0
	}
	s.Log.Message("Disconnected " + s.Name + " switcher from Timer.")
}

// onStatusChanged restarts the switcher so the new "enabled" value takes effect
func (s *Switcher) onStatusChanged() {
	status := "disabled"
	if s.Settings.GetBoolean("enabled") {
		status = "enabled"
	}
	s.Log.Message(s.Name + " switching has been " + status + ".")
	s.Disable()
	s.Enable()
}

func (s *Switcher) onTimeChanged() {
	s.Callback(s.Timer.Time())
}
