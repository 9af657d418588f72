// Package timer tracks whether it is day or night and notifies subscribers when it changes.
// The time comes either from a manual schedule (sunrise/sunset hours) or from the
// sun position at a configured location.
package timer

import (
	"context"
	"slices"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/mixer/clock"
	"github.com/nathan-osman/go-sunrise"

	"github.com/umputun/nightswitch/app/debug"
	"github.com/umputun/nightswitch/app/enum"
	"github.com/umputun/nightswitch/app/settings"
)

// Settings is the "<schema>.time" settings namespace used by the timer.
type Settings interface {
	GetString(key string) string
	GetBoolean(key string) bool
	GetDouble(key string) float64
	Connect(key string, fn settings.Handler) settings.HandlerID
	Disconnect(id settings.HandlerID)
}

// HandlerID identifies a time change handler, zero value means "no handler".
type HandlerID uint64

// settingsKeys affect the computed time
var settingsKeys = []string{"source", "sunrise", "sunset", "location-set", "latitude", "longitude"}

// Params configures a Timer.
type Params struct {
	Settings Settings
	Clock    clock.Clock   // real clock if nil
	Log      *debug.Logger // optional
}

// Timer holds the current time of day. It is not safe for concurrent use, all methods
// are expected to run on the event loop.
type Timer struct {
	Params
	time        enum.TimeOfDay
	nextID      HandlerID
	handlers    map[HandlerID]func()
	settingsIDs []settings.HandlerID
}

// New makes a timer with unknown time. Call Update or Start to compute it.
func New(p Params) *Timer {
	if p.Clock == nil {
		p.Clock = clock.DefaultClock{}
	}
	return &Timer{Params: p, time: enum.TimeOfDayUnknown, handlers: map[HandlerID]func(){}}
}

// Time returns the current time of day.
func (t *Timer) Time() enum.TimeOfDay { return t.time }

// Connect registers fn to be called after the time changes.
func (t *Timer) Connect(fn func()) HandlerID {
	t.nextID++
	t.handlers[t.nextID] = fn
	return t.nextID
}

// Disconnect removes a handler. Unknown ids are ignored.
func (t *Timer) Disconnect(id HandlerID) {
	delete(t.handlers, id)
}

// Start watches the time settings and computes the current time.
func (t *Timer) Start() {
	if len(t.settingsIDs) > 0 {
		return
	}
	for _, key := range settingsKeys {
		t.settingsIDs = append(t.settingsIDs, t.Settings.Connect(key, func(string) { t.Update() }))
	}
	t.Update()
}

// Stop removes settings watches. The last computed time is kept.
func (t *Timer) Stop() {
	for _, id := range t.settingsIDs {
		t.Settings.Disconnect(id)
	}
	t.settingsIDs = nil
}

// Update recomputes the time and notifies handlers if it changed.
func (t *Timer) Update() {
	tod := t.Compute()
	if tod == t.time {
		return
	}
	t.Log.Message("Time changed from " + t.time.String() + " to " + tod.String() + ".")
	t.time = tod

	// snapshot, handlers may disconnect while being notified
	ids := make([]HandlerID, 0, len(t.handlers))
	for id := range t.handlers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := t.handlers[id]; ok {
			fn()
		}
	}
}

// Compute returns the time of day at the clock's current time, per the configured source.
func (t *Timer) Compute() enum.TimeOfDay {
	now := t.Clock.Now()
	src, err := enum.ParseTimeSource(t.Settings.GetString("source"))
	if err != nil {
		log.Printf("[WARN] %v, using schedule", err)
		src = enum.TimeSourceSchedule
	}
	switch src {
	case enum.TimeSourceLocation:
		if !t.Settings.GetBoolean("location-set") {
			return enum.TimeOfDayUnknown
		}
		return byLocation(now, t.Settings.GetDouble("latitude"), t.Settings.GetDouble("longitude"))
	default:
		return bySchedule(now, t.Settings.GetDouble("sunrise"), t.Settings.GetDouble("sunset"))
	}
}

// Run posts Update on every interval tick until ctx is canceled.
func (t *Timer) Run(ctx context.Context, post func(func()), interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			post(t.Update)
		}
	}
}

// bySchedule treats [sunrise, sunset) as day, hours are local and fractional (6.5 is 6:30).
// Sunrise after sunset means the day wraps over midnight; equal hours give unknown.
func bySchedule(now time.Time, sunriseHour, sunsetHour float64) enum.TimeOfDay {
	h := float64(now.Hour()) + float64(now.Minute())/60 + float64(now.Second())/3600
	var isDay bool
	switch {
	case sunriseHour == sunsetHour:
		return enum.TimeOfDayUnknown
	case sunriseHour < sunsetHour:
		isDay = h >= sunriseHour && h < sunsetHour
	default:
		isDay = h >= sunriseHour || h < sunsetHour
	}
	if isDay {
		return enum.TimeOfDayDay
	}
	return enum.TimeOfDayNight
}

// byLocation compares now with the sunrise and sunset of today at the location.
// Polar day and night have no sunrise or sunset and give unknown.
func byLocation(now time.Time, lat, lon float64) enum.TimeOfDay {
	rise, set := sunrise.SunriseSunset(lat, lon, now.Year(), now.Month(), now.Day())
	if rise.IsZero() || set.IsZero() {
		return enum.TimeOfDayUnknown
	}
	if !now.Before(rise) && now.Before(set) {
		return enum.TimeOfDayDay
	}
	return enum.TimeOfDayNight
}
