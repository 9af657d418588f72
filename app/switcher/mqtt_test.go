package switcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/nightswitch/app/enum"
	"github.com/umputun/nightswitch/app/switcher/mocks"
)

func TestMQTT_Callback(t *testing.T) {
	newPub := func(err error) *mocks.PublisherMock {
		return &mocks.PublisherMock{PublishFunc: func(string, any, bool) error { return err }}
	}

	t.Run("publishes retained time", func(t *testing.T) {
		e := newTestEnv(enum.TimeOfDayNight, true)
		e.strings["topic"] = "time"
		pub := newPub(nil)
		sw := NewMQTT(e.timer, e.settings, pub, nil)
		assert.Equal(t, "MQTT", sw.Name)

		sw.Enable()
		require.Len(t, pub.PublishCalls(), 1)
		assert.Equal(t, "time", pub.PublishCalls()[0].Topic)
		assert.Equal(t, "night", pub.PublishCalls()[0].Payload)
		assert.True(t, pub.PublishCalls()[0].Retained)

		e.setTime(enum.TimeOfDayDay)
		require.Len(t, pub.PublishCalls(), 2)
		assert.Equal(t, "day", pub.PublishCalls()[1].Payload)
	})

	t.Run("unknown and empty topic publish nothing", func(t *testing.T) {
		e := newTestEnv(enum.TimeOfDayUnknown, true)
		pub := newPub(nil)
		sw := NewMQTT(e.timer, e.settings, pub, nil)
		sw.Callback(enum.TimeOfDayUnknown)
		sw.Callback(enum.TimeOfDayDay) // topic not set in the mock
		assert.Empty(t, pub.PublishCalls())
	})

	t.Run("publish error is logged", func(t *testing.T) {
		e := newTestEnv(enum.TimeOfDayDay, true)
		e.strings["topic"] = "time"
		pub := newPub(errors.New("not connected"))
		sw := NewMQTT(e.timer, e.settings, pub, nil)
		assert.NotPanics(t, func() { sw.Callback(enum.TimeOfDayDay) })
		assert.Len(t, pub.PublishCalls(), 1)
	})
}
