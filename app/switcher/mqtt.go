package switcher

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightswitch/app/debug"
	"github.com/umputun/nightswitch/app/enum"
)

// Publisher sends a message to a topic.
type Publisher interface {
	Publish(topic string, payload any, retained bool) error
}

// NewMQTT makes the "MQTT" switcher, publishing "day" or "night" as a retained message
// to the topic from the mqtt settings namespace when the time changes.
func NewMQTT(tm Timer, mqttSettings Settings, pub Publisher, l *debug.Logger) *Switcher {
	return New(Params{
		Name:     "MQTT",
		Timer:    tm,
		Settings: mqttSettings,
		Callback: func(tod enum.TimeOfDay) {
			if !tod.Known() {
				return
			}
			topic := mqttSettings.GetString("topic")
			if topic == "" {
				return
			}
			if err := pub.Publish(topic, tod.String(), true); err != nil {
				log.Printf("[WARN] failed to publish %s to %s: %v", tod, topic, err)
				return
			}
			l.Message("Published " + tod.String() + " to " + topic + ".")
		},
		Disableable: true,
		Log:         l,
	})
}
