package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Scope(t *testing.T) {
	c := NewClient("tcp://localhost:1883", "nightswitch", "home/nightswitch")

	topic, err := c.scope("time")
	require.NoError(t, err)
	assert.Equal(t, "home/nightswitch/time", topic)

	_, err = c.scope("")
	require.Error(t, err)

	_, err = c.scope("/time")
	require.Error(t, err)

	topic, err = NewClient("tcp://localhost:1883", "id", "").scope("time")
	require.NoError(t, err)
	assert.Equal(t, "time", topic)
}

func TestEncode(t *testing.T) {
	b, err := encode("day")
	require.NoError(t, err)
	assert.Equal(t, []byte("day"), b)

	b, err = encode([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = encode(map[string]string{"time": "night"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"night"}`, string(b))

	_, err = encode(func() {})
	require.Error(t, err)
}

func TestClient_NotConnected(t *testing.T) {
	c := NewClient("tcp://localhost:1883", "nightswitch", "root")
	err := c.Publish("time", "day", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")

	assert.NotPanics(t, c.Disconnect)
}
