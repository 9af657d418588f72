// Package mqtt publishes messages to an MQTT broker under a topic root.
package mqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	log "github.com/go-pkgz/lgr"
)

// Client wraps a paho client, all published topics are prefixed with the topic root.
type Client struct {
	topicRoot string
	opts      *paho.ClientOptions
	client    paho.Client
}

// NewClient makes a client for the broker. Call Connect before publishing.
func NewClient(brokerURL, clientID, topicRoot string) *Client {
	opts := paho.NewClientOptions().AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)

	return &Client{topicRoot: topicRoot, opts: opts}
}

// Connect connects to the broker.
func (c *Client) Connect() error {
	c.client = paho.NewClient(c.opts)
	token := c.client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect error: %w", err)
	}
	return nil
}

// Disconnect closes the connection, waiting up to 250ms for pending work.
func (c *Client) Disconnect() {
	if c.client == nil {
		return
	}
	c.client.Disconnect(250)
}

// Publish sends payload to "<root>/<topic>" without waiting for delivery.
// Strings and byte slices are sent as is, everything else is json encoded.
func (c *Client) Publish(topic string, payload any, retained bool) error {
	if c.client == nil {
		return errors.New("client not connected")
	}
	scopedTopic, err := c.scope(topic)
	if err != nil {
		return err
	}

	body, err := encode(payload)
	if err != nil {
		return err
	}

	token := c.client.Publish(scopedTopic, 0, retained, body)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			log.Printf("[WARN] error publishing %v to %s: %v", payload, scopedTopic, err)
		}
	}()
	return nil
}

func (c *Client) scope(topic string) (string, error) {
	if topic == "" {
		return "", errors.New("topic is empty")
	}
	if topic[0] == '/' {
		return "", errors.New("expected relative topic (cannot begin with slash)")
	}
	if c.topicRoot == "" {
		return topic, nil
	}
	return c.topicRoot + "/" + topic, nil
}

func encode(payload any) ([]byte, error) {
	switch v := payload.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("unable to encode payload: %w", err)
		}
		return b, nil
	}
}
