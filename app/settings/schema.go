package settings

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RootNamespace is the namespace of all application settings.
const RootNamespace = "nightswitch"

// Schema maps full key names to their default values. The type of the default
// (string, bool or float64) defines the type of the key.
type Schema map[string]any

// DefaultSchema lists every key the application reads.
var DefaultSchema = Schema{
	"nightswitch.commands.enabled": false,
	"nightswitch.commands.sunrise": "",
	"nightswitch.commands.sunset":  "",

	"nightswitch.mqtt.enabled": false,
	"nightswitch.mqtt.topic":   "time",

	"nightswitch.time.source":       "schedule",
	"nightswitch.time.sunrise":      6.0,
	"nightswitch.time.sunset":       20.0,
	"nightswitch.time.location-set": false,
	"nightswitch.time.latitude":     0.0,
	"nightswitch.time.longitude":    0.0,
}

// Default returns the default value of the full key, nil for unknown keys.
func (s Schema) Default(fullKey string) any {
	return s[fullKey]
}

// Keys returns all full key names, sorted.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate checks the raw text value against the type of the full key and returns
// it in the canonical stored form.
func (s Schema) Validate(fullKey, raw string) (string, error) {
	def, ok := s[fullKey]
	if !ok {
		return "", fmt.Errorf("unknown key %q", fullKey)
	}
	switch def.(type) {
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("key %q expects a boolean: %w", fullKey, err)
		}
		return strconv.FormatBool(v), nil
	case float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", fmt.Errorf("key %q expects a number: %w", fullKey, err)
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return raw, nil
	}
}

// Split separates a full key into namespace and short key at the last dot.
func Split(fullKey string) (namespace, key string) {
	idx := strings.LastIndexByte(fullKey, '.')
	if idx < 0 {
		return "", fullKey
	}
	return fullKey[:idx], fullKey[idx+1:]
}
