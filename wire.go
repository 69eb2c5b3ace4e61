package openaikit

import (
	"bytes"
	"encoding/json"
)

// Response types fail loudly when the wire payload omits a field the caller
// depends on, instead of silently defaulting it. Each strict type decodes
// the raw object first, checks its required keys, then decodes the struct.

var jsonNull = []byte("null")

// missingKey returns the first of keys that is absent from raw or set to
// JSON null. An empty string means all keys are present.
func missingKey(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || bytes.Equal(bytes.TrimSpace(v), jsonNull) {
			return k
		}
	}
	return ""
}

// decodeStrict unmarshals data into dst after verifying the required keys.
// dst must not have an UnmarshalJSON of its own (use an alias type).
func decodeStrict(data []byte, dst any, required ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if k := missingKey(raw, required...); k != "" {
		return &DeserializationError{Field: k}
	}
	return json.Unmarshal(data, dst)
}
