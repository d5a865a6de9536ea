package valueutil

import (
	"bytes"
	"encoding/json"
)

// Ordered is a JSON object that encodes its members in insertion order.
type Ordered struct {
	keys   []string
	values map[string]any
}

// NewOrdered returns an empty object sized for n members.
func NewOrdered(n int) *Ordered {
	return &Ordered{keys: make([]string, 0, n), values: make(map[string]any, n)}
}

// Set stores value under key. Re-setting a key keeps its original position.
func (o *Ordered) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Ordered) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns member names in insertion order.
func (o *Ordered) Keys() []string { return append([]string(nil), o.keys...) }

// Len returns the number of members.
func (o *Ordered) Len() int { return len(o.keys) }

// MarshalJSON encodes members in insertion order without HTML escaping.
func (o *Ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeCompact(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeCompact(&buf, o.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeCompact(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
