package rebalance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// orderedObject builds a JSON object whose keys keep their insertion order.
// The zero value is an empty object.
type orderedObject struct {
	fields bytes.Buffer
	err    error
}

// Set appends key with the JSON encoding of value.
func (o *orderedObject) Set(key string, value any) {
	if o.err != nil {
		return
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("encoding %q: %w", key, err)
		return
	}
	k, _ := json.Marshal(key)
	if o.fields.Len() > 0 {
		o.fields.WriteByte(',')
	}
	o.fields.Write(k)
	o.fields.WriteByte(':')
	o.fields.Write(v)
}

// SetNonZero is like Set but skips the zero value of value's type.
func (o *orderedObject) SetNonZero(key string, value any) {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return
	}
	o.Set(key, value)
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.fields.Len()+2)
	out = append(out, '{')
	out = append(out, o.fields.Bytes()...)
	return append(out, '}'), nil
}
