package option

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as JSON null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return jsonNull, nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes JSON null as None and any other value as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
