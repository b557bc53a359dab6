package domain

import (
	"bytes"
	"encoding/json"
)

// Optional distingue três estados de um campo JSON: ausente (Set == false),
// null explícito (Set && !Valid) e valor presente (Set && Valid).
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON só é chamado quando o campo aparece no payload; campo ausente
// deixa o zero value (Set == false).
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
