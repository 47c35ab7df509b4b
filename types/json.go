// Package types holds value wrappers whose textual form is the SQL literal
// they should embed as.
package types

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON embeds a value as its JSON encoding. A JSON without a value is NULL.
type JSON[T any] struct {
	bytes []byte
	value *T
}

// NewJSON encodes v. Values that fail to encode produce an empty JSON.
func NewJSON[T any](v T) JSON[T] {
	b, err := json.Marshal(v)
	if err != nil {
		return JSON[T]{}
	}
	return JSON[T]{bytes: b, value: &v}
}

func (j JSON[T]) Get() *T {
	return j.value
}

func (j JSON[T]) Valid() bool {
	return j.bytes != nil
}

func (j *JSON[T]) UnmarshalJSON(b []byte) (err error) {
	if b == nil || string(b) == "null" {
		j.bytes, j.value = nil, nil
		return nil
	}

	var v T
	if err = json.Unmarshal(b, &v); err != nil {
		j.bytes, j.value = nil, nil
	} else {
		var dst = make([]byte, len(b))
		_ = copy(dst, b)
		j.bytes, j.value = dst, &v
	}

	return
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	if j.bytes == nil {
		return []byte("null"), nil
	}
	return j.bytes, nil
}

func (j *JSON[T]) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return j.UnmarshalJSON(v)
	case string:
		return j.UnmarshalJSON([]byte(v))
	}
	j.bytes, j.value = nil, nil
	return nil
}

// Value implements the driver Valuer interface.
func (j JSON[T]) Value() (driver.Value, error) {
	if j.bytes == nil {
		return nil, nil
	}
	return string(j.bytes), nil
}
