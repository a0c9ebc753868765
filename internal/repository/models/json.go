package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"pylearn/internal/domain"
)

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// LessonContent stores domain.LessonContent in a jsonb column.
type LessonContent domain.LessonContent

func (c LessonContent) Value() (driver.Value, error) {
	data, err := json.Marshal(domain.LessonContent(c))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (c *LessonContent) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("LessonContent scan: %w", err)
	}
	*c = LessonContent{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, (*domain.LessonContent)(c))
}

// JSONMap stores free-form metadata in a jsonb column. NULL scans to an empty map.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("JSONMap scan: %w", err)
	}
	*m = JSONMap{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, (*map[string]interface{})(m))
}
