package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB stores schemaless JSON columns, used for audit log metadata.
type JSONB []byte

// Metadata marshals m into a JSONB value. A marshal failure collapses to
// an empty object instead of failing the surrounding write.
func Metadata(m map[string]any) JSONB {
	b, err := json.Marshal(m)
	if err != nil {
		return JSONB("{}")
	}
	return JSONB(b)
}

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = JSONB("{}")
	case []byte:
		*j = JSONB(v)
	case string:
		*j = JSONB(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("jsonb scan: %w", err)
		}
		*j = JSONB(b)
	}
	return nil
}
