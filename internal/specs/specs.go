// Package specs models the dynamic, per product specification schema.
//
// Each product declares an ordered list of specification field names (e.g.
// "inch", "micron"). Stock and order item rows referencing that product
// carry a Values mapping which must fill in exactly those fields. The shape
// of a Values is therefore decided at runtime by the referenced product, not
// by the table schema, so every boundary that accepts a Values validates it
// against the product's Schema explicitly.
package specs

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSchema   = errors.New("invalid specification schema")
	ErrIncompleteSpecs = errors.New("incomplete specification")
)

// Schema is a product's ordered list of specification field names.
type Schema []string

// Validate reports whether the schema is usable: every field name non empty
// after trimming and unique within the schema.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))

	for _, name := range s {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf(
				"%w: specification names must not be empty",
				ErrInvalidSchema,
			)
		}

		if seen[trimmed] {
			return fmt.Errorf(
				"%w: duplicate specification name '%s'",
				ErrInvalidSchema,
				trimmed,
			)
		}
		seen[trimmed] = true
	}

	return nil
}

// Values maps a specification field name to its entered value. It is stored
// as jsonb.
type Values map[string]string

// NewValues returns a fresh mapping with every field of the schema set to
// the empty value. Called whenever the referenced product changes so values
// entered for a previously selected product are discarded rather than
// carried over.
func NewValues(schema Schema) Values {
	values := make(Values, len(schema))
	for _, name := range schema {
		values[name] = ""
	}

	return values
}

// Conforms reports whether the values completely fill in the schema: the key
// set equals the schema's field set exactly and no value is empty.
func (v Values) Conforms(schema Schema) error {
	if len(v) != len(schema) {
		return fmt.Errorf(
			"%w: expected %d specification values, got %d",
			ErrIncompleteSpecs,
			len(schema),
			len(v),
		)
	}

	for _, name := range schema {
		value, ok := v[name]
		if !ok {
			return fmt.Errorf(
				"%w: missing specification '%s'",
				ErrIncompleteSpecs,
				name,
			)
		}

		if strings.TrimSpace(value) == "" {
			return fmt.Errorf(
				"%w: specification '%s' is empty",
				ErrIncompleteSpecs,
				name,
			)
		}
	}

	return nil
}

// Matches reports whether any value contains q, case insensitively. An empty
// q matches.
func (v Values) Matches(q string) bool {
	q = strings.ToLower(q)

	for _, value := range v {
		if strings.Contains(strings.ToLower(value), q) {
			return true
		}
	}

	return q == ""
}

func (v Values) Value() (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(v)
}

func (v *Values) Scan(value any) error {
	if value == nil {
		*v = Values{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, v)
}
