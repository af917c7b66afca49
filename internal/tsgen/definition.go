// Package tsgen converts Azure search index definitions into TypeScript
// interface declarations.
package tsgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDefinition is returned when the index JSON cannot be used as a Definition.
var ErrInvalidDefinition = errors.New("invalid index definition")

// Definition is an index definition: a name and its ordered fields.
//
// Only name and fields are read; every other key of the index JSON
// (scoring profiles, suggesters, cors options, ...) is ignored.
type Definition struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Field is one index field. The JSON "type" key lands in SourceType.
// Attribute keys such as searchable, filterable or analyzer are ignored.
type Field struct {
	Name       string `json:"name"`
	SourceType string `json:"type"`
}

// UnmarshalJSON requires the name and fields keys, matched case-sensitively.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	name, err := requiredString(raw, "name")
	if err != nil {
		return err
	}
	rawFields, ok := raw["fields"]
	if !ok || isNull(rawFields) {
		return errors.New(`missing key "fields"`)
	}
	var fields []Field
	if err := json.Unmarshal(rawFields, &fields); err != nil {
		return fmt.Errorf("fields: %w", err)
	}

	*d = Definition{Name: name, Fields: fields}
	return nil
}

// UnmarshalJSON requires the name and type keys, matched case-sensitively.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	name, err := requiredString(raw, "name")
	if err != nil {
		return err
	}
	sourceType, err := requiredString(raw, "type")
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}

	*f = Field{Name: name, SourceType: sourceType}
	return nil
}

func requiredString(raw map[string]json.RawMessage, key string) (string, error) {
	value, ok := raw[key]
	if !ok || isNull(value) {
		return "", fmt.Errorf("missing key %q", key)
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return s, nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// Parse decodes an index definition from r. The input must hold exactly
// one JSON object.
func Parse(r io.Reader) (*Definition, error) {
	dec := json.NewDecoder(r)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after index definition", ErrInvalidDefinition)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// ParseBytes decodes an index definition from data.
func ParseBytes(data []byte) (*Definition, error) {
	return Parse(bytes.NewReader(data))
}

// Validate checks that the definition is named and that every field type
// can be mapped, so a render never stops halfway on a bad tag.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidDefinition)
	}
	for _, f := range d.Fields {
		if _, err := MapType(f.SourceType); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}
