package tsgen

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackType is emitted for source tags missing from the primitive table.
const FallbackType = "any"

const collectionPrefix = "Collection("

// ErrMalformedCollection is returned when a Collection(...) tag has no closing paren.
var ErrMalformedCollection = errors.New("malformed collection type")

// primitives maps Edm primitive tags to TypeScript type names.
var primitives = map[string]string{
	"Edm.String":         "string",
	"Edm.GeographyPoint": "Coordinates",
	"Edm.Double":         "number",
	"Edm.Int32":          "number",
	"Edm.Int64":          "number",
	"Edm.DateTimeOffset": "Date",
	"Edm.Boolean":        "boolean",
	"Edm.ComplexType":    "{}",
}

// MapType resolves a source type tag to its TypeScript type name.
//
// Collection tags are unwrapped up to the last ")" so trailing content after
// the closing paren is ignored. A collection with no ")" at all is an error;
// unknown primitives are not and resolve to FallbackType.
func MapType(sourceType string) (string, error) {
	if inner, ok := strings.CutPrefix(sourceType, collectionPrefix); ok {
		end := strings.LastIndex(inner, ")")
		if end < 0 {
			return "", fmt.Errorf("%w: %q", ErrMalformedCollection, sourceType)
		}
		return mapPrimitive(inner[:end]) + "[]", nil
	}
	return mapPrimitive(sourceType), nil
}

// IsKnown reports whether the primitive (or collection element) tag is in the table.
func IsKnown(sourceType string) bool {
	tag := sourceType
	if inner, ok := strings.CutPrefix(sourceType, collectionPrefix); ok {
		end := strings.LastIndex(inner, ")")
		if end < 0 {
			return false
		}
		tag = inner[:end]
	}
	_, ok := primitives[tag]
	return ok
}

func mapPrimitive(tag string) string {
	if ts, ok := primitives[tag]; ok {
		return ts
	}
	return FallbackType
}
