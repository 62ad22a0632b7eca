// Package schema derives JSON schemas from the Go types API responses are
// decoded into, and checks raw payloads against them before decoding.
package schema

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
)

var cache sync.Map

// Generate reflects the schema of S.
//
// Fields are required unless tagged `omitempty`.
func Generate[S any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}

	return reflector.Reflect(new(S))
}

// For returns the schema of S, reflecting it only once per type.
func For[S any]() *jsonschema.Schema {
	t := reflect.TypeOf((*S)(nil)).Elem()

	if s, ok := cache.Load(t); ok {
		return s.(*jsonschema.Schema)
	}

	s, _ := cache.LoadOrStore(t, Generate[S]())

	return s.(*jsonschema.Schema)
}

// Validate checks that raw matches the shape described by s.
//
// Only what is needed to trust a decoded payload is checked: value kinds and
// the presence of required properties. Unknown properties are ignored.
//
// A required property set to null counts as missing. Optional properties
// (tagged `omitempty`) may be null.
func Validate(s *jsonschema.Schema, raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return errors.New("payload is not valid JSON")
	}

	return validate(s, gjson.ParseBytes(raw), "data")
}

func validate(s *jsonschema.Schema, value gjson.Result, path string) error {
	if s == nil {
		return nil
	}

	switch s.Type {
	case "object":
		if !value.IsObject() {
			return errors.Newf("%s: expected an object, got %s", path, value.Type)
		}

		fields := value.Map()

		for _, name := range s.Required {
			if field, ok := fields[name]; !ok || field.Type == gjson.Null {
				return errors.Newf("%s.%s: missing required field", path, name)
			}
		}

		if s.Properties == nil {
			return nil
		}

		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			field, ok := fields[pair.Key]
			if !ok || field.Type == gjson.Null {
				continue
			}

			if err := validate(pair.Value, field, path+"."+pair.Key); err != nil {
				return err
			}
		}

	case "array":
		if !value.IsArray() {
			return errors.Newf("%s: expected an array, got %s", path, value.Type)
		}

		for idx, item := range value.Array() {
			if err := validate(s.Items, item, fmt.Sprintf("%s[%d]", path, idx)); err != nil {
				return err
			}
		}

	case "string":
		if value.Type != gjson.String {
			return errors.Newf("%s: expected a string, got %s", path, value.Type)
		}

	case "integer", "number":
		if value.Type != gjson.Number {
			return errors.Newf("%s: expected a number, got %s", path, value.Type)
		}

	case "boolean":
		if !value.IsBool() {
			return errors.Newf("%s: expected a boolean, got %s", path, value.Type)
		}
	}

	return nil
}
