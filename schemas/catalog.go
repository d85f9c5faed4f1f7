// Package schemas exposes the fixed record shapes of the asset register as
// declarative metadata. The generic gateway does not consult it unless strict
// mode is switched on.
package schemas

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"simata/models"
)

// FieldSpec describes one field of a record shape.
type FieldSpec struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Default     *string  `json:"default,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Enum        []string `json:"enum,omitempty"` // informational, never enforced
	Description string   `json:"description,omitempty"`
}

// Schema adalah satu bentuk record beserta koleksi tujuannya.
type Schema struct {
	Name       string      `json:"name"`
	Collection string      `json:"collection"`
	Fields     []FieldSpec `json:"fields"`

	typ reflect.Type
}

// Field returns the spec of the named field.
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

var catalog = []Schema{
	describe(models.AssetCategory{}),
	describe(models.Location{}),
	describe(models.Department{}),
	describe(models.Asset{}),
}

// Catalog returns every declared schema in declaration order.
func Catalog() []Schema {
	out := make([]Schema, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a schema by collection name or type name (case-insensitive).
func Lookup(name string) (Schema, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range catalog {
		if s.Collection == key {
			return s, true
		}
	}
	return Schema{}, false
}

// forCollection matches the stored collection name exactly; "ASSET" is a
// different collection than "asset" and carries no schema.
func forCollection(collection string) (Schema, bool) {
	for _, s := range catalog {
		if s.Collection == collection {
			return s, true
		}
	}
	return Schema{}, false
}

func describe(record any) Schema {
	t := reflect.TypeOf(record)
	s := Schema{
		Name:       t.Name(),
		Collection: strings.ToLower(t.Name()),
		typ:        t,
	}
	for i := 0; i < t.NumField(); i++ {
		s.Fields = append(s.Fields, describeField(t.Field(i)))
	}
	return s
}

func describeField(f reflect.StructField) FieldSpec {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	spec := FieldSpec{
		Name:        name,
		Type:        semanticType(f),
		Description: f.Tag.Get("description"),
	}
	if d, ok := f.Tag.Lookup("default"); ok {
		spec.Default = &d
	}
	if e := f.Tag.Get("enum"); e != "" {
		spec.Enum = strings.Split(e, ",")
	}
	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		switch {
		case rule == "required":
			spec.Required = true
		case strings.HasPrefix(rule, "gte="):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(rule, "gte="), 64); err == nil {
				spec.Min = &v
			}
		}
	}
	return spec
}

func semanticType(f reflect.StructField) string {
	if format := f.Tag.Get("format"); format != "" {
		return format
	}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return "date"
	}
	switch t.Kind() {
	case reflect.String:
		return "text"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int32, reflect.Int64:
		return "number"
	case reflect.Bool:
		return "boolean"
	}
	return "object"
}
