package schemas

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"simata/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so errors line up with the payload keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError lists per-field failures of a strict-mode check.
type ValidationError struct {
	Schema string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, k := range sortedKeys(e.Fields) {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("data tidak sesuai skema %s (%s)", e.Schema, strings.Join(parts, ", "))
}

// Validate checks fields against the schema registered for collection.
// Collections without a schema are accepted as-is.
func Validate(collection string, fields models.Fields) error {
	s, ok := forCollection(collection)
	if !ok {
		return nil
	}

	raw, err := bson.Marshal(fields.BSON())
	if err != nil {
		return err
	}
	target := reflect.New(s.typ)
	if err := bson.Unmarshal(raw, target.Interface()); err != nil {
		return fmt.Errorf("data tidak sesuai skema %s: %w", s.Name, err)
	}

	if err := validate.Struct(target.Interface()); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return err
		}
		out := &ValidationError{Schema: s.Name, Fields: make(map[string]string, len(ve))}
		for _, fe := range ve {
			out.Fields[fe.Field()] = fe.Tag()
		}
		return out
	}
	return nil
}

// ApplyDefaults returns a copy of fields with declared defaults filled in for
// absent or null fields. Unknown collections are returned unchanged.
func ApplyDefaults(collection string, fields models.Fields) models.Fields {
	s, ok := forCollection(collection)
	if !ok {
		return fields
	}
	out := make(models.Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for _, f := range s.Fields {
		if f.Default == nil {
			continue
		}
		if v, present := out[f.Name]; !present || v.IsNull() {
			out[f.Name] = models.String(*f.Default)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
