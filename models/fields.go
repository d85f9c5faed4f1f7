package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField adalah nama field identifier dokumen di store.
const IDField = "_id"

// ErrNotObject dikembalikan jika payload data bukan object JSON.
var ErrNotObject = errors.New("data harus berupa object JSON")

// numberAPI keeps JSON numbers as json.Number so integers survive decoding.
var numberAPI = sonic.Config{UseNumber: true}.Froze()

// Fields adalah isi satu dokumen: nama field ke nilai bertipe.
type Fields map[string]Value

// Keys returns the field names in sorted order with the identifier first.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	hasID := false
	for k := range f {
		if k == IDField {
			hasID = true
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if hasID {
		keys = append([]string{IDField}, keys...)
	}
	return keys
}

// Plain converts the document into JSON-compatible maps and slices.
func (f Fields) Plain() map[string]any {
	out := make(map[string]any, len(f))
	for k, v := range f {
		out[k] = v.Plain()
	}
	return out
}

// BSON converts the document into the form handed to the store.
func (f Fields) BSON() bson.M {
	out := make(bson.M, len(f))
	for k, v := range f {
		out[k] = v.bson()
	}
	return out
}

func (v Value) bson() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	case KindObject:
		return v.obj.BSON()
	case KindArray:
		out := make(bson.A, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.bson()
		}
		return out
	}
	return nil
}

func (f Fields) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(f.Plain())
}

func (f *Fields) UnmarshalJSON(b []byte) error {
	var raw any
	if err := numberAPI.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return ErrNotObject
	}
	out, err := fieldsFromJSON(m)
	if err != nil {
		return err
	}
	*f = out
	return nil
}

// FromJSON converts a value decoded from JSON (with UseNumber) into a Value.
func FromJSON(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		fv, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("angka tidak valid %q: %w", x.String(), err)
		}
		return Float(fv), nil
	case float64:
		return Float(x), nil
	case map[string]any:
		obj, err := fieldsFromJSON(x)
		if err != nil {
			return Value{}, err
		}
		return Object(obj), nil
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			v, err := FromJSON(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return Array(items...), nil
	}
	return Value{}, fmt.Errorf("tipe JSON tidak didukung: %T", raw)
}

func fieldsFromJSON(m map[string]any) (Fields, error) {
	out := make(Fields, len(m))
	for k, raw := range m {
		v, err := FromJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// FromBSON converts a value decoded by the driver into a Value.
// Store-native identifiers are rendered as their hex text wherever they appear.
func FromBSON(raw any) Value {
	switch x := raw.(type) {
	case nil, primitive.Null, primitive.Undefined:
		return Null()
	case primitive.ObjectID:
		return String(x.Hex())
	case string:
		return String(x)
	case primitive.Symbol:
		return String(string(x))
	case primitive.JavaScript:
		return String(string(x))
	case bool:
		return Bool(x)
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case int:
		return Int(int64(x))
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case primitive.DateTime:
		return Time(x.Time())
	case time.Time:
		return Time(x)
	case primitive.Timestamp:
		return Time(time.Unix(int64(x.T), 0))
	case primitive.Decimal128:
		return String(x.String())
	case primitive.Binary:
		return String(base64.StdEncoding.EncodeToString(x.Data))
	case primitive.Regex:
		return String(x.String())
	case primitive.M:
		return Object(DocumentFromBSON(map[string]any(x)))
	case map[string]any:
		return Object(DocumentFromBSON(x))
	case primitive.D:
		obj := make(Fields, len(x))
		for _, e := range x {
			obj[e.Key] = FromBSON(e.Value)
		}
		return Object(obj)
	case primitive.A:
		return arrayFromBSON(x)
	case []any:
		return arrayFromBSON(x)
	}
	return String(fmt.Sprint(raw))
}

func arrayFromBSON(items []any) Value {
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = FromBSON(item)
	}
	return Array(out...)
}

// DocumentFromBSON converts a decoded store document into Fields.
func DocumentFromBSON(doc map[string]any) Fields {
	out := make(Fields, len(doc))
	for k, v := range doc {
		out[k] = FromBSON(v)
	}
	return out
}

// IDText renders an inserted identifier as text.
func IDText(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return FromBSON(id).String()
}
