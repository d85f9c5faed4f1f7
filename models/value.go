package models

import (
	"fmt"
	"math"
	"time"

	"github.com/bytedance/sonic"
)

// Kind adalah jenis nilai primitif di dalam dokumen generik.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindTime
	KindObject
	KindArray
)

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindTime:   "time",
	KindObject: "object",
	KindArray:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a tagged union over the value kinds a document field can hold.
// The zero Value is null.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
	obj  Fields
	arr  []Value
}

func Null() Value                { return Value{} }
func String(s string) Value      { return Value{kind: KindString, s: s} }
func Int(i int64) Value          { return Value{kind: KindInt, i: i} }
func Float(f float64) Value      { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Time(t time.Time) Value     { return Value{kind: KindTime, t: t.UTC()} }
func Object(f Fields) Value      { return Value{kind: KindObject, obj: f} }
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload; ok is false for non-string kinds.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Number returns the numeric payload for int and float kinds.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) Time() (time.Time, bool) { return v.t, v.kind == KindTime }

func (v Value) Object() (Fields, bool) { return v.obj, v.kind == KindObject }

func (v Value) Array() ([]Value, bool) { return v.arr, v.kind == KindArray }

// Plain converts the value into plain JSON-compatible Go values.
// Times become RFC 3339 text and non-finite floats become their text form.
func (v Value) Plain() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Sprint(v.f)
		}
		return v.f
	case KindBool:
		return v.b
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindObject:
		return v.obj.Plain()
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Plain()
		}
		return out
	}
	return nil
}

// String renders the value as display text (used for spreadsheet cells).
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.s
	case KindObject, KindArray:
		b, err := sonic.Marshal(v.Plain())
		if err != nil {
			return fmt.Sprint(v.Plain())
		}
		return string(b)
	}
	return fmt.Sprint(v.Plain())
}

func (v Value) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(v.Plain())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var raw any
	if err := numberAPI.Unmarshal(b, &raw); err != nil {
		return err
	}
	val, err := FromJSON(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
