package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"time"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
)

var (
	ErrUnsupported  = errors.New("value: unsupported Go type")
	ErrTrailingData = errors.New("value: trailing data after document")
)

// DecodeJSON reads exactly one JSON document. Object member order is kept and
// duplicate member names are rejected.
func DecodeJSON(data []byte) (Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))

	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("decode json: %w", err)
	}

	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		return Value{}, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

func decodeJSONValue(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}

	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.Float()), nil
	case '[':
		var items []Value
		for dec.PeekKind() != ']' {
			item, err := decodeJSONValue(dec)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindArray, items: items}, nil
	case '{':
		var members []Member
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}
			item, err := decodeJSONValue(dec)
			if err != nil {
				return Value{}, err
			}
			members = append(members, KV(name.String(), item))
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, members: members}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok.Kind())
}

// DecodeYAML reads one YAML document. Mapping order is kept. Since YAML is a
// superset of JSON, JSON input is accepted too. Timestamps are left as
// strings.
func DecodeYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	v, err := FromAny(raw)
	if err != nil {
		return Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	return v, nil
}

// MarshalJSON encodes v as compact JSON. Undefined encodes as null and times
// as RFC 3339 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := v.encode(enc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (v Value) encode(enc *jsontext.Encoder) error {
	switch v.kind {
	case KindUndefined, KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNumber:
		return enc.WriteToken(jsontext.Float(v.n))
	case KindString:
		return enc.WriteToken(jsontext.String(v.s))
	case KindTime:
		return enc.WriteToken(jsontext.String(v.t.Format(time.RFC3339Nano)))
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range v.items {
			if err := item.encode(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range v.members {
			if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := m.Value.encode(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	}
	return fmt.Errorf("value: cannot encode kind %v", v.kind)
}

// FromAny converts the output of the usual Go decoders (encoding/json,
// go-json-experiment, goccy/go-yaml) and plain Go literals into a Value.
// Keys of unordered maps are sorted so the result is deterministic.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case time.Time:
		return Time(t), nil
	case []any:
		return fromSlice(len(t), func(i int) any { return t[i] })
	case map[string]any:
		keys := lo.Keys(t)
		slices.Sort(keys)
		return fromPairs(keys, func(k string) any { return t[k] })
	case yaml.MapSlice:
		members := make([]Member, 0, len(t))
		for _, item := range t {
			v, err := FromAny(item.Value)
			if err != nil {
				return Value{}, err
			}
			members = append(members, KV(fmt.Sprint(item.Key), v))
		}
		return Value{kind: KindObject, members: members}, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		return fromSlice(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.IsNil() {
			return Null(), nil
		}
		byName := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			byName[fmt.Sprint(k.Interface())] = rv.MapIndex(k)
		}
		keys := lo.Keys(byName)
		slices.Sort(keys)
		return fromPairs(keys, func(k string) any { return byName[k].Interface() })
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

func fromSlice(n int, at func(i int) any) (Value, error) {
	items := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := FromAny(at(i))
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Value{kind: KindArray, items: items}, nil
}

func fromPairs(keys []string, at func(k string) any) (Value, error) {
	members := make([]Member, 0, len(keys))
	for _, k := range keys {
		v, err := FromAny(at(k))
		if err != nil {
			return Value{}, err
		}
		members = append(members, KV(k, v))
	}
	return Value{kind: KindObject, members: members}, nil
}
