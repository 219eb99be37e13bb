package value

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_KeepsMemberOrder(t *testing.T) {
	t.Parallel()

	v, err := DecodeJSON([]byte(`{"b": 1, "a": [true, null, "x"], "c": {"d": 2.5}}`))
	require.NoError(t, err)

	want := Object(
		KV("b", Number(1)),
		KV("a", Array(Bool(true), Null(), String("x"))),
		KV("c", Object(KV("d", Number(2.5)))),
	)
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("DecodeJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		``,
		`{"a": }`,
		`[1, 2`,
		`{"a": 1, "a": 2}`,
		`1 2`,
	} {
		_, err := DecodeJSON([]byte(in))
		assert.Error(t, err, "input %q", in)
	}

	_, err := DecodeJSON([]byte(`1 2`))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	doc := `
name: CP Scott
age: 85
tags:
  - editor
  - owner
address:
  city: Manchester
`
	v, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)

	want := Object(
		KV("name", String("CP Scott")),
		KV("age", Number(85)),
		KV("tags", Array(String("editor"), String("owner"))),
		KV("address", Object(KV("city", String("Manchester")))),
	)
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("DecodeYAML mismatch (-want +got):\n%s", diff)
	}

	_, err = DecodeYAML([]byte("a: b: c"))
	assert.Error(t, err)
}

func TestDecodeYAML_TimestampsStayStrings(t *testing.T) {
	t.Parallel()

	v, err := DecodeYAML([]byte("when: 2021-03-04T05:06:07Z\n"))
	require.NoError(t, err)

	when, ok := v.Lookup("when")
	require.True(t, ok)
	assert.Equal(t, KindString, when.Kind())
	s, _ := when.AsString()
	assert.Equal(t, "2021-03-04T05:06:07Z", s)
}

func TestDecodeYAML_AcceptsJSON(t *testing.T) {
	t.Parallel()

	v, err := DecodeYAML([]byte(`{"foo": [41, 42, 43]}`))
	require.NoError(t, err)

	item, ok := v.Lookup("foo")
	require.True(t, ok)
	n, ok := item.Index(1)
	require.True(t, ok)
	assert.True(t, n.Equal(Number(42)))
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	when := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	v, err := FromAny(map[string]any{
		"z":    []any{1, int64(2), uint8(3), float32(4.5)},
		"a":    nil,
		"when": when,
		"ok":   true,
		"list": []string{"x", "y"},
	})
	require.NoError(t, err)

	want := Object(
		KV("a", Null()),
		KV("list", Array(String("x"), String("y"))),
		KV("ok", Bool(true)),
		KV("when", Time(when)),
		KV("z", Array(Number(1), Number(2), Number(3), Number(4.5))),
	)
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("FromAny mismatch (-want +got):\n%s", diff)
	}

	_, err = FromAny(struct{ A int }{1})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = FromAny(map[string]any{"f": func() {}})
	assert.ErrorIs(t, err, ErrUnsupported)

	var p *int
	pv, err := FromAny(p)
	require.NoError(t, err)
	assert.True(t, pv.IsNull())
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	obj := Object(KV("foo", Number(1)), KV("foo", Number(2)))
	got, ok := obj.Lookup("foo")
	assert.True(t, ok)
	assert.True(t, got.Equal(Number(2)), "last duplicate wins")

	_, ok = obj.Lookup("bar")
	assert.False(t, ok)
	_, ok = String("foo").Lookup("foo")
	assert.False(t, ok)

	arr := Array(Number(41), Number(42))
	_, ok = arr.Index(2)
	assert.False(t, ok)
	_, ok = arr.Index(-1)
	assert.False(t, ok)
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, 0, Null().Len())

	s, ok := String("x").AsString()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = Number(1).AsString()
	assert.False(t, ok)

	var zero Value
	assert.True(t, zero.IsUndefined())
	assert.Equal(t, KindUndefined, zero.Kind())
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	items := []Value{Number(1)}
	arr := Array(items...)
	items[0] = Number(99)

	got, _ := arr.Index(0)
	assert.True(t, got.Equal(Number(1)))

	copied := arr.Items()
	copied[0] = Number(7)
	got, _ = arr.Index(0)
	assert.True(t, got.Equal(Number(1)))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo", String("foo").String())
	assert.Equal(t, "42", Number(42).String())
	assert.Equal(t, "NaN", Number(math.NaN()).String())
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "undefined", Undefined().String())
	assert.Equal(t, `{"foo":["bar",1]}`, Object(KV("foo", Array(String("bar"), Number(1)))).String())
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	when := time.Date(1970, 1, 1, 0, 0, 0, 42_000_000, time.UTC)
	b, err := Object(
		KV("when", Time(when)),
		KV("missing", Undefined()),
		KV("n", Number(1.5)),
	).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"when":"1970-01-01T00:00:00.042Z","missing":null,"n":1.5}`, string(b))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Array(Null(), Bool(false)).Equal(Array(Null(), Bool(false))))
	assert.False(t, Array(Null()).Equal(Array(Null(), Null())))
	assert.False(t, Object(KV("a", Null())).Equal(Object(KV("b", Null()))))
	assert.False(t, Number(math.NaN()).Equal(Number(math.NaN())))
	assert.False(t, Null().Equal(Undefined()))
}
