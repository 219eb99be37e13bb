package option

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	s := Some(5)
	if !s.IsSome() || s.IsNone() || s.Kind() != KindSome {
		t.Fatalf("expected Some, got kind=%v", s.Kind())
	}
	v, ok := s.Get()
	if !ok || v != 5 {
		t.Fatalf("expected 5, got %v (ok=%v)", v, ok)
	}

	n := None[int]()
	if !n.IsNone() || n.Kind() != KindNone {
		t.Fatalf("expected None, got kind=%v", n.Kind())
	}

	var zero Option[string]
	assert.True(t, zero.IsNone())
}

func TestFromNullable(t *testing.T) {
	t.Parallel()

	x := "CP Scott"
	assert.Equal(t, Some("CP Scott"), FromNullable(&x))
	assert.Equal(t, None[string](), FromNullable[string](nil))
}

func TestWithDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CP Scott", WithDefault("Jane Smith", Some("CP Scott")))
	assert.Equal(t, "Jane Smith", WithDefault("Jane Smith", None[string]()))
}

func TestMap(t *testing.T) {
	t.Parallel()

	credit := func(name string) string { return "Photograph: " + name }

	assert.Equal(t, Some("Photograph: Niépce"), Map(Some("Niépce"), credit))
	assert.Equal(t, None[string](), Map(None[string](), credit))
}

func TestMap2(t *testing.T) {
	t.Parallel()

	add := func(a, b int) int { return a + b }

	assert.Equal(t, Some(3), Map2(Some(1), Some(2), add))
	assert.True(t, Map2(None[int](), Some(2), add).IsNone())
	assert.True(t, Map2(Some(1), None[int](), add).IsNone())
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	atoi := func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Some(n)
	}

	assert.Equal(t, Some(42), AndThen(Some("42"), atoi))
	assert.True(t, AndThen(Some("x"), atoi).IsNone())

	called := false
	AndThen(None[string](), func(s string) Option[int] {
		called = true
		return Some(1)
	})
	if called {
		t.Fatalf("AndThen must not call f on None")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}
