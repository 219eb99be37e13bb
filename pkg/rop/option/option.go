package option

import "fmt"

type Kind int

const (
	KindNone Kind = iota
	KindSome
)

func (k Kind) String() string {
	if k == KindSome {
		return "Some"
	}
	return "None"
}

// Option is either Some(value) or None. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable turns a possibly nil pointer into an Option of the pointee.
func FromNullable[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) Kind() Kind {
	if o.some {
		return KindSome
	}
	return KindNone
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// WithDefault unwraps the Option, falling back to def for None.
func WithDefault[T any](def T, o Option[T]) T {
	if o.some {
		return o.value
	}
	return def
}

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// Map2 applies f only when both options are Some.
func Map2[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if oa.some && ob.some {
		return Some(f(oa.value, ob.value))
	}
	return None[C]()
}

func AndThen[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.some {
		return f(o.value)
	}
	return None[B]()
}
