// Package truthy converts values to a boolean verdict.
//
// Three source kinds carry a truth rule:
//
//   - Integers are true unless they are zero. Negative numbers are true.
//   - Optionals are true when a value is present, whatever that value is.
//   - Sequences are true when they are non-empty, whatever they contain.
//
// The wrapper types [Int], [Optional] and [Sequence] implement [Booler], so
// [Truthy] rejects any other type at compile time. [IsTruthy] accepts any
// value and fails with an unsupported-type error instead of guessing.
package truthy

// Booler is implemented by values that can report a boolean verdict.
type Booler interface {
	Bool() bool
}

// Truthy returns b's verdict.
func Truthy(b Booler) bool {
	return b.Bool()
}

// Integer is the set of Go integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int wraps an integer of any width.
type Int[T Integer] struct {
	V T
}

// IntOf wraps v.
func IntOf[T Integer](v T) Int[T] {
	return Int[T]{V: v}
}

// Bool reports whether the integer is non-zero.
func (i Int[T]) Bool() bool {
	return i.V != 0
}

// Optional holds either a value or nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Bool reports whether a value is present.
func (o Optional[T]) Bool() bool {
	return o.ok
}

// Sequence is an ordered collection of elements.
type Sequence[T any] []T

// Bool reports whether the sequence has at least one element.
func (s Sequence[T]) Bool() bool {
	return len(s) > 0
}
