package truthy

import (
	"reflect"
	"sync"

	"github.com/go-drift/quicklook/pkg/errors"
)

// capability names the operation set in unsupported-type errors.
const capability = "truthiness"

// Resolver evaluates truthiness for values whose type is only known at run
// time. Rules registered with [Register] take precedence over [Booler] and
// the built-in kinds.
//
// A Resolver is safe for concurrent use.
type Resolver struct {
	mu    sync.RWMutex
	rules map[reflect.Type]func(any) bool
}

// NewResolver returns a Resolver with no registered rules.
func NewResolver() *Resolver {
	return &Resolver{rules: make(map[reflect.Type]func(any) bool)}
}

// Default is the resolver used by [IsTruthy].
var Default = NewResolver()

// Register adds a rule for values whose dynamic type is exactly T. This is
// how a caller gives truthiness to a type it does not own. A later
// registration for the same type replaces the earlier one.
func Register[T any](r *Resolver, rule func(T) bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rules == nil {
		r.rules = make(map[reflect.Type]func(any) bool)
	}
	r.rules[t] = func(v any) bool { return rule(v.(T)) }
}

// Unregister removes the rule for T, if any.
func Unregister[T any](r *Resolver) {
	r.mu.Lock()
	delete(r.rules, reflect.TypeOf((*T)(nil)).Elem())
	r.mu.Unlock()
}

// IsTruthy evaluates v with the [Default] resolver.
func IsTruthy(v any) (bool, error) {
	return Default.IsTruthy(v)
}

// IsTruthy evaluates v.
//
// Resolution order is: a registered rule for v's exact type, then [Booler],
// then the built-in kinds. A nil pointer is false before [Booler] is
// consulted. bool reports itself; integers follow the integer rule; nil,
// pointers and interfaces follow the optional rule; slices and arrays follow
// the sequence rule. Anything else returns an
// [*errors.UnsupportedTypeError].
func (r *Resolver) IsTruthy(v any) (bool, error) {
	if v == nil {
		return false, nil
	}
	if rule := r.lookup(reflect.TypeOf(v)); rule != nil {
		return rule(v), nil
	}
	// A nil pointer is an absent optional, even when its element is a Booler.
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false, nil
	}
	if b, ok := v.(Booler); ok {
		return b.Bool(), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0, nil
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil(), nil
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0, nil
	default:
		return false, errors.Unsupported(capability, v)
	}
}

// MustTruthy is like IsTruthy but panics on an unsupported type.
func (r *Resolver) MustTruthy(v any) bool {
	ok, err := r.IsTruthy(v)
	if err != nil {
		panic(err)
	}
	return ok
}

func (r *Resolver) lookup(t reflect.Type) func(any) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rules[t]
}
