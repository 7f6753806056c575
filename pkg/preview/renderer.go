// Package preview turns values into preview payloads.
//
// A type opts in by implementing [Previewable], or a strategy for it can be
// registered on a [Renderer] with [RegisterFunc]. Payloads are plain data;
// drawing them is left to a display surface such as package inspect.
package preview

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/go-drift/quicklook/pkg/errors"
	"github.com/go-drift/quicklook/pkg/resources"
)

// capability names the operation set in unsupported-type errors.
const capability = "preview"

// Previewable is implemented by values that can describe their own preview.
type Previewable interface {
	// Preview returns the value's payload. Named resources are looked up in
	// res; a missing resource must not fail the call.
	Preview(res resources.Loader) Payload
}

// strategy renders one registered type.
type strategy func(v any, res resources.Loader) Payload

// Renderer dispatches values to their preview strategy.
//
// A Renderer is safe for concurrent use. Rendering itself does not mutate
// the Renderer.
type Renderer struct {
	loader resources.Loader
	logger *zap.Logger

	mu         sync.RWMutex
	strategies map[reflect.Type]strategy
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRenderer returns a Renderer that resolves resources with loader.
// A nil loader behaves as one where nothing can be found.
func NewRenderer(loader resources.Loader, opts ...Option) *Renderer {
	if loader == nil {
		loader = resources.NewMapLoader()
	}
	r := &Renderer{
		loader:     loader,
		logger:     zap.NewNop(),
		strategies: make(map[reflect.Type]strategy),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Loader returns the renderer's resource loader.
func (r *Renderer) Loader() resources.Loader {
	return r.loader
}

// RegisterFunc adds a strategy for values whose dynamic type is exactly T.
// It takes precedence over T's own Preview method. Registering T again
// replaces the previous strategy.
func RegisterFunc[T any](r *Renderer, fn func(v T, res resources.Loader) Payload) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[t] = func(v any, res resources.Loader) Payload {
		return fn(v.(T), res)
	}
}

// nilText is the payload text for nil values.
const nilText = "<nil>"

// Render returns p's payload. It always yields exactly one payload: nil
// values, including nil pointers without a registered strategy, render as
// "<nil>", and a panicking strategy or Preview method is reported to the
// error handler and renders as the type name.
func (r *Renderer) Render(p Previewable) (payload Payload) {
	if p == nil {
		return Text{Text: nilText}
	}
	defer func() { payload = r.ensure(p, payload) }()
	defer errors.Recover("preview.Render")

	if s := r.lookup(reflect.TypeOf(p)); s != nil {
		return s(p, r.loader)
	}
	if rv := reflect.ValueOf(p); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Text{Text: nilText}
	}
	return p.Preview(r.loader)
}

// RenderAny returns the payload for v, which may be of any type.
//
// A registered strategy for v's exact type wins, then [Previewable]. Other
// types fail with an [*errors.UnsupportedTypeError]. A panic inside a
// strategy is reported to the error handler and returned as an
// [*errors.PanicError].
func (r *Renderer) RenderAny(v any) (payload Payload, err error) {
	defer errors.RecoverInto("preview.RenderAny", &err)

	if v == nil {
		return nil, errors.Unsupported(capability, v)
	}
	if s := r.lookup(reflect.TypeOf(v)); s != nil {
		return r.ensure(v, s(v, r.loader)), nil
	}
	if p, ok := v.(Previewable); ok {
		return r.ensure(v, p.Preview(r.loader)), nil
	}
	r.logger.Debug("no preview strategy", zap.String("type", fmt.Sprintf("%T", v)))
	return nil, errors.Unsupported(capability, v)
}

func (r *Renderer) lookup(t reflect.Type) strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strategies[t]
}

// ensure substitutes a Text payload when a strategy returned nil.
func (r *Renderer) ensure(v any, p Payload) Payload {
	if p != nil {
		return p
	}
	r.logger.Debug("strategy returned no payload", zap.String("type", fmt.Sprintf("%T", v)))
	return Text{Text: fmt.Sprintf("%T", v)}
}
