package preview

import (
	stderrors "errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/quicklook/pkg/errors"
	"github.com/go-drift/quicklook/pkg/rendering"
	"github.com/go-drift/quicklook/pkg/resources"
)

type caption string

func (c caption) Preview(resources.Loader) Payload {
	return Text{Text: "Plain text: " + string(c)}
}

type photo string

func (p photo) Preview(res resources.Loader) Payload {
	return ImageFor(res, string(p))
}

type silent struct{}

func (silent) Preview(resources.Loader) Payload { return nil }

type recordingHandler struct {
	errs   []*errors.LookError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.LookError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func withHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	old := errors.DefaultHandler
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(old) })
	return h
}

func TestRenderStatic(t *testing.T) {
	r := NewRenderer(nil)
	got := r.Render(caption("Hello"))
	if diff := cmp.Diff(Payload(Text{Text: "Plain text: Hello"}), got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := NewRenderer(resources.NewMapLoader().AddImage("swift", image.NewRGBA(image.Rect(0, 0, 2, 2))))
	for _, p := range []Previewable{caption("Hello"), photo("swift"), photo("missing-resource")} {
		first, second := r.Render(p), r.Render(p)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Render(%v) not idempotent:\n%s", p, diff)
		}
	}
}

func TestRenderNilPayloadFallsBackToText(t *testing.T) {
	got := NewRenderer(nil).Render(silent{})
	if got.Kind() != KindText {
		t.Fatalf("Kind = %v, want text", got.Kind())
	}
	if got.(Text).Text != "preview.silent" {
		t.Errorf("Text = %q", got.(Text).Text)
	}
}

func TestRenderNil(t *testing.T) {
	h := withHandler(t)
	r := NewRenderer(nil)

	var nilCaption *caption
	for name, p := range map[string]Previewable{
		"nil interface": nil,
		"nil pointer":   nilCaption,
	} {
		got := r.Render(p)
		if diff := cmp.Diff(Payload(Text{Text: "<nil>"}), got); diff != "" {
			t.Errorf("%s: Render mismatch (-want +got):\n%s", name, diff)
		}
	}
	if len(h.panics) != 0 {
		t.Errorf("got %d reported panics, want 0", len(h.panics))
	}
}

type faulty struct{}

func (faulty) Preview(resources.Loader) Payload { panic("broken preview") }

func TestRenderRecoversPanic(t *testing.T) {
	h := withHandler(t)
	r := NewRenderer(nil)

	got := r.Render(faulty{})
	if diff := cmp.Diff(Payload(Text{Text: "preview.faulty"}), got); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
	if len(h.panics) != 1 {
		t.Fatalf("got %d reported panics, want 1", len(h.panics))
	}
	if h.panics[0].Op != "preview.Render" || h.panics[0].Value != "broken preview" {
		t.Errorf("panic = %+v", h.panics[0])
	}

	RegisterFunc(r, func(caption, resources.Loader) Payload { panic("broken strategy") })
	if got := r.Render(caption("x")); got.Kind() != KindText {
		t.Errorf("Render(caption) kind = %v, want text", got.Kind())
	}
	if len(h.panics) != 2 {
		t.Errorf("got %d reported panics, want 2", len(h.panics))
	}
}

func TestImageFallback(t *testing.T) {
	h := withHandler(t)
	r := NewRenderer(resources.NewMapLoader())

	got := r.Render(photo("missing-resource"))
	if diff := cmp.Diff(Payload(Text{Text: "Image unavailable :("}), got); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
	if len(h.errs) != 1 {
		t.Fatalf("got %d reported errors, want 1", len(h.errs))
	}
	reported := h.errs[0]
	if reported.Kind != errors.KindResourceUnavailable || reported.Resource != "missing-resource" {
		t.Errorf("reported %+v", reported)
	}
	if !stderrors.Is(reported, errors.ErrResourceUnavailable) {
		t.Error("reported error should match ErrResourceUnavailable")
	}
}

func TestImageFound(t *testing.T) {
	h := withHandler(t)
	loader := resources.NewMapLoader().AddImage("swift", image.NewRGBA(image.Rect(0, 0, 3, 2)))

	got := ImageFor(loader, "swift")
	img, ok := got.(Image)
	if !ok {
		t.Fatalf("got %T, want Image", got)
	}
	if img.Handle.Name != "swift" || img.Handle.Size() != (rendering.Size{Width: 3, Height: 2}) {
		t.Errorf("handle = %+v", img.Handle)
	}
	if len(h.errs) != 0 {
		t.Errorf("unexpected reports: %v", h.errs)
	}
}

func TestSoundFallback(t *testing.T) {
	withHandler(t)
	if got := SoundFor(nil, "developers"); got != (Text{Text: SoundUnavailable}) {
		t.Errorf("SoundFor(nil) = %#v", got)
	}

	loader := resources.NewMapLoader().AddSound("developers", 10)
	got, ok := SoundFor(loader, "developers").(Sound)
	if !ok || got.Handle.Bytes != 10 {
		t.Errorf("SoundFor = %#v", got)
	}
}

func TestSpriteHasNoFallback(t *testing.T) {
	h := withHandler(t)
	for _, loader := range []resources.Loader{nil, resources.NewMapLoader()} {
		got, ok := SpriteFor(loader, "swift").(Sprite)
		if !ok {
			t.Fatalf("SpriteFor returned %T", got)
		}
		if got.Handle.Name != "swift" || got.Handle.HasTexture() {
			t.Errorf("sprite = %+v", got.Handle)
		}
	}
	if len(h.errs) != 0 {
		t.Error("sprites must not report missing resources")
	}
}

func TestRenderAnyUnsupported(t *testing.T) {
	r := NewRenderer(nil)
	for _, v := range []any{nil, 42, "plain", struct{}{}} {
		p, err := r.RenderAny(v)
		if p != nil {
			t.Errorf("RenderAny(%#v) payload = %#v, want nil", v, p)
		}
		var uerr *errors.UnsupportedTypeError
		if !stderrors.As(err, &uerr) {
			t.Fatalf("RenderAny(%#v) err = %v, want UnsupportedTypeError", v, err)
		}
		if uerr.Capability != "preview" {
			t.Errorf("Capability = %q", uerr.Capability)
		}
	}
}

func TestRenderAnyPreviewable(t *testing.T) {
	p, err := NewRenderer(nil).RenderAny(caption("Hi"))
	if err != nil {
		t.Fatal(err)
	}
	if p != (Text{Text: "Plain text: Hi"}) {
		t.Errorf("payload = %#v", p)
	}
}

func TestRegisterFunc(t *testing.T) {
	r := NewRenderer(nil)
	RegisterFunc(r, func(n int, _ resources.Loader) Payload {
		return NewRange(uint8(n), uint8(1))
	})
	RegisterFunc(r, func(c caption, _ resources.Loader) Payload {
		return StyledText{Text: string(c), FontSize: 12}
	})

	p, err := r.RenderAny(7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Payload(Range{Start: 7, Length: 1}), p); diff != "" {
		t.Errorf("int strategy (-want +got):\n%s", diff)
	}

	// Registered strategies beat the type's own Preview method.
	if got := r.Render(caption("x")); got.Kind() != KindStyledText {
		t.Errorf("Render(caption) kind = %v, want styled_text", got.Kind())
	}
}

func TestRenderAnyRecoversPanic(t *testing.T) {
	h := withHandler(t)
	r := NewRenderer(nil)
	RegisterFunc(r, func(float64, resources.Loader) Payload { panic("bad strategy") })

	p, err := r.RenderAny(1.5)
	if p != nil {
		t.Errorf("payload = %#v, want nil", p)
	}
	var perr *errors.PanicError
	if !stderrors.As(err, &perr) {
		t.Fatalf("err = %v, want PanicError", err)
	}
	if perr.Value != "bad strategy" || perr.Op != "preview.RenderAny" {
		t.Errorf("panic = %+v", perr)
	}
	if len(h.panics) != 1 {
		t.Errorf("got %d reported panics, want 1", len(h.panics))
	}
}

func TestNewRangeWidens(t *testing.T) {
	var start, length uint = 10, 36
	r := NewRange(start, length)
	if r.Start != 10 || r.Length != 36 || r.End() != 46 {
		t.Errorf("range = %+v end %d", r, r.End())
	}
	if got := NewRange[uint16](65535, 1); got.End() != 65536 {
		t.Errorf("uint16 range should widen, End = %d", got.End())
	}
	if got := (Range{Start: ^uint64(0), Length: 5}).End(); got != ^uint64(0) {
		t.Errorf("End should saturate, got %d", got)
	}
}

func TestViewLayout(t *testing.T) {
	v := NewView(100, rendering.ColorGreen, rendering.ColorWhite)
	bg, fg := v.Layout()
	if bg != rendering.RectFromLTWH(0, 0, 100, 100) {
		t.Errorf("background = %+v", bg)
	}
	if fg != rendering.RectFromLTWH(25, 25, 50, 50) {
		t.Errorf("foreground = %+v", fg)
	}
}

func TestKindString(t *testing.T) {
	kinds := []Payload{
		Text{}, StyledText{}, Color{}, Image{}, VectorPath{}, Rectangle{}, Size{},
		Point{}, View{}, URL{}, Range{}, Sprite{}, Sound{},
	}
	seen := map[string]bool{}
	for i, p := range kinds {
		if int(p.Kind()) != i {
			t.Errorf("%T.Kind() = %d, want %d", p, p.Kind(), i)
		}
		seen[p.Kind().String()] = true
	}
	if len(seen) != len(kinds) {
		t.Errorf("kind names are not unique: %v", seen)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}
