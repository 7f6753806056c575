package gallery

import (
	"image"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
	"github.com/go-drift/quicklook/pkg/resources"
)

func newRenderer() *preview.Renderer {
	loader := resources.NewMapLoader().
		AddImage("swift", image.NewRGBA(image.Rect(0, 0, 64, 64))).
		AddSound("developers", 4096)
	return preview.NewRenderer(loader)
}

func TestTextExample(t *testing.T) {
	got := newRenderer().Render(TextExample{Text: "Hello"})
	if diff := cmp.Diff(preview.Payload(preview.Text{Text: "Plain text: Hello"}), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRangeExample(t *testing.T) {
	got := newRenderer().Render(RangeExample{Start: 10, Length: 36})
	want := preview.Range{Start: uint64(10), Length: uint64(36)}
	assert.Equal(t, preview.Payload(want), got)
}

func TestImageExampleMissing(t *testing.T) {
	got := newRenderer().Render(ImageExample{Name: "missing-resource"})
	assert.Equal(t, preview.Payload(preview.Text{Text: "Image unavailable :("}), got)
}

func TestSoundExampleMissing(t *testing.T) {
	got := preview.NewRenderer(nil).Render(SoundExample{Name: "developers"})
	assert.Equal(t, preview.Payload(preview.Text{Text: "Sound unavailable :("}), got)
}

func TestAttributedTextExample(t *testing.T) {
	r := newRenderer()

	bold, ok := r.Render(AttributedTextExample{Text: "Hello", IsBold: true}).(preview.StyledText)
	require.True(t, ok)
	assert.True(t, bold.Emphasis.IsBold())
	assert.Equal(t, 16.0, bold.FontSize)

	plain, ok := r.Render(AttributedTextExample{Text: "Hello"}).(preview.StyledText)
	require.True(t, ok)
	assert.False(t, plain.Emphasis.IsBold())
}

func TestGeometryExamples(t *testing.T) {
	r := newRenderer()
	assert.Equal(t, preview.Payload(preview.Rectangle{X: 0, Y: 0, Width: 1618, Height: 1000}), r.Render(RectExample{Ratio: 1.618}))
	assert.Equal(t, preview.Payload(preview.Size{Width: 1618, Height: 1000}), r.Render(SizeExample{Ratio: 1.618}))
	assert.Equal(t, preview.Payload(preview.Point{X: 36.5, Y: 42}), r.Render(PointExample{X: 36.5, Y: 42}))
}

func TestBezierExample(t *testing.T) {
	p, ok := newRenderer().Render(BezierExample{Radius: 8}).(preview.VectorPath)
	require.True(t, ok)
	assert.Equal(t, rendering.RectFromLTWH(0, 0, 100, 100), p.Path.Bounds())
	assert.Equal(t, rendering.PathOpMoveTo, p.Path.Commands[0].Op)
	assert.Equal(t, []float64{8, 0}, p.Path.Commands[0].Args)
}

func TestViewExample(t *testing.T) {
	got := newRenderer().Render(ViewExample{Background: rendering.ColorGreen, Foreground: rendering.ColorWhite})
	want := preview.View{
		Width: 100, Height: 100,
		Background: rendering.ColorGreen,
		Foreground: rendering.ColorWhite,
		InsetRatio: 0.25,
	}
	assert.Equal(t, preview.Payload(want), got)
}

func TestURLExample(t *testing.T) {
	u, err := url.Parse("http://swiftunboxed.com")
	require.NoError(t, err)
	assert.Equal(t, preview.Payload(preview.URL{URL: "http://swiftunboxed.com"}), newRenderer().Render(URLExample{URL: u}))
	assert.Equal(t, preview.Payload(preview.URL{}), newRenderer().Render(URLExample{}))
}

func TestSpriteExample(t *testing.T) {
	s, ok := newRenderer().Render(SpriteExample{Name: "swift"}).(preview.Sprite)
	require.True(t, ok)
	assert.True(t, s.Handle.HasTexture())

	s, ok = newRenderer().Render(SpriteExample{Name: "nope"}).(preview.Sprite)
	require.True(t, ok, "missing sprite textures do not fall back to text")
	assert.False(t, s.Handle.HasTexture())
}

func TestEveryExampleHasOneKind(t *testing.T) {
	want := map[string]preview.Kind{
		"textExample":   preview.KindText,
		"attrExample":   preview.KindStyledText,
		"wallPaint":     preview.KindColor,
		"imageExample":  preview.KindImage,
		"bezierExample": preview.KindVectorPath,
		"rectExample":   preview.KindRectangle,
		"sizeExample":   preview.KindSize,
		"pointExample":  preview.KindPoint,
		"testView":      preview.KindView,
		"urlExample":    preview.KindURL,
		"rangeExample":  preview.KindRange,
		"spriteExample": preview.KindSprite,
		"soundExample":  preview.KindSound,
	}
	rendered := RenderAll(newRenderer(), Samples())
	require.Len(t, rendered, len(want))
	for _, r := range rendered {
		assert.Equal(t, want[r.Name], r.Payload.Kind(), r.Name)
	}
}

func TestSamplesRenderIdempotently(t *testing.T) {
	r := newRenderer()
	first := RenderAll(r, Samples())
	second := RenderAll(r, Samples())
	for i := range first {
		if diff := cmp.Diff(first[i].Payload, second[i].Payload); diff != "" {
			t.Errorf("%s differs between renders:\n%s", first[i].Name, diff)
		}
	}
}
