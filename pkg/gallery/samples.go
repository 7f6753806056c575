package gallery

import (
	"net/url"

	"github.com/samber/lo"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
	"github.com/go-drift/quicklook/pkg/truthy"
)

// Sample is a named value to preview.
type Sample struct {
	Name  string
	Value preview.Previewable
}

// Samples returns the preview demonstration values in display order.
func Samples() []Sample {
	site, _ := url.Parse("http://swiftunboxed.com")
	return []Sample{
		{"textExample", TextExample{Text: "Hello"}},
		{"attrExample", AttributedTextExample{Text: "Hello", IsBold: true}},
		{"wallPaint", Paint{Viscosity: 0.9, Color: rendering.RGBAF(0.2, 1.0, 0.5, 1.0)}},
		{"imageExample", ImageExample{Name: "swift"}},
		{"bezierExample", BezierExample{Radius: 8}},
		{"rectExample", RectExample{Ratio: 1.618}},
		{"sizeExample", SizeExample{Ratio: 1.618}},
		{"pointExample", PointExample{X: 36.5, Y: 42}},
		{"testView", ViewExample{Background: rendering.ColorGreen, Foreground: rendering.ColorWhite}},
		{"urlExample", URLExample{URL: site}},
		{"rangeExample", RangeExample{Start: 10, Length: 36}},
		{"spriteExample", SpriteExample{Name: "swift"}},
		{"soundExample", SoundExample{Name: "developers"}},
	}
}

// Rendered pairs a sample with its payload.
type Rendered struct {
	Sample
	Payload preview.Payload
}

// RenderAll renders every sample with r.
func RenderAll(r *preview.Renderer, samples []Sample) []Rendered {
	return lo.Map(samples, func(s Sample, _ int) Rendered {
		return Rendered{Sample: s, Payload: r.Render(s.Value)}
	})
}

// TruthySample is a value with the message printed when it is truthy and
// the one printed when it is not. An empty message prints nothing.
type TruthySample struct {
	Name    string
	Value   truthy.Booler
	IfTrue  string
	IfFalse string
}

// TruthySamples returns the truthiness demonstration values.
func TruthySamples() []TruthySample {
	return []TruthySample{
		{Name: "42", Value: truthy.IntOf(42), IfTrue: "42 is the truth!"},
		{Name: "0", Value: truthy.IntOf(0), IfFalse: "Sorry, 0 is not true :("},
		{Name: "opt1", Value: truthy.None[string](), IfTrue: "opt 1 appears true!"},
		{Name: "opt2", Value: truthy.Some("Hello"), IfTrue: "opt 2 appears true!"},
		{Name: "[0, 1, 2]", Value: truthy.Sequence[int]{0, 1, 2}, IfTrue: "non-empty arrays are true!"},
		{Name: "emptyArray", Value: truthy.Sequence[float64]{}, IfTrue: "will not be run :("},
	}
}

// Message returns the line the sample prints, if any.
func (s TruthySample) Message() string {
	if truthy.Truthy(s.Value) {
		return s.IfTrue
	}
	return s.IfFalse
}
