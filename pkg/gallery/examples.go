// Package gallery holds one example value per preview payload kind, plus the
// sample values the truthiness and preview demonstrations are run against.
package gallery

import (
	"net/url"

	"golang.org/x/image/font"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
	"github.com/go-drift/quicklook/pkg/resources"
)

// sideLength is the reference length for the rectangle and size examples.
const sideLength = 1000

// viewSide is the edge length of the view example.
const viewSide = 100

// TextExample previews as plain text.
type TextExample struct {
	Text string
}

// Preview returns the text prefixed with "Plain text: ".
func (e TextExample) Preview(resources.Loader) preview.Payload {
	return preview.Text{Text: "Plain text: " + e.Text}
}

// AttributedTextExample previews as 16pt styled text.
type AttributedTextExample struct {
	Text   string
	IsBold bool
}

// Preview returns the text at 16pt, bold when IsBold is set.
func (e AttributedTextExample) Preview(resources.Loader) preview.Payload {
	weight := font.WeightNormal
	if e.IsBold {
		weight = font.WeightBold
	}
	return preview.StyledText{
		Text:     e.Text,
		Emphasis: preview.Emphasis{Weight: weight, Style: font.StyleNormal},
		FontSize: 16,
	}
}

// Paint previews as its color; viscosity is not shown.
type Paint struct {
	Viscosity float64
	Color     rendering.Color
}

// Preview returns the paint's color swatch.
func (p Paint) Preview(resources.Loader) preview.Payload {
	return preview.Color{Color: p.Color}
}

// ImageExample previews the named image.
type ImageExample struct {
	Name string
}

// Preview returns the named image, or the image-unavailable text.
func (e ImageExample) Preview(res resources.Loader) preview.Payload {
	return preview.ImageFor(res, e.Name)
}

// BezierExample previews a 100x100 rounded rectangle path.
type BezierExample struct {
	Radius float64
}

// Preview returns a rounded rectangle path with corner radius Radius.
func (e BezierExample) Preview(resources.Loader) preview.Payload {
	path := rendering.NewPath()
	path.AddRRect(rendering.RRectFromRectAndRadius(
		rendering.RectFromLTWH(0, 0, 100, 100),
		rendering.CircularRadius(e.Radius),
	))
	return preview.VectorPath{Path: path}
}

// RectExample previews a rectangle whose width is Ratio times its height.
type RectExample struct {
	Ratio float64
}

// Preview returns a rectangle at the origin, 1000 high.
func (e RectExample) Preview(resources.Loader) preview.Payload {
	return preview.Rectangle{X: 0, Y: 0, Width: sideLength * e.Ratio, Height: sideLength}
}

// SizeExample previews a size whose width is Ratio times its height.
type SizeExample struct {
	Ratio float64
}

// Preview returns a size 1000 high.
func (e SizeExample) Preview(resources.Loader) preview.Payload {
	return preview.Size{Width: sideLength * e.Ratio, Height: sideLength}
}

// PointExample previews a point.
type PointExample struct {
	X, Y float64
}

// Preview returns the point.
func (e PointExample) Preview(resources.Loader) preview.Payload {
	return preview.Point{X: e.X, Y: e.Y}
}

// ViewExample previews a square with an inset foreground square.
type ViewExample struct {
	Background rendering.Color
	Foreground rendering.Color
}

// Preview returns a 100x100 view with the default inset.
func (e ViewExample) Preview(resources.Loader) preview.Payload {
	return preview.NewView(viewSide, e.Background, e.Foreground)
}

// URLExample previews a URL. A nil URL previews as an empty string.
type URLExample struct {
	URL *url.URL
}

// Preview returns the URL in string form.
func (e URLExample) Preview(resources.Loader) preview.Payload {
	if e.URL == nil {
		return preview.URL{}
	}
	return preview.URL{URL: e.URL.String()}
}

// RangeExample previews a range.
type RangeExample struct {
	Start  uint
	Length uint
}

// Preview returns the range widened to 64 bits.
func (e RangeExample) Preview(resources.Loader) preview.Payload {
	return preview.NewRange(e.Start, e.Length)
}

// SpriteExample previews a sprite textured with the named image.
type SpriteExample struct {
	Name string
}

// Preview returns a sprite, untextured when the image is missing.
func (e SpriteExample) Preview(res resources.Loader) preview.Payload {
	return preview.SpriteFor(res, e.Name)
}

// SoundExample previews the named sound.
type SoundExample struct {
	Name string
}

// Preview returns the named sound, or the sound-unavailable text.
func (e SoundExample) Preview(res resources.Loader) preview.Payload {
	return preview.SoundFor(res, e.Name)
}
