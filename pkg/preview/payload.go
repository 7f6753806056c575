package preview

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/go-drift/quicklook/pkg/rendering"
	"github.com/go-drift/quicklook/pkg/resources"
)

// Kind identifies a payload variant.
type Kind int

const (
	// KindText is plain text.
	KindText Kind = iota
	// KindStyledText is text with emphasis and a point size.
	KindStyledText
	// KindColor is a color swatch.
	KindColor
	// KindImage is a bitmap from the resource loader.
	KindImage
	// KindVectorPath is vector geometry.
	KindVectorPath
	// KindRectangle is a rectangle.
	KindRectangle
	// KindSize is a width and height.
	KindSize
	// KindPoint is a coordinate pair.
	KindPoint
	// KindView is a custom drawing described as data.
	KindView
	// KindURL is an absolute URL.
	KindURL
	// KindRange is a start and length.
	KindRange
	// KindSprite is a textured scene node.
	KindSprite
	// KindSound is an audio asset.
	KindSound
)

var kindNames = [...]string{
	KindText:       "text",
	KindStyledText: "styled_text",
	KindColor:      "color",
	KindImage:      "image",
	KindVectorPath: "vector_path",
	KindRectangle:  "rectangle",
	KindSize:       "size",
	KindPoint:      "point",
	KindView:       "view",
	KindURL:        "url",
	KindRange:      "range",
	KindSprite:     "sprite",
	KindSound:      "sound",
}

// String returns the snake_case name used in encoded records.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Payload is a tagged description of how to summarize a value visually.
// The set of implementations is closed: the variants in this package.
type Payload interface {
	Kind() Kind
	payload()
}

// Text is plain text.
type Text struct {
	Text string
}

// Emphasis selects the weight and slant of styled text.
type Emphasis struct {
	Weight font.Weight
	Style  font.Style
}

// IsBold reports whether the weight is bold or heavier.
func (e Emphasis) IsBold() bool { return e.Weight >= font.WeightBold }

// IsItalic reports whether the style is slanted.
func (e Emphasis) IsItalic() bool { return e.Style != font.StyleNormal }

// StyledText is text with emphasis and a point size.
type StyledText struct {
	Text     string
	Emphasis Emphasis
	FontSize float64
}

// Color is a single color swatch.
type Color struct {
	Color rendering.Color
}

// RGBA returns the normalized components.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.Color.Components()
}

// Image is a bitmap owned by the resource loader.
type Image struct {
	Handle resources.Image
}

// VectorPath is vector geometry.
type VectorPath struct {
	Path *rendering.Path
}

// Rectangle is a rectangle given as separate numbers.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Size is a width and height.
type Size struct {
	Width, Height float64
}

// Point is a coordinate pair.
type Point struct {
	X, Y float64
}

// DefaultInsetRatio is the fraction of each side left around a view's
// foreground square.
const DefaultInsetRatio = 0.25

// View describes a custom drawing as data: the display fills its bounds with
// Background, then fills the bounds inset by InsetRatio with Foreground.
type View struct {
	Width, Height float64
	Background    rendering.Color
	Foreground    rendering.Color
	InsetRatio    float64
}

// NewView returns a square view of the given side using DefaultInsetRatio.
func NewView(side float64, background, foreground rendering.Color) View {
	return View{
		Width:      side,
		Height:     side,
		Background: background,
		Foreground: foreground,
		InsetRatio: DefaultInsetRatio,
	}
}

// Layout returns the rectangle to fill with Background and the one to fill
// with Foreground.
func (v View) Layout() (background, foreground rendering.Rect) {
	background = rendering.RectFromLTWH(0, 0, v.Width, v.Height)
	foreground = background.Inset(v.Width*v.InsetRatio, v.Height*v.InsetRatio)
	return background, foreground
}

// URL is an absolute URL string.
type URL struct {
	URL string
}

// Range is a start and length, always stored as uint64.
type Range struct {
	Start, Length uint64
}

// Unsigned is the set of Go unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NewRange widens start and length to uint64.
func NewRange[T Unsigned](start, length T) Range {
	return Range{Start: uint64(start), Length: uint64(length)}
}

// End returns Start+Length, saturating at the maximum uint64.
func (r Range) End() uint64 {
	if end := r.Start + r.Length; end >= r.Start {
		return end
	}
	return ^uint64(0)
}

// Sprite is a scene node owned by the resource loader.
type Sprite struct {
	Handle resources.Sprite
}

// Sound is an audio asset owned by the resource loader.
type Sound struct {
	Handle resources.Sound
}

func (Text) Kind() Kind       { return KindText }
func (StyledText) Kind() Kind { return KindStyledText }
func (Color) Kind() Kind      { return KindColor }
func (Image) Kind() Kind      { return KindImage }
func (VectorPath) Kind() Kind { return KindVectorPath }
func (Rectangle) Kind() Kind  { return KindRectangle }
func (Size) Kind() Kind       { return KindSize }
func (Point) Kind() Kind      { return KindPoint }
func (View) Kind() Kind       { return KindView }
func (URL) Kind() Kind        { return KindURL }
func (Range) Kind() Kind      { return KindRange }
func (Sprite) Kind() Kind     { return KindSprite }
func (Sound) Kind() Kind      { return KindSound }

func (Text) payload()       {}
func (StyledText) payload() {}
func (Color) payload()      {}
func (Image) payload()      {}
func (VectorPath) payload() {}
func (Rectangle) payload()  {}
func (Size) payload()       {}
func (Point) payload()      {}
func (View) payload()       {}
func (URL) payload()        {}
func (Range) payload()      {}
func (Sprite) payload()     {}
func (Sound) payload()      {}
