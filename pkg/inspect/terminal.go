// Package inspect displays preview payloads.
//
// It plays the part of the host inspector: the preview core only builds
// payloads, and everything that draws them lives here.
package inspect

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
)

// Default swatch and thumbnail dimensions in terminal cells.
const (
	defaultColumns = 16
	defaultRows    = 8
)

// Terminal renders payloads as styled terminal blocks.
type Terminal struct {
	renderer *lipgloss.Renderer
	// Columns and Rows bound color swatches, views and thumbnails.
	Columns int
	Rows    int
}

// NewTerminal returns a Terminal whose color support is detected from w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		renderer: lipgloss.NewRenderer(w),
		Columns:  defaultColumns,
		Rows:     defaultRows,
	}
}

// Render returns the block for p. Every block carries the payload's text or
// its preview.Describe summary.
func (t *Terminal) Render(p preview.Payload) string {
	label := t.renderer.NewStyle().Faint(true)

	switch p := p.(type) {
	case preview.StyledText:
		style := t.renderer.NewStyle().Bold(p.Emphasis.IsBold()).Italic(p.Emphasis.IsItalic())
		return style.Render(p.Text)
	case preview.Color:
		swatch := t.renderer.NewStyle().
			Background(lipgloss.Color(hexRGB(p.Color))).
			Width(t.Columns).
			Render("")
		return lipgloss.JoinHorizontal(lipgloss.Center, swatch, " ", label.Render(preview.Describe(p)))
	case preview.View:
		return t.grid(preview.Describe(p), func(x, y float64) rendering.Color {
			px := rendering.Offset{X: x * p.Width, Y: y * p.Height}
			if _, fg := p.Layout(); fg.Contains(px) {
				return p.Foreground
			}
			return p.Background
		})
	case preview.Image:
		return t.thumbnail(preview.Describe(p), p.Handle.Bitmap)
	case preview.Sprite:
		if p.Handle.Texture == nil {
			return label.Render(preview.Describe(p))
		}
		return t.thumbnail(preview.Describe(p), p.Handle.Texture.Bitmap)
	case preview.Size:
		return fmt.Sprintf("%s × %s", humanize.Commaf(p.Width), humanize.Commaf(p.Height))
	case preview.Rectangle:
		return fmt.Sprintf("origin (%s, %s) size %s × %s",
			humanize.Commaf(p.X), humanize.Commaf(p.Y), humanize.Commaf(p.Width), humanize.Commaf(p.Height))
	case preview.Range:
		return fmt.Sprintf("%s..<%s (%s)", commaU(p.Start), commaU(p.End()), pluralize(p.Length, "element"))
	case preview.Sound:
		return fmt.Sprintf("♪ %s %s", p.Handle.Name, label.Render(humanize.Bytes(uint64(max(p.Handle.Bytes, 0)))))
	case preview.URL:
		return t.renderer.NewStyle().Foreground(lipgloss.Color("12")).Render(p.URL)
	default:
		return preview.Describe(p)
	}
}

// grid samples colorAt over normalized coordinates and draws one cell per
// sample, with caption below.
func (t *Terminal) grid(caption string, colorAt func(x, y float64) rendering.Color) string {
	cols, rows := max(t.Columns, 1), max(t.Rows, 1)
	lines := make([]string, 0, rows+1)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			c := colorAt((float64(col)+0.5)/float64(cols), (float64(row)+0.5)/float64(rows))
			sb.WriteString(t.renderer.NewStyle().Background(lipgloss.Color(hexRGB(c))).Render(" "))
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, t.renderer.NewStyle().Faint(true).Render(caption))
	return strings.Join(lines, "\n")
}

func (t *Terminal) thumbnail(caption string, img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return caption
	}
	b := img.Bounds()
	return t.grid(caption, func(x, y float64) rendering.Color {
		px := b.Min.X + int(math.Floor(x*float64(b.Dx())))
		py := b.Min.Y + int(math.Floor(y*float64(b.Dy())))
		return fromColor(img.At(px, py))
	})
}

func hexRGB(c rendering.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

func commaU(v uint64) string {
	if v <= math.MaxInt64 {
		return humanize.Comma(int64(v))
	}
	return strconv.FormatUint(v, 10)
}

func pluralize(n uint64, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return commaU(n) + " " + word + "s"
}
