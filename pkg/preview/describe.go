package preview

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe returns a one-line summary of p, suitable for a results sidebar
// or a log field.
func Describe(p Payload) string {
	switch p := p.(type) {
	case nil:
		return nilText
	case Text:
		return p.Text
	case StyledText:
		var marks []string
		if p.Emphasis.IsBold() {
			marks = append(marks, "bold")
		}
		if p.Emphasis.IsItalic() {
			marks = append(marks, "italic")
		}
		marks = append(marks, num(p.FontSize)+"pt")
		return fmt.Sprintf("%s (%s)", p.Text, strings.Join(marks, ", "))
	case Color:
		r, g, b, a := p.RGBA()
		return fmt.Sprintf("r %s g %s b %s a %s", num(r), num(g), num(b), num(a))
	case Image:
		sz := p.Handle.Size()
		return fmt.Sprintf("image %s %s×%s", p.Handle.Name, num(sz.Width), num(sz.Height))
	case VectorPath:
		if p.Path.IsEmpty() {
			return "path (empty)"
		}
		b := p.Path.Bounds()
		return fmt.Sprintf("path %d commands in (%s, %s, %s, %s)",
			len(p.Path.Commands), num(b.Left), num(b.Top), num(b.Width()), num(b.Height()))
	case Rectangle:
		return fmt.Sprintf("(%s, %s, %s, %s)", num(p.X), num(p.Y), num(p.Width), num(p.Height))
	case Size:
		return fmt.Sprintf("%s × %s", num(p.Width), num(p.Height))
	case Point:
		return fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y))
	case View:
		return fmt.Sprintf("view %s×%s background %s foreground %s",
			num(p.Width), num(p.Height), p.Background.Hex(), p.Foreground.Hex())
	case URL:
		return p.URL
	case Range:
		return fmt.Sprintf("%d..<%d", p.Start, p.End())
	case Sprite:
		if !p.Handle.HasTexture() {
			return fmt.Sprintf("sprite %s (no texture)", p.Handle.Name)
		}
		return "sprite " + p.Handle.Name
	case Sound:
		return fmt.Sprintf("sound %s (%d bytes)", p.Handle.Name, p.Handle.Bytes)
	default:
		return p.Kind().String()
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
