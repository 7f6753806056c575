package inspect

import (
	"github.com/samber/lo"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
)

// Record is the serializable form of a payload. Keys are stable; "kind"
// is always present.
type Record map[string]any

// Encode converts p to a Record. Opaque handles are reduced to their
// names and dimensions.
func Encode(p preview.Payload) Record {
	if p == nil {
		return Record{"kind": "none"}
	}
	rec := Record{"kind": p.Kind().String()}
	switch p := p.(type) {
	case preview.Text:
		rec["text"] = p.Text
	case preview.StyledText:
		rec["text"] = p.Text
		rec["bold"] = p.Emphasis.IsBold()
		rec["italic"] = p.Emphasis.IsItalic()
		rec["font_size"] = p.FontSize
	case preview.Color:
		rec["color"] = p.Color.Hex()
	case preview.Image:
		sz := p.Handle.Size()
		rec["name"] = p.Handle.Name
		rec["width"] = sz.Width
		rec["height"] = sz.Height
	case preview.VectorPath:
		rec["fill_rule"] = rendering.FillRuleNonZero.String()
		rec["commands"] = []Record{}
		if p.Path != nil {
			rec["fill_rule"] = p.Path.FillRule.String()
			rec["commands"] = lo.Map(p.Path.Commands, func(c rendering.PathCommand, _ int) Record {
				if len(c.Args) == 0 {
					return Record{"op": c.Op.String()}
				}
				return Record{"op": c.Op.String(), "args": c.Args}
			})
		}
	case preview.Rectangle:
		rec["x"], rec["y"] = p.X, p.Y
		rec["width"], rec["height"] = p.Width, p.Height
	case preview.Size:
		rec["width"], rec["height"] = p.Width, p.Height
	case preview.Point:
		rec["x"], rec["y"] = p.X, p.Y
	case preview.View:
		rec["width"], rec["height"] = p.Width, p.Height
		rec["background"] = p.Background.Hex()
		rec["foreground"] = p.Foreground.Hex()
		rec["inset_ratio"] = p.InsetRatio
	case preview.URL:
		rec["url"] = p.URL
	case preview.Range:
		rec["start"], rec["length"] = p.Start, p.Length
	case preview.Sprite:
		rec["name"] = p.Handle.Name
		rec["textured"] = p.Handle.HasTexture()
	case preview.Sound:
		rec["name"] = p.Handle.Name
		rec["path"] = p.Handle.Path
		rec["bytes"] = p.Handle.Bytes
	}
	return rec
}
