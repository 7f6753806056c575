package inspect

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/rendering"
)

// RasterizeView draws v: its bounds filled with the background color, then
// the inset square filled with the foreground color.
func RasterizeView(v preview.View) *image.RGBA {
	bg, fg := v.Layout()
	img := image.NewRGBA(toImageRect(bg))
	draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(v.Background)), image.Point{}, draw.Src)
	if !fg.IsEmpty() {
		draw.Draw(img, toImageRect(fg), image.NewUniform(toNRGBA(v.Foreground)), image.Point{}, draw.Src)
	}
	return img
}

func toImageRect(r rendering.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

func toNRGBA(c rendering.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

func fromColor(c color.Color) rendering.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rendering.RGBA(n.R, n.G, n.B, n.A)
}
