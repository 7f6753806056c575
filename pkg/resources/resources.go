// Package resources looks up named images and sounds for preview payloads.
//
// A [Loader] never fails loudly: a missing or undecodable resource is
// reported with ok == false so the caller can substitute a fallback.
// Handles are opaque to the preview core; only display surfaces look inside.
package resources

import (
	"image"

	"github.com/go-drift/quicklook/pkg/rendering"
)

// Loader supplies resources by name.
type Loader interface {
	// Image returns the named image, or ok == false if it cannot be found.
	Image(name string) (img Image, ok bool)
	// Sound returns the named sound, or ok == false if it cannot be found.
	Sound(name string) (snd Sound, ok bool)
	// Sprite returns a sprite for the named image. A missing image yields a
	// sprite with a nil texture rather than a failure.
	Sprite(name string) Sprite
}

// Image is a decoded bitmap.
type Image struct {
	Name   string
	Bitmap image.Image
}

// Size returns the pixel dimensions of the bitmap.
func (i Image) Size() rendering.Size {
	if i.Bitmap == nil {
		return rendering.Size{}
	}
	b := i.Bitmap.Bounds()
	return rendering.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Sound locates an audio asset. The audio data is not decoded.
type Sound struct {
	Name string
	// Path is the location of the asset inside the loader's file system.
	Path string
	// Bytes is the size of the asset in bytes.
	Bytes int64
}

// Sprite is a scene node textured with a named image.
type Sprite struct {
	Name string
	// Texture is nil when the image could not be found.
	Texture *Image
}

// HasTexture reports whether the sprite has a loaded texture.
func (s Sprite) HasTexture() bool {
	return s.Texture != nil
}

// spriteFrom builds a Sprite from an image lookup.
func spriteFrom(l Loader, name string) Sprite {
	if img, ok := l.Image(name); ok {
		return Sprite{Name: name, Texture: &img}
	}
	return Sprite{Name: name}
}
