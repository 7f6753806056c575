package preview

import (
	"github.com/go-drift/quicklook/pkg/errors"
	"github.com/go-drift/quicklook/pkg/resources"
)

// Fallback texts for resources the loader cannot supply.
const (
	ImageUnavailable = "Image unavailable :("
	SoundUnavailable = "Sound unavailable :("
)

// ImageFor returns an Image payload for the named image, or a Text payload
// reading ImageUnavailable when the loader cannot find it.
func ImageFor(res resources.Loader, name string) Payload {
	if res != nil {
		if img, ok := res.Image(name); ok {
			return Image{Handle: img}
		}
	}
	reportMissing("preview.ImageFor", "image", name)
	return Text{Text: ImageUnavailable}
}

// SoundFor returns a Sound payload for the named sound, or a Text payload
// reading SoundUnavailable when the loader cannot find it.
func SoundFor(res resources.Loader, name string) Payload {
	if res != nil {
		if snd, ok := res.Sound(name); ok {
			return Sound{Handle: snd}
		}
	}
	reportMissing("preview.SoundFor", "sound", name)
	return Text{Text: SoundUnavailable}
}

// SpriteFor returns a Sprite payload. Sprites have no fallback: a missing
// image yields a sprite without a texture.
func SpriteFor(res resources.Loader, name string) Payload {
	if res == nil {
		return Sprite{Handle: resources.Sprite{Name: name}}
	}
	return Sprite{Handle: res.Sprite(name)}
}

func reportMissing(op, resource, name string) {
	errors.Report(&errors.LookError{
		Op:       op,
		Kind:     errors.KindResourceUnavailable,
		Resource: name,
		Err:      &errors.ResourceError{Resource: resource, Name: name},
	})
}
