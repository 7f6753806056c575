package resources

import (
	"image"
	"sync"
)

// MapLoader is an in-memory Loader. The zero value is empty and ready to use.
type MapLoader struct {
	mu     sync.RWMutex
	images map[string]image.Image
	sounds map[string]Sound
}

// NewMapLoader returns an empty MapLoader.
func NewMapLoader() *MapLoader {
	return &MapLoader{}
}

// AddImage registers a bitmap under name.
func (m *MapLoader) AddImage(name string, img image.Image) *MapLoader {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.images == nil {
		m.images = make(map[string]image.Image)
	}
	m.images[name] = img
	return m
}

// AddSound registers a sound under name.
func (m *MapLoader) AddSound(name string, bytes int64) *MapLoader {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sounds == nil {
		m.sounds = make(map[string]Sound)
	}
	m.sounds[name] = Sound{Name: name, Path: name, Bytes: bytes}
	return m
}

// Image implements Loader.
func (m *MapLoader) Image(name string) (Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[name]
	if !ok {
		return Image{}, false
	}
	return Image{Name: name, Bitmap: img}, true
}

// Sound implements Loader.
func (m *MapLoader) Sound(name string) (Sound, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snd, ok := m.sounds[name]
	return snd, ok
}

// Sprite implements Loader.
func (m *MapLoader) Sprite(name string) Sprite {
	return spriteFrom(m, name)
}
