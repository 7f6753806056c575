package resources

import (
	"bytes"
	"image"
	"io/fs"
	"path"
	"strings"
	"sync"

	// Register decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Default extensions, tried in order.
var (
	DefaultImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff", "webp"}
	DefaultSoundExtensions = []string{"caf", "wav", "mp3"}
)

// DirLoader loads resources from a file system. Decoded images are cached
// by name, including misses.
//
// A DirLoader is safe for concurrent use.
type DirLoader struct {
	fsys            fs.FS
	imageExtensions []string
	soundExtensions []string
	logger          *zap.Logger

	mu     sync.RWMutex
	images map[string]*Image // nil entry records a miss
}

// DirOption configures a DirLoader.
type DirOption func(*DirLoader)

// WithImageExtensions sets the extensions tried for image names.
func WithImageExtensions(exts ...string) DirOption {
	return func(l *DirLoader) { l.imageExtensions = normalizeExtensions(exts) }
}

// WithSoundExtensions sets the extensions tried for sound names.
func WithSoundExtensions(exts ...string) DirOption {
	return func(l *DirLoader) { l.soundExtensions = normalizeExtensions(exts) }
}

// WithLogger sets the logger used for decode failures.
func WithLogger(logger *zap.Logger) DirOption {
	return func(l *DirLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewDirLoader returns a loader reading from fsys.
func NewDirLoader(fsys fs.FS, opts ...DirOption) *DirLoader {
	l := &DirLoader{
		fsys:            fsys,
		imageExtensions: DefaultImageExtensions,
		soundExtensions: DefaultSoundExtensions,
		logger:          zap.NewNop(),
		images:          make(map[string]*Image),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Image implements Loader.
func (l *DirLoader) Image(name string) (Image, bool) {
	l.mu.RLock()
	cached, seen := l.images[name]
	l.mu.RUnlock()
	if seen {
		if cached == nil {
			return Image{}, false
		}
		return *cached, true
	}

	img := l.decodeImage(name)

	l.mu.Lock()
	l.images[name] = img
	l.mu.Unlock()

	if img == nil {
		return Image{}, false
	}
	return *img, true
}

func (l *DirLoader) decodeImage(name string) *Image {
	p, ok := l.find(name, l.imageExtensions)
	if !ok {
		return nil
	}
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		l.logger.Debug("read image", zap.String("path", p), zap.Error(err))
		return nil
	}
	bitmap, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.logger.Warn("decode image", zap.String("path", p), zap.Error(err))
		return nil
	}
	l.logger.Debug("loaded image",
		zap.String("path", p),
		zap.String("format", format),
		zap.Int("width", bitmap.Bounds().Dx()),
		zap.Int("height", bitmap.Bounds().Dy()))
	return &Image{Name: name, Bitmap: bitmap}
}

// Sound implements Loader.
func (l *DirLoader) Sound(name string) (Sound, bool) {
	p, ok := l.find(name, l.soundExtensions)
	if !ok {
		return Sound{}, false
	}
	info, err := fs.Stat(l.fsys, p)
	if err != nil || info.IsDir() {
		return Sound{}, false
	}
	return Sound{Name: name, Path: p, Bytes: info.Size()}, true
}

// Sprite implements Loader.
func (l *DirLoader) Sprite(name string) Sprite {
	return spriteFrom(l, name)
}

// find returns the first existing file for name. A name that already has
// one of the extensions is tried as-is first.
func (l *DirLoader) find(name string, exts []string) (string, bool) {
	if l.fsys == nil || name == "" || !fs.ValidPath(name) {
		return "", false
	}
	candidates := make([]string, 0, len(exts)+1)
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext != "" && lo.ContainsBy(exts, func(e string) bool { return strings.EqualFold(e, ext) }) {
		candidates = append(candidates, name)
	}
	for _, ext := range exts {
		candidates = append(candidates, name+"."+ext)
	}
	for _, c := range candidates {
		info, err := fs.Stat(l.fsys, c)
		if err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

func normalizeExtensions(exts []string) []string {
	return lo.FilterMap(exts, func(e string, _ int) (string, bool) {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		return e, e != ""
	})
}
