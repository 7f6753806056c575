package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	qlerrors "github.com/go-drift/quicklook/pkg/errors"
	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/resources"
)

// FileName is the optional configuration file looked up in the project root.
const FileName = "quicklook.yaml"

// Defaults applied by Resolve.
const (
	DefaultResourceDir = "Resources"
	DefaultViewSize    = 100
	DefaultLogLevel    = "info"
)

// Config represents the optional quicklook.yaml configuration.
type Config struct {
	Name      string          `yaml:"name,omitempty"`
	Resources ResourcesConfig `yaml:"resources"`
	View      ViewConfig      `yaml:"view"`
	Log       LogConfig       `yaml:"log"`
}

// ResourcesConfig locates images and sounds.
type ResourcesConfig struct {
	Dir             string   `yaml:"dir,omitempty"`
	ImageExtensions []string `yaml:"image_extensions,omitempty"`
	SoundExtensions []string `yaml:"sound_extensions,omitempty"`
}

// ViewConfig controls how view payloads are displayed.
type ViewConfig struct {
	Size       float64  `yaml:"size,omitempty"`
	InsetRatio *float64 `yaml:"inset_ratio,omitempty"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	Name            string
	ResourceDir     string
	ImageExtensions []string
	SoundExtensions []string
	ViewSize        float64
	InsetRatio      float64
	LogLevel        zapcore.Level
	Verbose         bool
}

// LoadOptional reads quicklook.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName), true)
}

// LoadFile reads the configuration at path. When optional is true a missing
// file yields an empty Config.
func LoadFile(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("config.LoadFile", fmt.Errorf("failed to read %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.LoadFile", fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return &cfg, nil
}

// Resolve loads quicklook.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve applies defaults relative to the project root dir and validates
// the result.
func (cfg *Config) Resolve(dir string) (*Resolved, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = defaultName(dir)
	}

	resourceDir := strings.TrimSpace(cfg.Resources.Dir)
	if resourceDir == "" {
		resourceDir = DefaultResourceDir
	}
	if !filepath.IsAbs(resourceDir) {
		resourceDir = filepath.Join(dir, resourceDir)
	}

	imageExts := cfg.Resources.ImageExtensions
	if len(imageExts) == 0 {
		imageExts = resources.DefaultImageExtensions
	}
	soundExts := cfg.Resources.SoundExtensions
	if len(soundExts) == 0 {
		soundExts = resources.DefaultSoundExtensions
	}

	viewSize := cfg.View.Size
	if viewSize == 0 {
		viewSize = DefaultViewSize
	}
	if !(viewSize > 0 && !math.IsInf(viewSize, 0)) {
		return nil, configError("config.Resolve", fmt.Errorf("view.size must be a finite positive number (got %g)", viewSize))
	}

	insetRatio := preview.DefaultInsetRatio
	if cfg.View.InsetRatio != nil {
		insetRatio = *cfg.View.InsetRatio
	}
	if !(insetRatio >= 0 && insetRatio < 0.5) {
		return nil, configError("config.Resolve", fmt.Errorf("view.inset_ratio must be in [0, 0.5) (got %g)", insetRatio))
	}

	levelName := strings.TrimSpace(cfg.Log.Level)
	if levelName == "" {
		levelName = DefaultLogLevel
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, configError("config.Resolve", fmt.Errorf("log.level: %w", err))
	}

	return &Resolved{
		Root:            dir,
		Name:            name,
		ResourceDir:     resourceDir,
		ImageExtensions: imageExts,
		SoundExtensions: soundExts,
		ViewSize:        viewSize,
		InsetRatio:      insetRatio,
		LogLevel:        level,
		Verbose:         cfg.Log.Verbose,
	}, nil
}

// FindProjectRoot walks up from start to the nearest directory holding a
// go.mod or quicklook.yaml. It returns start itself when neither is found.
func FindProjectRoot(start string) string {
	dir := start
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// defaultName derives a display name from the module path in go.mod, or
// from the directory name when there is none.
func defaultName(dir string) string {
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "playground"
	}
	return base
}

func configError(op string, err error) error {
	return &qlerrors.LookError{Op: op, Kind: qlerrors.KindConfig, Err: err}
}
