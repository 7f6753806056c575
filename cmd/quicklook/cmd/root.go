// Package cmd implements the quicklook CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-drift/quicklook/cmd/quicklook/internal/config"
	"github.com/go-drift/quicklook/pkg/errors"
	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/resources"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// session holds what every subcommand needs after flag parsing.
type session struct {
	configPath  string
	resourceDir string
	verbose     bool

	cfg      *config.Resolved
	logger   *zap.Logger
	renderer *preview.Renderer
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:   "quicklook",
		Short: "Truthiness and preview payload playground",
		Long: `quicklook evaluates values for truthiness and renders preview payloads
for a gallery of example values.

Configuration is read from quicklook.yaml in the project root when present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "path to a quicklook.yaml file")
	flags.StringVar(&s.resourceDir, "resources", "", "directory holding images and sounds")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging and stack traces")

	root.AddCommand(
		newTruthyCommand(s),
		newGalleryCommand(s),
		newVersionCommand(),
	)
	return root
}

func (s *session) setup(logOut io.Writer) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	root := config.FindProjectRoot(wd)

	var cfg *config.Config
	if s.configPath != "" {
		cfg, err = config.LoadFile(s.configPath, false)
		root = filepath.Dir(s.configPath)
	} else {
		cfg, err = config.LoadOptional(root)
	}
	if err != nil {
		return err
	}

	resolved, err := cfg.Resolve(root)
	if err != nil {
		return err
	}
	if s.resourceDir != "" {
		resolved.ResourceDir = s.resourceDir
	}
	if s.verbose {
		resolved.Verbose = true
		resolved.LogLevel = zapcore.DebugLevel
	}
	s.cfg = resolved

	s.logger = newLogger(logOut, resolved)
	errors.SetHandler(errors.NewLogHandler(s.logger, resolved.Verbose))

	loader := resources.NewDirLoader(os.DirFS(resolved.ResourceDir),
		resources.WithImageExtensions(resolved.ImageExtensions...),
		resources.WithSoundExtensions(resolved.SoundExtensions...),
		resources.WithLogger(s.logger),
	)
	s.renderer = preview.NewRenderer(loader, preview.WithLogger(s.logger))

	s.logger.Debug("session ready",
		zap.String("name", resolved.Name),
		zap.String("root", resolved.Root),
		zap.String("resources", resolved.ResourceDir))
	return nil
}

// newLogger writes console-encoded entries to w, using the development
// encoder when verbose.
func newLogger(w io.Writer, cfg *config.Resolved) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	if cfg.Verbose {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), cfg.LogLevel)

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Verbose {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(cfg.Name)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quicklook version %s (built %s)\n", Version, BuildTime)
		},
	}
}
