package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/quicklook/pkg/gallery"
	"github.com/go-drift/quicklook/pkg/inspect"
	"github.com/go-drift/quicklook/pkg/preview"
	"github.com/go-drift/quicklook/pkg/resources"
)

// galleryEntry is the serialized form of one rendered sample.
type galleryEntry struct {
	Name    string         `json:"name" yaml:"name"`
	Summary string         `json:"summary" yaml:"summary"`
	Payload inspect.Record `json:"payload" yaml:"payload"`
}

func newGalleryCommand(s *session) *cobra.Command {
	var (
		format    string
		exportDir string
		onlyNames []string
	)
	c := &cobra.Command{
		Use:   "gallery",
		Short: "Render every example value",
		Long: `Render the example value for each preview payload kind and print the
result through the terminal inspector, or as JSON or YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// View size and inset come from configuration.
			preview.RegisterFunc(s.renderer, func(v gallery.ViewExample, _ resources.Loader) preview.Payload {
				view := preview.NewView(s.cfg.ViewSize, v.Background, v.Foreground)
				view.InsetRatio = s.cfg.InsetRatio
				return view
			})

			samples := gallery.Samples()
			if len(onlyNames) > 0 {
				samples = lo.Filter(samples, func(sample gallery.Sample, _ int) bool {
					return lo.Contains(onlyNames, sample.Name)
				})
			}
			rendered := gallery.RenderAll(s.renderer, samples)

			if exportDir != "" {
				if err := exportViews(exportDir, rendered, s.logger); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeText(out, rendered)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(entries(rendered))
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(entries(rendered)); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	c.Flags().StringVar(&exportDir, "export-views", "", "write view payloads as PNG files into this directory")
	c.Flags().StringSliceVar(&onlyNames, "only", nil, "render only the named samples")
	return c
}

func entries(rendered []gallery.Rendered) []galleryEntry {
	return lo.Map(rendered, func(r gallery.Rendered, _ int) galleryEntry {
		return galleryEntry{
			Name:    r.Name,
			Summary: preview.Describe(r.Payload),
			Payload: inspect.Encode(r.Payload),
		}
	})
}

func writeText(w io.Writer, rendered []gallery.Rendered) error {
	term := inspect.NewTerminal(w)
	heading := lipgloss.NewStyle().Bold(true)
	for _, r := range rendered {
		if _, err := fmt.Fprintf(w, "%s  %s\n%s\n\n", heading.Render(r.Name), r.Payload.Kind(), term.Render(r.Payload)); err != nil {
			return err
		}
	}
	return nil
}

func exportViews(dir string, rendered []gallery.Rendered, logger *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, r := range rendered {
		view, ok := r.Payload.(preview.View)
		if !ok {
			continue
		}
		path := filepath.Join(dir, r.Name+".png")
		if err := writePNG(path, inspect.RasterizeView(view)); err != nil {
			return fmt.Errorf("export %s: %w", r.Name, err)
		}
		logger.Info("exported view", zap.String("sample", r.Name), zap.String("path", path))
	}
	return nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
