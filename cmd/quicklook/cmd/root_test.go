package cmd

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/quicklook/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	old := errors.DefaultHandler
	t.Cleanup(func() { errors.SetHandler(old) })

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func resourceDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "swift.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "developers.caf"), make([]byte, 32), 0o644))
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quicklook version "+Version)
}

func TestTruthyDemonstrations(t *testing.T) {
	out, err := run(t, "truthy", "--resources", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "42 is the truth!\nSorry, 0 is not true :(\nopt 2 appears true!\nnon-empty arrays are true!\n", out)
}

func TestTruthyAll(t *testing.T) {
	out, err := run(t, "truthy", "--all", "--resources", t.TempDir())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "opt1         false", lines[2])
	assert.Equal(t, "emptyArray   false", lines[5])
}

func TestTruthyArguments(t *testing.T) {
	out, err := run(t, "truthy", "--resources", t.TempDir(), "--", "-5", "0", "42", "nil", "[]", "[0]")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"-5           true",
		"0            false",
		"42           true",
		"nil          false",
		"[]           false",
		"[0]          true",
	}, "\n")+"\n", out)
}

func TestTruthyUnsupportedArgument(t *testing.T) {
	out, err := run(t, "truthy", "--resources", t.TempDir(), "3.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedType)
	assert.Contains(t, out, "no truthiness rule registered for string")
}

func TestGalleryJSON(t *testing.T) {
	out, err := run(t, "gallery", "--format", "json", "--resources", resourceDir(t))
	require.NoError(t, err)

	var got []galleryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 13)

	byName := map[string]galleryEntry{}
	for _, e := range got {
		byName[e.Name] = e
	}
	assert.Equal(t, "Plain text: Hello", byName["textExample"].Summary)
	assert.Equal(t, "image", byName["imageExample"].Payload["kind"])
	assert.Equal(t, "sound", byName["soundExample"].Payload["kind"])
	assert.Equal(t, true, byName["spriteExample"].Payload["textured"])
	assert.Equal(t, "10..<46", byName["rangeExample"].Summary)
}

func TestGalleryMissingResources(t *testing.T) {
	out, err := run(t, "gallery", "--format", "json", "--resources", t.TempDir(),
		"--only", "imageExample,soundExample,spriteExample")
	require.NoError(t, err)

	var got []galleryEntry
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "Image unavailable :(", got[0].Summary)
	assert.Equal(t, "sprite", got[1].Payload["kind"])
	assert.Equal(t, false, got[1].Payload["textured"])
	assert.Equal(t, "Sound unavailable :(", got[2].Summary)
}

func TestGalleryYAMLUsesViewConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "quicklook.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("view:\n  size: 64\n  inset_ratio: 0.125\n"), 0o644))

	out, err := run(t, "gallery", "--config", cfgPath, "--format", "yaml", "--only", "testView")
	require.NoError(t, err)

	var got []galleryEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 64, got[0].Payload["width"])
	assert.Equal(t, 0.125, got[0].Payload["inset_ratio"])
}

func TestGalleryText(t *testing.T) {
	out, err := run(t, "gallery", "--resources", resourceDir(t), "--only", "textExample,rangeExample")
	require.NoError(t, err)
	assert.Contains(t, out, "textExample")
	assert.Contains(t, out, "Plain text: Hello")
	assert.Contains(t, out, "10..<46 (36 elements)")
}

func TestGalleryExportViews(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "views")
	_, err := run(t, "gallery", "--resources", t.TempDir(), "--only", "testView", "--format", "json",
		"--export-views", exportDir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(exportDir, "testView.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
}

func TestGalleryUnknownFormat(t *testing.T) {
	_, err := run(t, "gallery", "--resources", t.TempDir(), "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, int64(-3), parseValue("-3"))
	assert.Equal(t, []string{}, parseValue("[ ]"))
	assert.Equal(t, []string{"a", "b"}, parseValue("[a,b]"))
	assert.Nil(t, parseValue("nil"))
	assert.Equal(t, "x", parseValue("x"))
}
