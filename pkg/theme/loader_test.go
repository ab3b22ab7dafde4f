package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glacier-ui/glacier/pkg/errors"
	"github.com/glacier-ui/glacier/pkg/graphics"
)

// TestLoad_FullPalette verifies parsing a complete palette file.
func TestLoad_FullPalette(t *testing.T) {
	src := `
schemaVersion: v1.2.0
name: nord
palette:
  background: "#2e3440"
  text: "#d8dee9"
  primary: "#88c0d0"
  success: "#a3be8c"
  danger: "#bf616a"
`

	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Theme{
		Name: "nord",
		Palette: Palette{
			Background: graphics.Color(0xFF2E3440),
			Text:       graphics.Color(0xFFD8DEE9),
			Primary:    graphics.Color(0xFF88C0D0),
			Success:    graphics.Color(0xFFA3BE8C),
			Danger:     graphics.Color(0xFFBF616A),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded theme mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_MissingColorsFallBackToLight verifies partial palettes inherit the
// light theme colors.
func TestLoad_MissingColorsFallBackToLight(t *testing.T) {
	src := `
schemaVersion: v1.0.0
name: tinted
palette:
  background: "#101010"
`

	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Light
	want.Name = "tinted"
	want.Palette.Background = graphics.Color(0xFF101010)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded theme mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_SchemaVersionDefaultsToCurrent verifies files without a version
// load as the current schema.
func TestLoad_SchemaVersionDefaultsToCurrent(t *testing.T) {
	src := `
name: bare
`

	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "bare" {
		t.Errorf("name = %q, want bare", got.Name)
	}
	if diff := cmp.Diff(Light.Palette, got.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}
}

// TestLoad_InvalidSchemaVersion verifies rejection of malformed versions.
func TestLoad_InvalidSchemaVersion(t *testing.T) {
	src := `
schemaVersion: "1.2"
`

	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("Load() should reject a version without the v prefix")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindTheme {
		t.Errorf("error = %v, want kind theme", err)
	}
}

// TestLoad_UnsupportedMajorVersion verifies rejection of newer schemas.
func TestLoad_UnsupportedMajorVersion(t *testing.T) {
	src := `
schemaVersion: v2.0.0
`

	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Error("Load() should reject a v2 palette file")
	}
}

// TestLoad_BadColor verifies color validation.
func TestLoad_BadColor(t *testing.T) {
	cases := []string{"red", "#12345", "#ggg000"}

	for _, color := range cases {
		src := "palette:\n  text: \"" + color + "\"\n"
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Errorf("Load() accepted color %q", color)
		}
	}
}

// TestLoad_ColorWithAlpha verifies the eight-digit form keeps its alpha.
func TestLoad_ColorWithAlpha(t *testing.T) {
	src := `
palette:
  primary: "#80FF0000"
`

	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Palette.Primary != graphics.Color(0x80FF0000) {
		t.Errorf("primary = %#x, want 0x80FF0000", uint32(got.Palette.Primary))
	}
}

// TestLoadFile verifies the file path entry point.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	src := "schemaVersion: v1.0.0\nname: disk\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got.Name != "disk" {
		t.Errorf("name = %q, want disk", got.Name)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}
