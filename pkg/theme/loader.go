package theme

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/glacier-ui/glacier/pkg/errors"
	"github.com/glacier-ui/glacier/pkg/graphics"
)

// schemaRange is the palette file schema this loader understands. Files
// declaring a newer major version are rejected.
const schemaRange = "v1"

type paletteFile struct {
	SchemaVersion string `yaml:"schemaVersion"`
	Name          string `yaml:"name"`
	Palette       struct {
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Primary    string `yaml:"primary"`
		Success    string `yaml:"success"`
		Danger     string `yaml:"danger"`
	} `yaml:"palette"`
}

// LoadFile reads a theme palette from a YAML file.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, &errors.Error{Op: "theme.LoadFile", Kind: errors.KindTheme, Err: err}
	}
	defer f.Close()
	return Load(f)
}

// Load reads a theme palette from YAML. Missing colors fall back to the
// light palette.
func Load(r io.Reader) (Theme, error) {
	const op = "theme.Load"

	data, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, &errors.Error{Op: op, Kind: errors.KindTheme, Err: err}
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, &errors.Error{Op: op, Kind: errors.KindTheme, Err: err}
	}

	version := file.SchemaVersion
	if version == "" {
		version = "v1"
	}
	if !semver.IsValid(version) {
		return Theme{}, &errors.Error{
			Op:   op,
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("invalid schemaVersion %q", file.SchemaVersion),
		}
	}
	if semver.Major(version) != schemaRange {
		return Theme{}, &errors.Error{
			Op:   op,
			Kind: errors.KindTheme,
			Err:  fmt.Errorf("unsupported schemaVersion %s, want %s.x", version, schemaRange),
		}
	}

	theme := Light
	if file.Name != "" {
		theme.Name = file.Name
	}

	fields := []struct {
		value string
		dst   *graphics.Color
	}{
		{file.Palette.Background, &theme.Palette.Background},
		{file.Palette.Text, &theme.Palette.Text},
		{file.Palette.Primary, &theme.Palette.Primary},
		{file.Palette.Success, &theme.Palette.Success},
		{file.Palette.Danger, &theme.Palette.Danger},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		color, err := parseColor(field.value)
		if err != nil {
			return Theme{}, &errors.Error{Op: op, Kind: errors.KindTheme, Err: err}
		}
		*field.dst = color
	}

	return theme, nil
}

// parseColor parses "#RRGGBB" or "#AARRGGBB".
func parseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, stderrors.New("color must start with '#': " + s)
	}

	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(uint32(v)), nil
	default:
		return 0, stderrors.New("color must be #RRGGBB or #AARRGGBB: " + s)
	}
}
