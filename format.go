package tariffwire

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a textual (or binary) representation of the wire tree.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat resolves a format name (json, yaml, yml, toml, cbor).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("tariffwire: unknown format %q", name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("tariffwire: cannot infer format of %q", path)
	}
	return ParseFormat(ext)
}
