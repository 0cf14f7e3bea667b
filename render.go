package tariffwire

import (
	"bytes"
	"context"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var cborEncMode cbor.EncMode

func init() {
	var err error
	// Core Deterministic Encoding: same record, same bytes.
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("tariffwire: CBOR encoder initialization failed: " + err.Error())
	}
}

// Render encodes v through the schema and serializes the wire tree in the
// given format.
func Render[T any](ctx context.Context, s Schema[T], f Format, v T, opts ...RenderOpt) ([]byte, error) {
	if s == nil {
		return nil, singleIssue(CodeParseError, "nil schema")
	}
	tree, err := s.Encode(ctx, v)
	if err != nil {
		return nil, ToIssues("/", err)
	}
	return RenderTree(f, tree, opts...)
}

// RenderTree serializes an already encoded wire tree.
func RenderTree(f Format, tree any, opts ...RenderOpt) ([]byte, error) {
	opt := lastRenderOpt(opts)
	switch f {
	case FormatJSON:
		b, err := json.Marshal(tree)
		if err != nil {
			return nil, err
		}
		if !opt.Indent {
			return b, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(Plain(tree))
	case FormatCBOR:
		return cborEncMode.Marshal(Plain(tree))
	default:
		return nil, singleIssue(CodeParseError, "unsupported format "+f.String())
	}
}
