package tariffwire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	eng "github.com/reoring/tariffwire/internal/engine"
)

var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		// Wire trees only ever carry string keys; any-typed targets must
		// become map[string]any like the other formats.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		DupMapKey:      cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("tariffwire: CBOR decoder initialization failed: " + err.Error())
	}
}

// decodeTree turns raw bytes of the given format into a wire tree
// (map[string]any, []any, string, bool, numbers, nil).
func decodeTree(f Format, data []byte, opt ParseOpt) (any, Issues) {
	var (
		v   any
		iss Issues
	)
	switch f {
	case FormatJSON:
		v, iss = decodeJSON(data, opt)
	case FormatYAML:
		v, iss = decodeYAML(data)
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, syntaxIssues(f, err)
		}
		v = m
	case FormatCBOR:
		if err := cborDecMode.Unmarshal(data, &v); err != nil {
			var dup *cbor.DupMapKeyError
			if errors.As(err, &dup) {
				return nil, Issues{{Path: "/", Code: CodeDuplicateKey, Message: err.Error(), Cause: err}}
			}
			return nil, syntaxIssues(f, err)
		}
	default:
		return nil, singleIssue(CodeParseError, "unsupported format "+f.String())
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if opt.MaxDepth > 0 && f != FormatJSON {
		if p, ok := exceedsDepth(v, Root(), 0, opt.MaxDepth); ok {
			return nil, Issues{{Path: p.Pointer(), Code: CodeParseError, Message: "max depth exceeded"}}
		}
	}
	return v, nil
}

func decodeJSON(data []byte, opt ParseOpt) (any, Issues) {
	if opt.AllowComments {
		data = jsonc.ToJSON(data)
	}
	if opt.Strictness.OnDuplicateKey != Ignore || opt.MaxDepth > 0 {
		err := eng.Scan(eng.NewBytes(data), eng.EnforceOptions{
			OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
			MaxDepth:    opt.MaxDepth,
			FailFast:    opt.FailFast,
			IssueSink:   forwardSink(opt.IssueSink),
		})
		if err != nil {
			var ie eng.IssueError
			if errors.As(err, &ie) {
				return nil, Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message}}
			}
			return nil, syntaxIssues(FormatJSON, err)
		}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, singleIssue(CodeParseError, "empty document")
		}
		return nil, syntaxIssues(FormatJSON, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, singleIssue(CodeParseError, "unexpected data after top-level value")
	}
	return v, nil
}

func decodeYAML(data []byte) (any, Issues) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, singleIssue(CodeParseError, "empty document")
		}
		return nil, syntaxIssues(FormatYAML, err)
	}
	return yamlNormalizeValue(node), nil
}

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

func exceedsDepth(v any, at PathRef, depth, limit int) (PathRef, bool) {
	switch t := v.(type) {
	case map[string]any:
		if depth+1 > limit {
			return at, true
		}
		for k, vv := range t {
			if p, ok := exceedsDepth(vv, at.Field(k), depth+1, limit); ok {
				return p, true
			}
		}
	case []any:
		if depth+1 > limit {
			return at, true
		}
		for i, vv := range t {
			if p, ok := exceedsDepth(vv, at.Index(i), depth+1, limit); ok {
				return p, true
			}
		}
	}
	return nil, false
}

func syntaxIssues(f Format, err error) Issues {
	return Issues{{Path: "/", Code: CodeParseError, Message: f.String() + ": " + err.Error(), Cause: err}}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func forwardSink(sink func(Issue)) func(eng.SimpleIssue) {
	if sink == nil {
		return nil
	}
	return func(si eng.SimpleIssue) {
		sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
	}
}
