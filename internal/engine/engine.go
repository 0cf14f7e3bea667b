package engine

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// Kind represents token kinds from a JSON source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
}

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// ErrSyntax is returned when the document is not a single well-formed JSON
// value and the validating decode gives no better description.
var ErrSyntax = errors.New("engine: malformed JSON")

// source tokenizes JSON with go-json, telling object keys apart from string
// values. go-json's Decoder.Token does not check commas or colons, so the
// whole document is validated before the first token is handed out.
type source struct {
	r     io.Reader
	raw   []byte
	ready bool
	err   error
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into a TokenSource backed by go-json. The
// reader is consumed in full on the first NextToken call.
func NewReader(r io.Reader) TokenSource { return &source{r: r} }

// NewBytes wraps a byte slice into a TokenSource backed by go-json.
func NewBytes(b []byte) TokenSource { return &source{raw: b} }

func (s *source) prepare() error {
	if s.ready {
		return s.err
	}
	s.ready = true
	if s.r != nil {
		b, err := io.ReadAll(s.r)
		if err != nil {
			s.err = err
			return err
		}
		s.raw = b
	}
	if !j.Valid(s.raw) {
		s.err = syntaxError(s.raw)
		return s.err
	}
	s.dec = j.NewDecoder(bytes.NewReader(s.raw))
	s.dec.UseNumber()
	return nil
}

// syntaxError asks the full decoder for a positioned error.
func syntaxError(raw []byte) error {
	var v any
	if err := j.Unmarshal(raw, &v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return ErrSyntax
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) NextToken() (Token, error) {
	if err := s.prepare(); err != nil {
		return Token{}, err
	}
	tok, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray}, nil
		case '}', ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			if v == '}' {
				return Token{Kind: KindEndObject}, nil
			}
			return Token{Kind: KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v}, nil
			}
		}
		s.valueDone()
		return Token{Kind: KindString, String: v}, nil
	case bool:
		s.valueDone()
		return Token{Kind: KindBool, Bool: v}, nil
	case j.Number:
		s.valueDone()
		return Token{Kind: KindNumber, Number: string(v)}, nil
	case float64:
		s.valueDone()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	}
	s.valueDone()
	return Token{Kind: KindNull}, nil
}

// Scan drains src through the enforcement wrapper. It returns nil when the
// document passes, an IssueError for the first fatal issue, or the syntax
// error of a malformed document. Syntax is checked before any issue is
// reported.
func Scan(src TokenSource, opt EnforceOptions) error {
	es := WrapWithEnforcement(src, opt)
	for {
		_, err := es.NextToken()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
