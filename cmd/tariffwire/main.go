// tariffwire converts, validates and describes streaming tariff documents.
//
// Subcommands:
//
//	tariffwire demo    [--fixture path]
//	tariffwire convert --kind K [--from F] --to F [--indent] [file]
//	tariffwire check   --kind K [--from F] [--fail-fast] [--strict] [file]
//	tariffwire schema  --kind K
//
// K is one of request, event, user. F is one of json, yaml, toml, cbor.
// Without a file argument input is read from stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/i18n"
	"github.com/reoring/tariffwire/tariff"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if !errors.Is(err, errIssuesReported) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// usageError marks bad invocations; they exit with status 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }
func (usageError) ExitCode() int   { return 2 }

func usagef(format string, args ...any) error { return usageError{msg: fmt.Sprintf(format, args...)} }

// errIssuesReported is returned by check after the issues were printed.
var errIssuesReported = exitError{code: 1, msg: "document has issues"}

type exitError struct {
	code int
	msg  string
}

func (e exitError) Error() string { return e.msg }
func (e exitError) ExitCode() int { return e.code }

// env is what every subcommand receives.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	global := pflag.NewFlagSet("tariffwire", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	logLevel := global.String("log-level", "warn", "log level: debug, info, warn, error")
	lang := global.String("lang", "en", "issue message language: en, ja")
	global.Usage = func() { usage(stderr, global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError{msg: err.Error()}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return usagef("invalid --log-level %q", *logLevel)
	}
	switch *lang {
	case "en", "ja":
		i18n.SetLanguage(*lang)
	default:
		return usagef("invalid --lang %q", *lang)
	}
	e := env{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr, global)
		return usagef("missing subcommand")
	}
	sub, subArgs := rest[0], rest[1:]
	e.logger.Debug("dispatch", "subcommand", sub, "args", len(subArgs))
	switch sub {
	case "demo":
		return demoCmd(ctx, e, subArgs)
	case "convert":
		return convertCmd(ctx, e, subArgs)
	case "check":
		return checkCmd(ctx, e, subArgs)
	case "schema":
		return schemaCmd(e, subArgs)
	default:
		usage(stderr, global)
		return usagef("unknown subcommand %q", sub)
	}
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `tariffwire: streaming tariff document tool

Usage:
  tariffwire [global flags] demo    [--fixture path]
  tariffwire [global flags] convert --kind K [--from F] --to F [--indent] [file]
  tariffwire [global flags] check   --kind K [--from F] [--fail-fast] [--strict] [file]
  tariffwire [global flags] schema  --kind K

Kinds: request, event, user. Formats: json, yaml, toml, cbor.

Global flags:
`)
	fs.PrintDefaults()
}

func newFlagSet(name string, e env) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, usageError{msg: err.Error()}
	}
	return false, nil
}

// readInput returns the single positional file, or stdin, together with the
// format named by from or inferred from the file extension.
func readInput(e env, fs *pflag.FlagSet, from string) ([]byte, tariffwire.Format, error) {
	var (
		data []byte
		path string
		err  error
	)
	switch fs.NArg() {
	case 0:
		data, err = io.ReadAll(e.stdin)
		if err != nil {
			return nil, 0, fmt.Errorf("reading stdin: %w", err)
		}
	case 1:
		path = fs.Arg(0)
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, 0, fmt.Errorf("reading input: %w", err)
		}
	default:
		return nil, 0, usagef("expected at most one input file, got %d", fs.NArg())
	}
	var f tariffwire.Format
	switch {
	case from != "":
		f, err = tariffwire.ParseFormat(from)
	case path != "":
		f, err = tariffwire.FormatFromPath(path)
	default:
		f = tariffwire.FormatJSON
	}
	if err != nil {
		return nil, 0, usageError{msg: err.Error()}
	}
	e.logger.Info("input loaded", "path", path, "format", f.String(), "bytes", len(data))
	return data, f, nil
}

func convertCmd(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("convert", e)
	kindName := fs.String("kind", "request", "document kind: request, event, user")
	from := fs.String("from", "", "input format (default: from file extension, else json)")
	to := fs.String("to", "", "output format")
	indent := fs.Bool("indent", false, "pretty-print JSON output")
	allowComments := fs.Bool("allow-comments", false, "accept JSONC comments and trailing commas")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	k, err := lookupKind(*kindName)
	if err != nil {
		return err
	}
	if *to == "" {
		return usagef("convert: --to is required")
	}
	out, err := tariffwire.ParseFormat(*to)
	if err != nil {
		return usageError{msg: err.Error()}
	}
	data, in, err := readInput(e, fs, *from)
	if err != nil {
		return err
	}
	opt := tariffwire.DefaultParseOpt()
	opt.AllowComments = *allowComments
	v, err := k.parse(ctx, in, data, opt)
	if err != nil {
		return fmt.Errorf("parse %s: %w", k.name, err)
	}
	b, err := k.render(ctx, out, v, tariffwire.RenderOpt{Indent: *indent})
	if err != nil {
		return fmt.Errorf("render %s: %w", k.name, err)
	}
	e.logger.Debug("converted", "kind", k.name, "from", in.String(), "to", out.String(), "bytes", len(b))
	return writeOutput(e.stdout, b, out)
}

func checkCmd(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("check", e)
	kindName := fs.String("kind", "request", "document kind: request, event, user")
	from := fs.String("from", "", "input format (default: from file extension, else json)")
	failFast := fs.Bool("fail-fast", false, "stop at the first issue")
	strict := fs.Bool("strict", false, "reject unknown keys")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	k, err := lookupKind(*kindName)
	if err != nil {
		return err
	}
	data, in, err := readInput(e, fs, *from)
	if err != nil {
		return err
	}
	opt := tariffwire.DefaultParseOpt()
	opt.FailFast = *failFast
	if *strict {
		opt.UnknownKeys = tariffwire.UnknownStrict
	}
	opt.IssueSink = func(iss tariffwire.Issue) {
		e.logger.Warn("issue", "path", iss.Path, "code", iss.Code)
	}
	_, err = k.parse(ctx, in, data, opt)
	if err == nil {
		fmt.Fprintln(e.stdout, "ok")
		return nil
	}
	iss, ok := tariffwire.AsIssues(err)
	if !ok {
		return err
	}
	for _, it := range iss {
		fmt.Fprintf(e.stdout, "%s\t%s\t%s\n", it.Path, it.Code, it.Message)
	}
	return errIssuesReported
}

func schemaCmd(e env, args []string) error {
	fs := newFlagSet("schema", e)
	kindName := fs.String("kind", "request", "document kind: request, event, user")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	k, err := lookupKind(*kindName)
	if err != nil {
		return err
	}
	doc, err := k.schema()
	if err != nil {
		return fmt.Errorf("schema %s: %w", k.name, err)
	}
	b, err := tariffwire.RenderTree(tariffwire.FormatJSON, doc, tariffwire.RenderOpt{Indent: true})
	if err != nil {
		return fmt.Errorf("schema %s: %w", k.name, err)
	}
	return writeOutput(e.stdout, b, tariffwire.FormatJSON)
}

func writeOutput(w io.Writer, b []byte, f tariffwire.Format) error {
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if f != tariffwire.FormatCBOR && !strings.HasSuffix(string(b), "\n") {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// kind erases the record type behind one document kind.
type kind struct {
	name   string
	parse  func(ctx context.Context, f tariffwire.Format, data []byte, opt tariffwire.ParseOpt) (any, error)
	render func(ctx context.Context, f tariffwire.Format, v any, opt tariffwire.RenderOpt) ([]byte, error)
	schema func() (tariffwire.Object, error)
}

func kindOf[T any](name string, s tariffwire.Schema[T]) kind {
	return kind{
		name: name,
		parse: func(ctx context.Context, f tariffwire.Format, data []byte, opt tariffwire.ParseOpt) (any, error) {
			return tariffwire.ParseFrom(ctx, s, f, data, opt)
		},
		render: func(ctx context.Context, f tariffwire.Format, v any, opt tariffwire.RenderOpt) ([]byte, error) {
			return tariffwire.Render(ctx, s, f, v.(T), opt)
		},
		schema: func() (tariffwire.Object, error) { return tariffwire.JSONSchemaDocument(s) },
	}
}

var kinds = map[string]kind{
	"request": kindOf[tariff.Request]("request", tariff.RequestSchema()),
	"event":   kindOf[tariff.Event]("event", tariff.EventSchema()),
	"user":    kindOf[tariff.User]("user", tariff.UserSchema()),
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[name]
	if !ok {
		return kind{}, usagef("unknown kind %q (want request, event or user)", name)
	}
	return k, nil
}
