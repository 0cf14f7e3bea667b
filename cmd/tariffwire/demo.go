package main

import (
	"context"
	"fmt"
	"os"

	tariffwire "github.com/reoring/tariffwire"
	"github.com/reoring/tariffwire/tariff"
)

// demoCmd renders an Event and reads it back, then loads a request
// document and prints it as JSON, YAML and TOML.
func demoCmd(ctx context.Context, e env, args []string) error {
	fs := newFlagSet("demo", e)
	fixture := fs.String("fixture", "tariff/testdata/request.json", "request document to load")
	if help, err := parseFlags(fs, args); help || err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("demo: unexpected argument %q", fs.Arg(0))
	}

	event := tariff.Event{Name: "Event 1", Date: "2024-11-14"}
	wire, err := tariff.RenderEvent(ctx, tariffwire.FormatJSON, event)
	if err != nil {
		return fmt.Errorf("render event: %w", err)
	}
	fmt.Fprintf(e.stdout, "event json: %s\n", wire)
	back, err := tariff.ParseEvent(ctx, tariffwire.FormatJSON, wire)
	if err != nil {
		return fmt.Errorf("parse event: %w", err)
	}
	fmt.Fprintf(e.stdout, "event back: %+v\n", back)

	data, err := os.ReadFile(*fixture)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	f, err := tariffwire.FormatFromPath(*fixture)
	if err != nil {
		return usageError{msg: err.Error()}
	}
	req, err := tariff.ParseRequest(ctx, f, data)
	if err != nil {
		return fmt.Errorf("parse request: %w", err)
	}
	e.logger.Info("request loaded", "type", req.Type.String(), "gifts", len(req.Gifts))

	for _, out := range []struct {
		title string
		f     tariffwire.Format
	}{
		{"json", tariffwire.FormatJSON},
		{"yaml", tariffwire.FormatYAML},
		{"toml", tariffwire.FormatTOML},
	} {
		b, err := tariff.RenderRequest(ctx, out.f, req, tariffwire.RenderOpt{Indent: true})
		if err != nil {
			return fmt.Errorf("render request as %s: %w", out.title, err)
		}
		fmt.Fprintf(e.stdout, "--- %s\n", out.title)
		if err := writeOutput(e.stdout, b, out.f); err != nil {
			return err
		}
	}
	return nil
}
