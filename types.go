package tariffwire

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys.
	UnknownStrict                      // Reject unknown keys with an error.
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 disables the nesting check.
	MaxBytes   int64 // 0 disables the size check.
	FailFast   bool
	// AllowComments strips JSONC comments and trailing commas before decoding
	// JSON input. Other formats ignore it.
	AllowComments bool
	// UnknownKeys overrides the unknown-key policy of every object schema that
	// did not pin its own.
	UnknownKeys UnknownPolicy
	// IssueSink receives non-fatal issues (duplicate keys under Warn).
	IssueSink func(Issue)
}

// DefaultParseOpt is used when ParseFrom receives no options: duplicate keys
// are errors and nesting is capped at 64 levels.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{
		Strictness: Strictness{OnDuplicateKey: Error},
		MaxDepth:   64,
	}
}

// RenderOpt bundles rendering options.
type RenderOpt struct {
	Indent bool // Pretty-print JSON output with two-space indentation.
}

func lastParseOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return DefaultParseOpt()
	}
	return opts[len(opts)-1]
}

func lastRenderOpt(opts []RenderOpt) RenderOpt {
	if len(opts) == 0 {
		return RenderOpt{}
	}
	return opts[len(opts)-1]
}
