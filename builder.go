package browserdetails

import "strings"

const (
	// SentinelParam is the hidden form field rewritten by client-side script.
	SentinelParam = "utf8"
	// SentinelValue is the value rendered by the server. Receiving it back
	// unchanged means the script did not run.
	SentinelValue = "✓"
)

// Scripting describes what the request reveals about client-side scripting.
type Scripting int

const (
	ScriptingUnknown Scripting = iota
	ScriptingEnabled
	ScriptingDisabled
)

// String returns the message fragment for the status, empty for ScriptingUnknown.
func (s Scripting) String() string {
	switch s {
	case ScriptingEnabled:
		return "JS enabled"
	case ScriptingDisabled:
		return "JS disabled"
	default:
		return ""
	}
}

// Details is the structured result of inspecting a request.
// Agent is nil when the request carried no usable User-Agent.
type Details struct {
	Agent     *Agent
	Scripting Scripting
}

// Empty reports whether there is nothing worth logging.
func (d Details) Empty() bool {
	return d.Agent == nil && d.Scripting == ScriptingUnknown
}

// BrowserFragment renders "Browser [Mobile] Version (Platform, OS)".
func (d Details) BrowserFragment() string {
	if d.Agent == nil {
		return ""
	}

	tokens := make([]string, 0, 4)
	tokens = append(tokens, d.Agent.Browser)
	if d.Agent.Mobile {
		tokens = append(tokens, "Mobile")
	}
	tokens = append(tokens, d.Agent.Version)
	tokens = append(tokens, "("+d.Agent.Platform+", "+d.Agent.OS+")")

	return strings.Join(tokens, " ")
}

// String joins the present fragments with ", ", browser first.
func (d Details) String() string {
	fragments := make([]string, 0, 2)
	if d.Agent != nil {
		fragments = append(fragments, d.BrowserFragment())
	}
	if d.Scripting != ScriptingUnknown {
		fragments = append(fragments, d.Scripting.String())
	}
	return strings.Join(fragments, ", ")
}

// Builder derives Details from request snapshots. The zero value is not
// usable; create one with NewBuilder.
type Builder struct {
	parse Parser
}

// NewBuilder returns a Builder using parse, or UserAgentParser if parse is nil.
func NewBuilder(parse Parser) *Builder {
	if parse == nil {
		parse = UserAgentParser
	}
	return &Builder{parse: parse}
}

// Build returns the descriptive message for the snapshot, or "" if there is
// nothing to report.
func (b *Builder) Build(s Snapshot) string {
	return b.Describe(s).String()
}

// Describe inspects the snapshot. It never fails and has no side effects.
func (b *Builder) Describe(s Snapshot) Details {
	return Details{
		Agent:     b.agent(s.UserAgent),
		Scripting: scripting(s),
	}
}

// agent parses ua, treating parser errors and panics as an absent fragment.
func (b *Builder) agent(ua string) (agent *Agent) {
	if ua == "" {
		return nil
	}

	defer func() {
		if recover() != nil {
			agent = nil
		}
	}()

	parsed, err := b.parse(ua)
	if err != nil {
		return nil
	}
	return &parsed
}

func scripting(s Snapshot) Scripting {
	sentinel, ok := s.Param(SentinelParam)
	switch {
	case ok && sentinel == SentinelValue:
		return ScriptingDisabled
	case ok && sentinel != "", s.Ajax:
		return ScriptingEnabled
	default:
		return ScriptingUnknown
	}
}

var defaultBuilder = NewBuilder(nil)

// Message builds the descriptive message using the default parser.
func Message(s Snapshot) string {
	return defaultBuilder.Build(s)
}
