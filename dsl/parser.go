package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "String", Pattern: "\"(?:\\\\.|[^\"\\\\])*\"|`[^`]*`"},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[+]`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Newline", "LineComment", "HashComment"),
	)
)

// Script is the root AST node of an item script: a flat list of
// statements replayed in order against a drag-and-drop session.
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

// Statement is one editing step.
type Statement struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Exhibit *Text          `parser:"  'exhibit' @@"`
	Option  *Text          `parser:"| 'option' @@"`
	Select  *Select        `parser:"| 'select' @@"`
	Reset   bool           `parser:"| @'reset'"`
	Output  *Text          `parser:"| 'output' @@"`
}

// Kind returns the statement keyword.
func (s *Statement) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Exhibit != nil:
		return "exhibit"
	case s.Option != nil:
		return "option"
	case s.Select != nil:
		return "select"
	case s.Reset:
		return "reset"
	case s.Output != nil:
		return "output"
	default:
		return "unknown"
	}
}

// Text is one or more string literals joined with '+'.
type Text struct {
	Parts []*StringPart `parser:"@@ ( '+' @@ )*"`
}

// String concatenates all parts.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range t.Parts {
		b.WriteString(string(p.Value))
	}
	return b.String()
}

// Map returns the concatenation after applying fn to every part.
func (t *Text) Map(fn func(string) string) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range t.Parts {
		b.WriteString(fn(string(p.Value)))
	}
	return b.String()
}

// StringPart wraps a single literal so it can appear in a '+' chain.
type StringPart struct {
	Value StringLiteral `parser:"@String"`
}

// Select marks exhibit text as a target, either by content or by position.
type Select struct {
	Match *Match `parser:"  @@"`
	Span  *Span  `parser:"| @@"`
}

// Match selects the n-th occurrence (1 when omitted) of some text.
type Match struct {
	Text       *Text `parser:"@@"`
	Occurrence int   `parser:"@Number?"`
}

// Nth returns the 1-based occurrence to select.
func (m *Match) Nth() int {
	if m.Occurrence < 1 {
		return 1
	}
	return m.Occurrence
}

// Span selects columns [Start, End) of a single 1-based line.
type Span struct {
	Line  int `parser:"@Number"`
	Start int `parser:"@Number"`
	End   int `parser:"@Number"`
}

// StringLiteral unquotes Go-style strings on capture. Back-quoted strings are
// kept verbatim, newlines included.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses an item script from an io.Reader. filename is used in error
// positions only.
func Parse(filename string, r io.Reader) (*Script, error) {
	return scriptParser.Parse(filename, r)
}

// ParseString parses an item script from a string.
func ParseString(input string) (*Script, error) {
	return scriptParser.ParseString("", input)
}
