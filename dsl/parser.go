package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	deckLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:px|pt|%)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "RawString", Pattern: "`[^`]*`"},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][:;,]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	deckParser = participle.MustBuild[Deck](
		participle.Lexer(deckLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Deck is the root AST node of a deck file:
//
//	deck Launch v1 {
//	  defaults { palette: [#FFE45C, #9EE6FF] }
//	  slide title { title: "Ship <mark>faster</mark>" }
//	}
type Deck struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'deck' @Ident"`
	Version  string         `parser:"@Ident?"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is one top-level section of a deck (meta/defaults/slide).
type Section struct {
	Meta     *MetaSection     `parser:"  @@"`
	Defaults *DefaultsSection `parser:"| @@"`
	Slide    *SlideSection    `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Meta != nil:
		return "meta"
	case s.Defaults != nil:
		return "defaults"
	case s.Slide != nil:
		return "slide"
	default:
		return "unknown"
	}
}

// MetaSection carries document metadata (title, author, ...).
type MetaSection struct {
	Block *Block `parser:"'meta' @@"`
}

// DefaultsSection holds deck-wide settings every slide inherits.
type DefaultsSection struct {
	Block *Block `parser:"'defaults' @@"`
}

// SlideSection is one slide; Kind picks the recipe (title, text, quote).
type SlideSection struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Kind  string         `parser:"'slide' @Ident"`
	Block *Block         `parser:"@@"`
}

// Block is a braced list of assignments.
type Block struct {
	Assignments []*Assignment `parser:"'{' Newline* ( @@ ( ';' | ',' | Newline )* )* '}'"`
}

// Lookup returns the last assignment to key, or nil.
func (b *Block) Lookup(key string) *Value {
	if b == nil {
		return nil
	}
	var out *Value
	for _, a := range b.Assignments {
		if a.Key == key {
			out = a.Value
		}
	}
	return out
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value is a property value. Identifiers cover keywords such as true,
// false, center.
type Value struct {
	String *StringLiteral `parser:"  @(String | RawString)"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Array  *ArrayValue    `parser:"| @@"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the value as written, strings unquoted. Arrays yield "".
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Strings flattens an array value; a scalar becomes a one-element list.
func (v *Value) Strings() []string {
	if v == nil {
		return nil
	}
	if v.Array == nil {
		if s := v.Text(); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(v.Array.Values))
	for _, item := range v.Array.Values {
		if s := item.Text(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ArrayValue captures `[ ... ]` lists.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// StringLiteral unquotes Go-style strings on capture, raw strings included.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return fmt.Errorf("无法解析字符串 %s: %w", values[0], err)
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a deck from an io.Reader.
func Parse(r io.Reader) (*Deck, error) {
	return deckParser.Parse("", r)
}

// ParseString parses a deck from a string.
func ParseString(input string) (*Deck, error) {
	return deckParser.ParseString("", input)
}
