package markup

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// markerLexer splits raw text into marker delimiters and literal runs.
// Rules are tried in order, so `<mark>` wins over the lone `<` fallback.
var (
	markerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "MarkOpen", Pattern: `<mark>`},
		{Name: "MarkClose", Pattern: `</mark>`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Underscore", Pattern: `_`},
		{Name: "Text", Pattern: `[^<*_]+|<`},
	})

	markOpenType   = mustTokenType("MarkOpen")
	markCloseType  = mustTokenType("MarkClose")
	starType       = mustTokenType("Star")
	underscoreType = mustTokenType("Underscore")
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenMarkOpen
	tokenMarkClose
	tokenStar
	tokenUnderscore
)

// token is a lexed piece of the input with its byte offset.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) end() int { return t.offset + len(t.text) }

// tokenize never fails: anything the lexer rejects degrades to one literal token.
func tokenize(s string) []token {
	if s == "" {
		return nil
	}
	lex, err := markerLexer.LexString("", s)
	if err != nil {
		return []token{{kind: tokenText, text: s}}
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return []token{{kind: tokenText, text: s}}
	}
	tokens := make([]token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}
		tokens = append(tokens, token{
			kind:   kindOf(tok.Type),
			text:   tok.Value,
			offset: tok.Pos.Offset,
		})
	}
	return tokens
}

func kindOf(tt lexer.TokenType) tokenKind {
	switch tt {
	case markOpenType:
		return tokenMarkOpen
	case markCloseType:
		return tokenMarkClose
	case starType:
		return tokenStar
	case underscoreType:
		return tokenUnderscore
	default:
		return tokenText
	}
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markerLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
