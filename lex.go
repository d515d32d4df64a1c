package minivac

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// token is one lexical element of an input line. Tokens are immutable once
// produced.
type token struct {
	text  string
	kind  tokenKind
	prec  int8
	arity arity
	pos   int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is an unsigned integer or decimal literal.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenOpen and tokenClose are the round brackets.
	tokenOpen
	tokenClose
	// Operator tokens.
	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	tokenFact
	tokenPow
	// tokenSci is the scientific-notation marker E.
	tokenSci
	// tokenCall is an identifier naming a stored callable.
	tokenCall
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenAdd:
		return "Add"
	case tokenSub:
		return "Sub"
	case tokenMul:
		return "Mul"
	case tokenDiv:
		return "Div"
	case tokenFact:
		return "Fact"
	case tokenPow:
		return "Pow"
	case tokenSci:
		return "Sci"
	case tokenCall:
		return "Call"
	default:
		return "tokenKind(" + string(rune('0'+k)) + ")"
	}
}

// arity distinguishes the postfix factorial from the binary operators.
type arity int8

const (
	arityNone arity = iota
	arityUnary
	arityBinary
)

// Operator precedences. Higher binds tighter.
const (
	precCall int8 = 110
	precFact int8 = 100
	precPow  int8 = 90
	precSci  int8 = 90
	precDiv  int8 = 80
	precMul  int8 = 70
	precAdd  int8 = 60
	precSub  int8 = 50
)

type matcher struct {
	re    *regexp.Regexp
	kind  tokenKind
	prec  int8
	arity arity
}

// matchers is tried in order against the front of the remaining input and
// the first match wins, so the order carries meaning: numbers before
// identifiers, and so on.
var matchers = []matcher{
	{regexp.MustCompile(`^\d+(\.\d+)?`), tokenNum, 0, arityNone},
	{regexp.MustCompile(`^[a-z]+`), tokenIdent, 0, arityNone},
	{regexp.MustCompile(`^\(`), tokenOpen, 0, arityNone},
	{regexp.MustCompile(`^\)`), tokenClose, 0, arityNone},
	{regexp.MustCompile(`^\+`), tokenAdd, precAdd, arityBinary},
	{regexp.MustCompile(`^-`), tokenSub, precSub, arityBinary},
	{regexp.MustCompile(`^\*`), tokenMul, precMul, arityBinary},
	{regexp.MustCompile(`^/`), tokenDiv, precDiv, arityBinary},
	{regexp.MustCompile(`^!`), tokenFact, precFact, arityUnary},
	{regexp.MustCompile(`^\^`), tokenPow, precPow, arityBinary},
	{regexp.MustCompile(`^E`), tokenSci, precSci, arityBinary},
}

const lexSpace = " \t\r\n"

// tokenise converts one line of input into its token sequence. An
// identifier matching a name in funcs becomes a call token, so the parser
// can tell variable references and calls apart without consulting the
// symbol table again. Empty input produces no tokens.
func tokenise(src string, funcs map[string]bool) ([]token, error) {
	var toks []token
	rest := src
	pos := 1
	for {
		trimmed := strings.TrimLeft(rest, lexSpace)
		pos += utf8.RuneCountInString(rest) - utf8.RuneCountInString(trimmed)
		rest = trimmed
		if rest == "" {
			return toks, nil
		}
		tok, ok := match(rest, pos, funcs)
		if !ok {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, &LexError{Text: string(r), Col: pos}
		}
		toks = append(toks, tok)
		pos += utf8.RuneCountInString(tok.text)
		rest = rest[len(tok.text):]
	}
}

func match(rest string, pos int, funcs map[string]bool) (token, bool) {
	for _, m := range matchers {
		text := m.re.FindString(rest)
		if text == "" {
			continue
		}
		tok := token{text: text, kind: m.kind, prec: m.prec, arity: m.arity, pos: pos}
		if tok.kind == tokenIdent && funcs[text] {
			tok.kind = tokenCall
			tok.prec = precCall
			tok.arity = arityUnary
		}
		return tok, true
	}
	return token{}, false
}
