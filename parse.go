package minivac

import (
	"strconv"
	"unicode/utf8"
)

// Expr = Signed | Operand { BinOp Rest | '!' }
// Signed = ('+' | '-') Operand
// Operand = ['+' | '-'] (num | name | Call | '(' Expr ')')
// Call = callname '(' Expr ')'
//
// After a binary operator the parser looks ahead for the next operator
// token at the same bracket depth. If there is none, or the current
// operator binds at least as tightly, only the next single operand is
// consumed; otherwise the whole remainder is parsed as the right operand.

// parseExpr parses a complete token sequence into one expression tree.
func parseExpr(toks []token) (*node, error) {
	n, i, err := parse(toks, 0)
	if err != nil {
		return nil, err
	}
	if i != len(toks) {
		// Only a stray close bracket can stop the parser early.
		return nil, &BracketError{Col: toks[i].pos, Token: toks[i].text}
	}
	return n, nil
}

// parse parses an expression starting at index i. It returns the tree and
// the index of the first unconsumed token.
func parse(toks []token, i int) (*node, int, error) {
	n, i, err := parseStart(toks, i)
	if err != nil {
		return nil, i, err
	}
	return parseRest(toks, n, i)
}

// parseStart parses the first component of an expression. A leading sign
// is rewritten as 0 <op> <operand>.
func parseStart(toks []token, i int) (*node, int, error) {
	if i >= len(toks) {
		return nil, i, &EmptyExpressionError{Col: endPos(toks)}
	}
	tok := toks[i]
	switch tok.kind {
	case tokenAdd, tokenSub:
		rhs, j, err := parseOperand(toks, i+1)
		if err != nil {
			return nil, j, err
		}
		return &node{kind: binKind(tok.kind), left: zero(), right: rhs}, j, nil
	case tokenNum:
		return numNode(tok), i + 1, nil
	case tokenIdent:
		return &node{kind: nodeName, name: tok.text}, i + 1, nil
	case tokenCall:
		return parseCall(toks, i)
	case tokenOpen:
		return parseGroup(toks, i)
	default:
		return nil, i, &StartTokenError{Col: tok.pos, Token: tok.text}
	}
}

// parseRest extends a known left operand until the expression ends. An
// exhausted input synthesizes left+0 so that plain values still carry a
// trailing operator node; a close bracket stops without being consumed so
// the bracket-matching caller can check it.
func parseRest(toks []token, left *node, i int) (*node, int, error) {
	for {
		if i >= len(toks) {
			return &node{kind: nodeAdd, left: left, right: zero()}, i, nil
		}
		tok := toks[i]
		switch tok.kind {
		case tokenClose:
			return left, i, nil
		case tokenFact:
			left = &node{kind: nodeFact, left: left}
			i++
		case tokenAdd, tokenSub, tokenMul, tokenDiv, tokenPow, tokenSci:
			next, ok := nextOpPrec(toks, i+1)
			if !ok || tok.prec >= next {
				rhs, j, err := parseOperand(toks, i+1)
				if err != nil {
					return nil, j, err
				}
				left = &node{kind: binKind(tok.kind), left: left, right: rhs}
				i = j
				continue
			}
			rhs, j, err := parse(toks, i+1)
			if err != nil {
				return nil, j, err
			}
			left = &node{kind: binKind(tok.kind), left: left, right: rhs}
			i = j
		default:
			return nil, i, &InfixError{Col: tok.pos, Token: tok.text}
		}
	}
}

// parseOperand parses a single right operand: at most one leading sign,
// then a literal, variable, call, or bracketed group.
func parseOperand(toks []token, i int) (*node, int, error) {
	if i >= len(toks) {
		return nil, i, &OperandError{Col: endPos(toks)}
	}
	tok := toks[i]
	if tok.kind == tokenAdd || tok.kind == tokenSub {
		rhs, j, err := operandCore(toks, i+1)
		if err != nil {
			return nil, j, err
		}
		return &node{kind: binKind(tok.kind), left: zero(), right: rhs}, j, nil
	}
	return operandCore(toks, i)
}

func operandCore(toks []token, i int) (*node, int, error) {
	if i >= len(toks) {
		return nil, i, &OperandError{Col: endPos(toks)}
	}
	tok := toks[i]
	switch tok.kind {
	case tokenNum:
		return numNode(tok), i + 1, nil
	case tokenIdent:
		return &node{kind: nodeName, name: tok.text}, i + 1, nil
	case tokenCall:
		return parseCall(toks, i)
	case tokenOpen:
		return parseGroup(toks, i)
	default:
		return nil, i, &OperandError{Col: tok.pos, Token: tok.text}
	}
}

// parseGroup parses a bracketed subexpression. The inner parse must stop
// exactly on the matching close bracket.
func parseGroup(toks []token, i int) (*node, int, error) {
	inner, j, err := parse(toks, i+1)
	if err != nil {
		return nil, j, err
	}
	if j >= len(toks) || toks[j].kind != tokenClose {
		return nil, j, &BracketError{Col: toks[i].pos, Token: toks[i].text}
	}
	return inner, j + 1, nil
}

// parseCall parses a function call: the call name followed by one
// bracketed argument, at least four tokens in total.
func parseCall(toks []token, i int) (*node, int, error) {
	if len(toks)-i < 4 || toks[i+1].kind != tokenOpen {
		return nil, i, &CallSyntaxError{Col: toks[i].pos, Func: toks[i].text}
	}
	arg, j, err := parseGroup(toks, i+1)
	if err != nil {
		return nil, j, err
	}
	return &node{kind: nodeCall, name: toks[i].text, left: arg}, j, nil
}

// nextOpPrec finds the precedence of the next operator token at the same
// bracket depth. It reports false when the current subexpression holds no
// further operator.
func nextOpPrec(toks []token, i int) (int8, bool) {
	depth := 0
	for ; i < len(toks); i++ {
		switch toks[i].kind {
		case tokenOpen:
			depth++
		case tokenClose:
			depth--
			if depth < 0 {
				return 0, false
			}
		case tokenNum, tokenIdent:
			// not operators
		default:
			if depth == 0 {
				return toks[i].prec, true
			}
		}
	}
	return 0, false
}

// binKind maps a binary operator token to its node kind.
func binKind(k tokenKind) nodeKind {
	switch k {
	case tokenAdd:
		return nodeAdd
	case tokenSub:
		return nodeSub
	case tokenMul:
		return nodeMul
	case tokenDiv:
		return nodeDiv
	case tokenPow:
		return nodePow
	case tokenSci:
		return nodeSci
	default:
		panic("minivac: no binary operator for token " + k.String())
	}
}

func numNode(tok token) *node {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		panic("minivac: invalid number: " + tok.text + " (" + err.Error() + ")")
	}
	return &node{kind: nodeConst, val: v}
}

func zero() *node {
	return &node{kind: nodeConst}
}

// endPos is the column just past the final token, for errors about input
// that ends too soon.
func endPos(toks []token) int {
	if len(toks) == 0 {
		return 1
	}
	last := toks[len(toks)-1]
	return last.pos + utf8.RuneCountInString(last.text)
}
