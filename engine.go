package minivac

import (
	"regexp"
	"strings"
)

// Assignment left-hand shapes. Names are lowercase runs, mirroring the
// identifier rule in the tokeniser.
var (
	funcDefRE = regexp.MustCompile(`^[a-z]+\(x\)$`)
	varDefRE  = regexp.MustCompile(`^[a-z]+$`)
)

// Engine evaluates calculator input lines against one symbol table. An
// Engine is not safe for concurrent use; each Run must complete before
// the next begins.
type Engine struct {
	table *SymbolTable
}

// New creates an engine with the default symbol table and applies opts.
func New(opts ...Option) *Engine {
	e := &Engine{table: NewSymbolTable()}
	for _, opt := range opts {
		opt.option(e)
	}
	return e
}

// Run evaluates one line of input. A line containing "=" is an assignment
// and reports 0. Anything else is a query whose result also rolls the
// history: preans takes the old ans, ans takes the new result. A failed
// line leaves the symbol table untouched.
func (e *Engine) Run(text string) (float64, error) {
	line := strings.TrimSpace(text)
	if k := strings.IndexByte(line, '='); k >= 0 {
		left := strings.TrimSpace(line[:k])
		right := strings.TrimSpace(line[k+1:])
		if err := e.assign(left, right); err != nil {
			return 0, err
		}
		return 0, nil
	}
	n, err := e.compile(line)
	if err != nil {
		return 0, err
	}
	r, err := n.eval(e.table, frame{})
	if err != nil {
		return 0, err
	}
	ans := e.table.vars["ans"]
	pre := e.table.vars["preans"]
	pre.Value = ans.Value
	ans.Value = r
	return r, nil
}

// assign routes to a function definition or a variable assignment by the
// shape of the left side. The right side is fully parsed, and for
// variables fully evaluated, before anything is stored.
func (e *Engine) assign(left, right string) error {
	switch {
	case funcDefRE.MatchString(left):
		name := strings.TrimSuffix(left, "("+argName+")")
		body, err := e.compile(right)
		if err != nil {
			return err
		}
		return e.table.setCallable(name, body)
	case varDefRE.MatchString(left):
		n, err := e.compile(right)
		if err != nil {
			return err
		}
		v, err := n.eval(e.table, frame{})
		if err != nil {
			return err
		}
		return e.table.SetVariable(left, v)
	default:
		return &AssignError{Left: left}
	}
}

func (e *Engine) compile(text string) (*node, error) {
	toks, err := tokenise(text, e.table.funcNames())
	if err != nil {
		return nil, err
	}
	return parseExpr(toks)
}

// Variables returns the current variable bindings for display.
func (e *Engine) Variables() []Variable {
	return e.table.Variables()
}

// Callables returns the current function definitions for display.
func (e *Engine) Callables() []FuncInfo {
	return e.table.Callables()
}

// Table returns the engine's symbol table.
func (e *Engine) Table() *SymbolTable {
	return e.table
}
