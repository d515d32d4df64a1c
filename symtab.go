package minivac

import (
	"math"
	"sort"
)

// Variable is a named numeric binding. Final variables reject mutation.
type Variable struct {
	Name  string
	Value float64
	Final bool
}

// Callable is a named function of the single implicit argument.
// User-defined callables store a parsed expression body; builtins wrap a
// native function.
type Callable struct {
	name  string
	body  *node
	fn    func(float64) float64
	final bool
}

func (c *Callable) Name() string { return c.name }
func (c *Callable) Final() bool  { return c.final }

// Body renders the callable's definition for display.
func (c *Callable) Body() string {
	if c.fn != nil {
		return c.name + "(" + argName + ")"
	}
	return c.body.String()
}

func (c *Callable) invoke(st *SymbolTable, arg float64) (float64, error) {
	if c.fn != nil {
		return c.fn(arg), nil
	}
	return c.body.eval(st, frame{arg: arg, bound: true})
}

// SymbolTable stores the engine's variables and callables. It is not safe
// for concurrent use.
type SymbolTable struct {
	vars  map[string]*Variable
	funcs map[string]*Callable
}

// NewSymbolTable creates a symbol table seeded with the default constants
// and builtin callables. The history variables ans and preans always
// exist and are never final.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		vars: map[string]*Variable{
			"ans":    {Name: "ans"},
			"preans": {Name: "preans"},
			"pi":     {Name: "pi", Value: math.Pi, Final: true},
			"e":      {Name: "e", Value: math.E, Final: true},
		},
		funcs: builtinFuncs(),
	}
}

// Variable looks up a stored variable by name.
func (st *SymbolTable) Variable(name string) (*Variable, error) {
	v := st.vars[name]
	if v == nil {
		return nil, &NameError{Name: name, Kind: "variable"}
	}
	return v, nil
}

// Callable looks up a stored callable by name.
func (st *SymbolTable) Callable(name string) (*Callable, error) {
	c := st.funcs[name]
	if c == nil {
		return nil, &NameError{Name: name, Kind: "function"}
	}
	return c, nil
}

// SetVariable updates or inserts a variable. Updating a final variable
// fails; inserted variables are never final.
func (st *SymbolTable) SetVariable(name string, value float64) error {
	if v := st.vars[name]; v != nil {
		if v.Final {
			return &MutationError{Name: name}
		}
		v.Value = value
		return nil
	}
	st.vars[name] = &Variable{Name: name, Value: value}
	return nil
}

// setCallable updates or inserts a callable with a parsed body, with the
// same finality rules as SetVariable.
func (st *SymbolTable) setCallable(name string, body *node) error {
	if c := st.funcs[name]; c != nil {
		if c.final {
			return &MutationError{Name: name}
		}
		c.body = body
		c.fn = nil
		return nil
	}
	st.funcs[name] = &Callable{name: name, body: body}
	return nil
}

// Variables returns a name-sorted snapshot of the stored variables.
func (st *SymbolTable) Variables() []Variable {
	v := make([]Variable, 0, len(st.vars))
	for _, e := range st.vars {
		v = append(v, *e)
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Name < v[j].Name })
	return v
}

// FuncInfo describes one stored callable for display.
type FuncInfo struct {
	Name  string
	Body  string
	Final bool
}

// Callables returns a name-sorted snapshot of the stored callables.
func (st *SymbolTable) Callables() []FuncInfo {
	v := make([]FuncInfo, 0, len(st.funcs))
	for _, c := range st.funcs {
		v = append(v, FuncInfo{Name: c.name, Body: c.Body(), Final: c.final})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Name < v[j].Name })
	return v
}

// funcNames is the set of callable names the tokeniser reclassifies into
// call tokens.
func (st *SymbolTable) funcNames() map[string]bool {
	m := make(map[string]bool, len(st.funcs))
	for name := range st.funcs {
		m[name] = true
	}
	return m
}
