package minivac

// Option is an option for creating an Engine.
type Option interface {
	option(*Engine)
}

type (
	varopt struct {
		name string
		val  float64
	}
	fnopt struct {
		name string
		fn   func(float64) float64
	}
)

// WithVariable seeds a mutable variable before the engine accepts input.
func WithVariable(name string, value float64) Option {
	return varopt{name, value}
}

func (o varopt) option(e *Engine) {
	e.table.vars[o.name] = &Variable{Name: o.name, Value: o.val}
}

// WithFunction registers a native callable alongside the builtins. fn
// receives the evaluated argument of each call. The callable is final, so
// input lines cannot redefine it.
func WithFunction(name string, fn func(float64) float64) Option {
	return fnopt{name, fn}
}

func (o fnopt) option(e *Engine) {
	e.table.funcs[o.name] = &Callable{name: o.name, fn: o.fn, final: true}
}
