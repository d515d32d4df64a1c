package minivac

import "math"

// builtinFuncs constructs the callables every new symbol table starts
// with. All are final and take the single implicit argument.
func builtinFuncs() map[string]*Callable {
	native := map[string]func(float64) float64{
		"sin":   math.Sin,
		"asin":  math.Asin,
		"asinh": math.Asinh,
		"cos":   math.Cos,
		"acos":  math.Acos,
		"acosh": math.Acosh,
		"tan":   math.Tan,
		"atan":  math.Atan,
		"atanh": math.Atanh,
		// degree/radian conversions
		"rad": func(d float64) float64 { return d * math.Pi / 180 },
		"deg": func(r float64) float64 { return r * 180 / math.Pi },
	}
	m := make(map[string]*Callable, len(native))
	for name, fn := range native {
		m[name] = &Callable{name: name, fn: fn, final: true}
	}
	return m
}
