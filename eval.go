package minivac

import "math"

// divEpsilon guards divisions. Divisors smaller than this in magnitude
// count as zero; the tolerance is deliberate, not an exact-zero check.
const divEpsilon = 1e-8

// argName is the implicit argument every callable body refers to.
const argName = "x"

// frame is the argument binding for one call. Each call gets its own
// frame, so a nested call cannot clobber the argument of the call that
// made it.
type frame struct {
	arg   float64
	bound bool
}

// eval computes the node's value against a symbol table and the current
// call frame. The left operand of a binary node always evaluates first.
func (n *node) eval(st *SymbolTable, fr frame) (float64, error) {
	switch n.kind {
	case nodeConst:
		return n.val, nil
	case nodeName:
		if fr.bound && n.name == argName {
			return fr.arg, nil
		}
		v, err := st.Variable(n.name)
		if err != nil {
			return 0, err
		}
		return v.Value, nil
	case nodeCall:
		arg, err := n.left.eval(st, fr)
		if err != nil {
			return 0, err
		}
		c, err := st.Callable(n.name)
		if err != nil {
			return 0, err
		}
		return c.invoke(st, arg)
	case nodeFact:
		v, err := n.left.eval(st, fr)
		if err != nil {
			return 0, err
		}
		return factorial(v), nil
	}
	l, err := n.left.eval(st, fr)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(st, fr)
	if err != nil {
		return 0, err
	}
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if math.Abs(r) < divEpsilon {
			return 0, &DivisionError{}
		}
		return l / r, nil
	case nodePow:
		return math.Pow(l, r), nil
	case nodeSci:
		return l * math.Pow(10, r), nil
	default:
		panic("minivac: invalid AST node " + n.kind.String())
	}
}

// factorial steps down from v by ones while positive. Landing exactly on
// zero gives the integer factorial; landing below zero flips the sign, so
// negative inputs report the -1 sentinel rather than an error and
// fractional inputs keep the sentinel factor. Callers must check for the
// sentinel themselves.
func factorial(v float64) float64 {
	if v > 170 {
		// 171! already overflows float64, so don't walk the whole range.
		// Fractional inputs keep the sentinel sign flip.
		if v == math.Trunc(v) {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	r := 1.0
	x := v
	for x > 0 {
		r *= x
		x--
	}
	if x < 0 {
		r = -r
	}
	return r
}
