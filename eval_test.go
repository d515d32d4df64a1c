package minivac_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/batandwa-bbd/minivac"
)

func TestRunValues(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "2", 2},
		{"decimal", "2.5", 2.5},
		{"precedence", "2+3*4", 14},
		{"brackets", "(2+3)*4", 20},
		{"powchain", "2^3^2", 64},
		{"groupright", "2+(3+4)*5", 37},
		{"subadd", "5-2+1", 2},
		{"subchain", "5-2-1", 2},
		{"submul", "5-2*3+1", -2},
		{"negstart", "-5+3", -2},
		{"doubleneg", "--5", 5},
		{"negright", "2*-3", -6},
		{"fact", "5!", 120},
		{"factzero", "0!", 1},
		{"factneg", "(-3)!", -1},
		{"factfrac", "2.5!", -1.875},
		{"factchain", "2+3!", 8},
		{"powfact", "2^3!", 64},
		{"div", "1/0.0001", 10000},
		{"sci", "2E3", 2000},
		{"scidecimal", "1.5E2", 150},
		{"scipow", "2E3^2", 4e6},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"sinzero", "sin(0)", 0},
		{"coszero", "cos(0)", 1},
		{"callterm", "2*sin(0)", 0},
		// A call token counts as an operator in the lookahead, so the
		// whole tail recurses as the right operand of *.
		{"callbinds", "2*cos(0)+1", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eng := minivac.New()
			r, err := eng.Run(c.src)
			if err != nil {
				t.Fatalf("%q failed to run: %v", c.src, err)
			}
			if r != c.want {
				t.Errorf("%q: want %g, got %g", c.src, c.want, r)
			}
		})
	}
}

func TestRunBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"sin(1)", math.Sin(1)},
		{"asin(0.5)", math.Asin(0.5)},
		{"asinh(1)", math.Asinh(1)},
		{"cos(1)", math.Cos(1)},
		{"acos(0.5)", math.Acos(0.5)},
		{"acosh(2)", math.Acosh(2)},
		{"tan(1)", math.Tan(1)},
		{"atan(1)", math.Atan(1)},
		{"atanh(0.5)", math.Atanh(0.5)},
		{"rad(180)", 180 * math.Pi / 180},
		{"deg(1)", 1 * 180 / math.Pi},
	}
	for _, c := range cases {
		eng := minivac.New()
		r, err := eng.Run(c.src)
		if err != nil {
			t.Errorf("%q failed to run: %v", c.src, err)
			continue
		}
		if r != c.want {
			t.Errorf("%q: want %g, got %g", c.src, c.want, r)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"lex", "2$", new(minivac.LexError)},
		{"nearzero", "1/0.000000001", new(minivac.DivisionError)},
		{"zero", "1/0", new(minivac.DivisionError)},
		{"undefined", "q+1", new(minivac.NameError)},
		{"undefinedarg", "sin(q)", new(minivac.NameError)},
		{"tripleneg", "---5", new(minivac.OperandError)},
		{"finalvar", "pi=3", new(minivac.MutationError)},
		{"finalfunc", "sin(x)=x", new(minivac.MutationError)},
		{"badassign", "2x=3", new(minivac.AssignError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eng := minivac.New()
			r, err := eng.Run(c.src)
			if err == nil {
				t.Fatalf("%q ran without error to %g", c.src, r)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("%q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
		})
	}
}

func TestDivisionGuardIsTolerance(t *testing.T) {
	eng := minivac.New()
	if _, err := eng.Run("1/0.0001"); err != nil {
		t.Errorf("1/0.0001 should divide: %v", err)
	}
	if _, err := eng.Run("1/0.000000001"); err == nil {
		t.Error("1/0.000000001 should hit the near-zero guard")
	}
}

func TestFactorialSentinel(t *testing.T) {
	// Negative operands report -1, not an error.
	eng := minivac.New()
	r, err := eng.Run("(-3)!")
	if err != nil {
		t.Fatalf("(-3)! should not error: %v", err)
	}
	if r != -1 {
		t.Errorf("(-3)!: want the -1 sentinel, got %g", r)
	}
}

func TestRunIdempotent(t *testing.T) {
	eng := minivac.New()
	a, err := eng.Run("2+3*4")
	if err != nil {
		t.Fatal(err)
	}
	b, err := eng.Run("2+3*4")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same query differed: %g vs %g", a, b)
	}
}
