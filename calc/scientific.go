package calc

import "math"

// Scientific function names accepted by ActionScientific
const (
	FnSin        = "sin"
	FnCos        = "cos"
	FnTan        = "tan"
	FnLog        = "log"
	FnSqrt       = "√"
	FnSquare     = "x²"
	FnReciprocal = "1/x"
	FnPi         = "π"
	FnE          = "e"
	FnOpenParen  = "("
	FnCloseParen = ")"
)

type unaryFunc struct {
	apply      func(x float64) float64
	expression func(display string) string
}

func degrees(x float64) float64 { return x * math.Pi / 180 }

var unaryFuncs = map[string]unaryFunc{
	FnSin: {
		apply:      func(x float64) float64 { return math.Sin(degrees(x)) },
		expression: func(d string) string { return "sin(" + d + "°)" },
	},
	FnCos: {
		apply:      func(x float64) float64 { return math.Cos(degrees(x)) },
		expression: func(d string) string { return "cos(" + d + "°)" },
	},
	FnTan: {
		apply:      func(x float64) float64 { return math.Tan(degrees(x)) },
		expression: func(d string) string { return "tan(" + d + "°)" },
	},
	FnLog: {
		apply:      math.Log10,
		expression: func(d string) string { return "log(" + d + ")" },
	},
	FnSqrt: {
		apply:      math.Sqrt,
		expression: func(d string) string { return "√" + d },
	},
	FnSquare: {
		apply:      func(x float64) float64 { return x * x },
		expression: func(d string) string { return d + "²" },
	},
	FnReciprocal: {
		apply:      func(x float64) float64 { return 1 / x },
		expression: func(d string) string { return "1/" + d },
	},
}

// IsScientific reports whether name is a known scientific function
func IsScientific(name string) bool {
	if _, ok := unaryFuncs[name]; ok {
		return true
	}
	switch name {
	case FnPi, FnE, FnOpenParen, FnCloseParen:
		return true
	}
	return false
}

func scientific(s State, name string, env Env) (State, []Effect) {
	switch name {
	case FnPi:
		s.Display = FormatNumber(math.Pi)
		s.WaitingForOperand = true
		return s, nil
	case FnE:
		s.Display = FormatNumber(math.E)
		s.WaitingForOperand = true
		return s, nil
	case FnOpenParen:
		if s.Display == "0" || s.WaitingForOperand {
			s.Display = "("
		} else {
			s.Display += "("
		}
		s.WaitingForOperand = false
		return s, nil
	case FnCloseParen:
		s.Display += ")"
		s.WaitingForOperand = false
		return s, nil
	}

	fn, ok := unaryFuncs[name]
	if !ok {
		return s, nil
	}

	result := FormatNumber(fn.apply(ParseNumber(s.Display)))
	s, effects := recordHistory(s, fn.expression(s.Display), result, env)
	s.Display = result
	s.WaitingForOperand = true
	return s, effects
}
