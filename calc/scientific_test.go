package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScientificFunctions(t *testing.T) {
	tests := []struct {
		fn      string
		display []string
		want    float64
		expr    string
	}{
		{FnSin, []string{"3", "0"}, 0.5, "sin(30°)"},
		{FnCos, []string{"6", "0"}, 0.5, "cos(60°)"},
		{FnTan, []string{"4", "5"}, 1, "tan(45°)"},
		{FnLog, []string{"1", "0", "0", "0"}, 3, "log(1000)"},
		{FnSqrt, []string{"8", "1"}, 9, "√81"},
		{FnSquare, []string{"1", "2"}, 144, "12²"},
		{FnReciprocal, []string{"4"}, 0.25, "1/4"},
	}

	for _, tt := range tests {
		e := testEngine()
		press(t, e, tt.display...)
		e.Scientific(tt.fn)

		assert.InDelta(t, tt.want, ParseNumber(e.Display()), 1e-9, tt.fn)
		if assert.Len(t, e.History(), 1, tt.fn) {
			assert.Equal(t, tt.expr, e.History()[0].Expression)
			assert.Equal(t, e.Display(), e.History()[0].Result)
		}
	}
}

func TestScientificSentinels(t *testing.T) {
	tests := []struct {
		fn      string
		display []string
		want    string
	}{
		{FnSqrt, []string{"4", "±"}, "NaN"},
		{FnLog, []string{"0"}, "-Infinity"},
		{FnLog, []string{"5", "±"}, "NaN"},
		{FnReciprocal, []string{"0"}, "Infinity"},
	}

	for _, tt := range tests {
		e := testEngine()
		press(t, e, tt.display...)
		e.Scientific(tt.fn)
		assert.Equal(t, tt.want, e.Display(), tt.fn)
		assert.Len(t, e.History(), 1)
	}
}

func TestConstantsDoNotRecordHistory(t *testing.T) {
	e := testEngine()
	press(t, e, "π")
	assert.Equal(t, "3.141592653589793", e.Display())
	press(t, e, "e")
	assert.Equal(t, "2.718281828459045", e.Display())
	assert.Empty(t, e.History())

	// a constant is a complete operand
	press(t, e, "2")
	assert.Equal(t, "2", e.Display())
}

func TestConstantInBinaryOperation(t *testing.T) {
	e := testEngine()
	press(t, e, "2", "×", "π", "=")
	assert.Equal(t, FormatNumber(2*math.Pi), e.Display())
	require.Len(t, e.History(), 1)
	assert.Equal(t, "2 × 3.141592653589793", e.History()[0].Expression)
}

func TestParenthesesAreRawText(t *testing.T) {
	e := testEngine()
	press(t, e, "(")
	assert.Equal(t, "(", e.Display())
	press(t, e, "1", "2", ")")
	assert.Equal(t, "(12)", e.Display())
	assert.Empty(t, e.History())

	e.Clear()
	press(t, e, "5", "(")
	assert.Equal(t, "5(", e.Display())
}

func TestScientificResultStartsNewOperand(t *testing.T) {
	e := testEngine()
	press(t, e, "9", "√", "+", "1", "=")
	assert.Equal(t, "4", e.Display())
	require.Len(t, e.History(), 2)
	assert.Equal(t, "3 + 1", e.History()[0].Expression)
	assert.Equal(t, "√9", e.History()[1].Expression)
}

func TestScientificOnUnparsableDisplay(t *testing.T) {
	e := testEngine()
	press(t, e, "(", "x²")
	assert.Equal(t, "NaN", e.Display())
	require.Len(t, e.History(), 1)
	assert.Equal(t, "(²", e.History()[0].Expression)
}
