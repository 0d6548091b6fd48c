package calc

// Variant is the visual category of a keypad button
type Variant string

const (
	VariantNumber   Variant = "number"
	VariantOperator Variant = "operator"
	VariantEquals   Variant = "equals"
	VariantClear    Variant = "clear"
)

// Key labels that are not digits, operators or scientific functions
const (
	KeyClear      = "C"
	KeyClearEntry = "CE"
	KeyToggleSign = "±"
	KeyDecimal    = "."
	KeyEquals     = "="
	KeyPower      = "xʸ"
)

// BasicKeys is the keypad shared by both modes, row by row. "0" spans two
// columns in the last row.
var BasicKeys = [][]string{
	{KeyClear, KeyClearEntry, KeyToggleSign, "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", KeyDecimal, KeyEquals},
}

// ScientificKeys is the extra panel shown in advanced mode
var ScientificKeys = [][]string{
	{FnSin, FnCos, FnTan, FnLog},
	{FnSqrt, FnSquare, KeyPower, FnReciprocal},
	{FnPi, FnE, FnOpenParen, FnCloseParen},
}

// ButtonVariant classifies a key label
func ButtonVariant(label string) Variant {
	switch label {
	case KeyClear, KeyClearEntry:
		return VariantClear
	case "+", "-", "×", "÷":
		return VariantOperator
	case KeyEquals:
		return VariantEquals
	}
	return VariantNumber
}

// ActionForKey maps a key label to the action it triggers
func ActionForKey(label string) (Action, bool) {
	switch label {
	case KeyClear:
		return Action{Kind: ActionClear}, true
	case KeyClearEntry:
		return Action{Kind: ActionClearEntry}, true
	case KeyToggleSign:
		return Action{Kind: ActionToggleSign}, true
	case KeyDecimal:
		return Action{Kind: ActionDecimal}, true
	case KeyEquals:
		return Action{Kind: ActionEquals}, true
	}

	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Action{Kind: ActionDigit, Value: label}, true
	}
	if op, ok := ParseOperator(label); ok && op != OpEquals {
		return Action{Kind: ActionOperator, Value: string(op)}, true
	}
	if IsScientific(label) {
		return Action{Kind: ActionScientific, Value: label}, true
	}
	return Action{}, false
}
