package calc

import "time"

// MaxHistory is the number of history entries kept, newest first
const MaxHistory = 20

// Operator represents a pending binary operation
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
	OpPower    Operator = "^"
	OpEquals   Operator = "="
)

// ParseOperator maps a symbol to an Operator. ASCII aliases are accepted
// for keyboard and command line input.
func ParseOperator(symbol string) (Operator, bool) {
	switch symbol {
	case "+":
		return OpAdd, true
	case "-", "−":
		return OpSubtract, true
	case "×", "*", "x":
		return OpMultiply, true
	case "÷", "/":
		return OpDivide, true
	case "^", "xʸ":
		return OpPower, true
	case "=":
		return OpEquals, true
	}
	return OpNone, false
}

// HistoryEntry represents one finished calculation
type HistoryEntry struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// State is the complete calculator state. It is a plain value: copying it
// is safe, the reducer never mutates a History slice it was given.
type State struct {
	Display           string         `json:"display"`
	Previous          string         `json:"previous,omitempty"`
	HasPrevious       bool           `json:"has_previous"`
	Operator          Operator       `json:"operator,omitempty"`
	WaitingForOperand bool           `json:"waiting_for_operand"`
	History           []HistoryEntry `json:"history"`
}

// NewState returns the state shown when the calculator starts
func NewState() State {
	return State{Display: "0"}
}

// ActionKind identifies a user input
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimal
	ActionToggleSign
	ActionClear
	ActionClearEntry
	ActionOperator
	ActionEquals
	ActionScientific
	ActionRecordHistory
	ActionUseHistoryEntry
	ActionClearHistory
	ActionCopyDisplay
	ActionRestoreHistory
)

// Action is a single input to the reducer.
//
// Value carries the digit, operator symbol, function name, history id or
// expression depending on Kind. Result is only used by ActionRecordHistory
// and Entries only by ActionRestoreHistory.
type Action struct {
	Kind    ActionKind
	Value   string
	Result  string
	Entries []HistoryEntry
}

// EffectKind identifies a side effect requested by the reducer
type EffectKind int

const (
	EffectHistoryRecorded EffectKind = iota
	EffectHistoryCleared
	EffectCopyToClipboard
)

// Effect is a side effect the owner of the engine should carry out
type Effect struct {
	Kind  EffectKind
	Entry HistoryEntry // EffectHistoryRecorded
	Text  string       // EffectCopyToClipboard
}

// Env supplies the clock and id source used when recording history
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses the wall clock and random v4 UUIDs
func DefaultEnv() Env {
	return Env{
		Now:   time.Now,
		NewID: newID,
	}
}
