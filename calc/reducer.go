package calc

import (
	"fmt"
	"math"
)

// Reduce applies one action to s and returns the next state together with
// any side effects the caller has to perform. Reduce never fails: invalid
// input is ignored and degenerate arithmetic produces NaN, Infinity or the
// division-by-zero fallback of 0.
func Reduce(s State, a Action, env Env) (State, []Effect) {
	switch a.Kind {
	case ActionDigit:
		return inputDigit(s, a.Value), nil
	case ActionDecimal:
		return inputDecimal(s), nil
	case ActionToggleSign:
		s.Display = FormatNumber(-ParseNumber(s.Display))
		return s, nil
	case ActionClear:
		return clearAll(s), nil
	case ActionClearEntry:
		s.Display = "0"
		return s, nil
	case ActionOperator:
		op, ok := ParseOperator(a.Value)
		if !ok {
			return s, nil
		}
		return applyOperator(s, op, env)
	case ActionEquals:
		return equals(s, env)
	case ActionScientific:
		return scientific(s, a.Value, env)
	case ActionRecordHistory:
		return recordHistory(s, a.Value, a.Result, env)
	case ActionUseHistoryEntry:
		return useHistoryEntry(s, a.Value), nil
	case ActionClearHistory:
		s.History = nil
		return s, []Effect{{Kind: EffectHistoryCleared}}
	case ActionCopyDisplay:
		return s, []Effect{{Kind: EffectCopyToClipboard, Text: s.Display}}
	case ActionRestoreHistory:
		s.History = trimHistory(append([]HistoryEntry(nil), a.Entries...))
		return s, nil
	}
	return s, nil
}

func inputDigit(s State, d string) State {
	if len(d) != 1 || d[0] < '0' || d[0] > '9' {
		return s
	}
	if s.WaitingForOperand {
		s.Display = d
		s.WaitingForOperand = false
	} else if s.Display == "0" {
		s.Display = d
	} else {
		s.Display += d
	}
	return s
}

func inputDecimal(s State) State {
	if s.WaitingForOperand {
		s.Display = "0."
		s.WaitingForOperand = false
		return s
	}
	for i := 0; i < len(s.Display); i++ {
		if s.Display[i] == '.' {
			return s
		}
	}
	s.Display += "."
	return s
}

func clearAll(s State) State {
	s.Display = "0"
	s.Previous = ""
	s.HasPrevious = false
	s.Operator = OpNone
	s.WaitingForOperand = false
	return s
}

func applyOperator(s State, next Operator, env Env) (State, []Effect) {
	input := ParseNumber(s.Display)
	var effects []Effect

	if !s.HasPrevious {
		s.Previous = FormatNumber(input)
		s.HasPrevious = true
	} else if s.Operator != OpNone {
		prev := s.Previous
		if prev == "" {
			prev = "0"
		}

		result, ok := evaluate(s.Operator, ParseNumber(prev), input)
		if !ok {
			return s, nil
		}

		resultString := FormatNumber(result)
		if next == OpEquals {
			expression := fmt.Sprintf("%s %s %s", prev, s.Operator, s.Display)
			s, effects = recordHistory(s, expression, resultString, env)
		}

		s.Display = resultString
		s.Previous = resultString
	}

	s.WaitingForOperand = true
	s.Operator = next
	return s, effects
}

// evaluate computes a op b. Division by zero is defined as 0.
func evaluate(op Operator, a, b float64) (float64, bool) {
	switch op {
	case OpAdd:
		return a + b, true
	case OpSubtract:
		return a - b, true
	case OpMultiply:
		return a * b, true
	case OpDivide:
		if b == 0 {
			return 0, true
		}
		return a / b, true
	case OpPower:
		return math.Pow(a, b), true
	case OpEquals:
		return b, true
	}
	return 0, false
}

func equals(s State, env Env) (State, []Effect) {
	if s.Operator == OpNone || !s.HasPrevious {
		return s, nil
	}

	s, effects := applyOperator(s, OpEquals, env)
	s.Operator = OpNone
	s.Previous = ""
	s.HasPrevious = false
	s.WaitingForOperand = true
	return s, effects
}

func recordHistory(s State, expression, result string, env Env) (State, []Effect) {
	entry := HistoryEntry{
		ID:         env.NewID(),
		Expression: expression,
		Result:     result,
		Timestamp:  env.Now(),
	}

	history := make([]HistoryEntry, 0, len(s.History)+1)
	history = append(history, entry)
	history = append(history, s.History...)
	s.History = trimHistory(history)

	return s, []Effect{{Kind: EffectHistoryRecorded, Entry: entry}}
}

func trimHistory(h []HistoryEntry) []HistoryEntry {
	if len(h) > MaxHistory {
		return h[:MaxHistory]
	}
	return h
}

func useHistoryEntry(s State, id string) State {
	for _, entry := range s.History {
		if entry.ID == id {
			s.Display = entry.Result
			break
		}
	}
	return s
}
