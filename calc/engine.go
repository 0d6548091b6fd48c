package calc

// Engine owns one calculator State and runs actions through Reduce.
// Both keypads of the UI share a single Engine. It is not safe for
// concurrent use; callers dispatch from one goroutine.
type Engine struct {
	state    State
	env      Env
	onChange []func(State)
	onEffect []func(Effect)
}

// NewEngine creates an engine in its initial state
func NewEngine(env Env) *Engine {
	if env.Now == nil || env.NewID == nil {
		def := DefaultEnv()
		if env.Now == nil {
			env.Now = def.Now
		}
		if env.NewID == nil {
			env.NewID = def.NewID
		}
	}
	return &Engine{state: NewState(), env: env}
}

// State returns a copy of the current state
func (e *Engine) State() State {
	s := e.state
	s.History = append([]HistoryEntry(nil), e.state.History...)
	return s
}

// Display returns the current display string
func (e *Engine) Display() string {
	return e.state.Display
}

// History returns the history entries, newest first
func (e *Engine) History() []HistoryEntry {
	return append([]HistoryEntry(nil), e.state.History...)
}

// OnChange registers a callback run after every dispatched action
func (e *Engine) OnChange(fn func(State)) {
	e.onChange = append(e.onChange, fn)
}

// OnEffect registers a callback run for each side effect
func (e *Engine) OnEffect(fn func(Effect)) {
	e.onEffect = append(e.onEffect, fn)
}

// Dispatch applies a to the engine state, notifies listeners and returns
// the effects produced
func (e *Engine) Dispatch(a Action) []Effect {
	next, effects := Reduce(e.state, a, e.env)
	e.state = next

	for _, fn := range e.onChange {
		fn(e.State())
	}
	for _, eff := range effects {
		for _, fn := range e.onEffect {
			fn(eff)
		}
	}
	return effects
}

// Press dispatches the action bound to a keypad label. It reports false
// for labels that are not bound to anything.
func (e *Engine) Press(label string) bool {
	a, ok := ActionForKey(label)
	if !ok {
		return false
	}
	e.Dispatch(a)
	return true
}

func (e *Engine) InputDigit(d string) { e.Dispatch(Action{Kind: ActionDigit, Value: d}) }
func (e *Engine) InputDecimal()       { e.Dispatch(Action{Kind: ActionDecimal}) }
func (e *Engine) ToggleSign()         { e.Dispatch(Action{Kind: ActionToggleSign}) }
func (e *Engine) Clear()              { e.Dispatch(Action{Kind: ActionClear}) }
func (e *Engine) ClearEntry()         { e.Dispatch(Action{Kind: ActionClearEntry}) }
func (e *Engine) Equals()             { e.Dispatch(Action{Kind: ActionEquals}) }
func (e *Engine) ClearHistory()       { e.Dispatch(Action{Kind: ActionClearHistory}) }
func (e *Engine) CopyDisplay()        { e.Dispatch(Action{Kind: ActionCopyDisplay}) }

func (e *Engine) ApplyOperator(op Operator) {
	e.Dispatch(Action{Kind: ActionOperator, Value: string(op)})
}

func (e *Engine) Scientific(name string) {
	e.Dispatch(Action{Kind: ActionScientific, Value: name})
}

func (e *Engine) RecordHistory(expression, result string) {
	e.Dispatch(Action{Kind: ActionRecordHistory, Value: expression, Result: result})
}

// UseHistoryEntry shows the result of the entry with the given id
func (e *Engine) UseHistoryEntry(id string) {
	e.Dispatch(Action{Kind: ActionUseHistoryEntry, Value: id})
}

// RestoreHistory replaces the history, typically with entries loaded from
// the history store at startup. Entries must be ordered newest first.
func (e *Engine) RestoreHistory(entries []HistoryEntry) {
	e.Dispatch(Action{Kind: ActionRestoreHistory, Entries: entries})
}
