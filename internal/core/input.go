package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move up
	ActionDown           // Down arrow, S - move down
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionConfirm        // Enter - confirm selection in menu or dismiss a notice
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the run
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Directional actions are present for as long as the key is held;
// one-shot actions (pause, restart) only on the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// KeyState tracks which directional actions are currently held down.
//
// Frontends with real key-up events call Press and Release directly.
// Terminals only deliver key presses (and auto-repeats), so the terminal
// frontend treats every press as holding the key until a deadline and lets
// Expire release keys whose repeats stopped arriving.
type KeyState struct {
	held map[Action]time.Time // action -> release deadline (zero = until Release)

	// InitialHold covers the gap between a key press and the first auto-repeat.
	InitialHold time.Duration
	// RepeatHold extends a held key on each auto-repeat.
	RepeatHold time.Duration
}

// NewKeyState creates an empty key state. Zero durations mean keys stay
// held until Release is called.
func NewKeyState(initialHold, repeatHold time.Duration) *KeyState {
	return &KeyState{
		held:        make(map[Action]time.Time),
		InitialHold: initialHold,
		RepeatHold:  repeatHold,
	}
}

// Press marks the action as held at time now.
// Pressing a direction releases the opposite one.
func (k *KeyState) Press(a Action, now time.Time) {
	if opp := opposite(a); opp != ActionNone {
		delete(k.held, opp)
	}

	if k.InitialHold == 0 {
		k.held[a] = time.Time{}
		return
	}

	hold := k.InitialHold
	if _, ok := k.held[a]; ok && k.RepeatHold > 0 {
		hold = k.RepeatHold
	}
	deadline := now.Add(hold)
	if cur, ok := k.held[a]; ok && cur.After(deadline) {
		deadline = cur
	}
	k.held[a] = deadline
}

// Release marks the action as no longer held.
func (k *KeyState) Release(a Action) {
	delete(k.held, a)
}

// ReleaseAll clears every held action.
func (k *KeyState) ReleaseAll() {
	clear(k.held)
}

// Held reports whether the action is currently held.
func (k *KeyState) Held(a Action) bool {
	_, ok := k.held[a]
	return ok
}

// Expire releases every action whose hold deadline has passed.
func (k *KeyState) Expire(now time.Time) {
	for a, deadline := range k.held {
		if !deadline.IsZero() && now.After(deadline) {
			delete(k.held, a)
		}
	}
}

// Apply sets every held action on the frame.
func (k *KeyState) Apply(f *InputFrame) {
	for a := range k.held {
		f.Set(a)
	}
}

func opposite(a Action) Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}
