package unit

// Action is one entry of a unit's behavior stack.
type Action interface {
	Name() string
}

// Idle is the behavior a unit falls back to when nothing else is queued.
type Idle struct {
	unit *Unit
}

func NewIdle(u *Unit) *Idle { return &Idle{unit: u} }

func (a *Idle) Name() string { return "idle" }

func (a *Idle) Unit() *Unit { return a.unit }

// Push puts a on top of the behavior stack. A base action can never be popped;
// only Reset removes it.
func (u *Unit) Push(a Action, base bool) {
	if a == nil {
		return
	}
	u.actions = append(u.actions, stackEntry{action: a, base: base})
}

// Pop removes the top action unless it is a base action.
func (u *Unit) Pop() (Action, bool) {
	n := len(u.actions)
	if n == 0 || u.actions[n-1].base {
		return nil, false
	}
	top := u.actions[n-1].action
	u.actions = u.actions[:n-1]
	return top, true
}

// Top returns the running action, or nil for an empty stack.
func (u *Unit) Top() Action {
	if len(u.actions) == 0 {
		return nil
	}
	return u.actions[len(u.actions)-1].action
}

// Actions lists the stack bottom first.
func (u *Unit) Actions() []Action {
	out := make([]Action, len(u.actions))
	for i, e := range u.actions {
		out[i] = e.action
	}
	return out
}
