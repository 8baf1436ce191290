package ripple

// TimerState is the state of a cooperative one-shot timer.
type TimerState int

const (
	Idle TimerState = iota
	Scheduled
)

func (s TimerState) String() string {
	if s == Scheduled {
		return "scheduled"
	}
	return "idle"
}

// timer is a one-shot deadline polled from the update loop. Firing moves
// it back to Idle; the owner decides whether to arm it again.
type timer struct {
	state TimerState
	due   float64
}

func (t *timer) arm(now, delay float64) {
	t.state = Scheduled
	t.due = now + delay
}

// fire reports whether the deadline has passed, disarming the timer if so.
func (t *timer) fire(now float64) bool {
	if t.state != Scheduled || now < t.due {
		return false
	}
	t.state = Idle
	return true
}
