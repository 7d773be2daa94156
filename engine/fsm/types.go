package fsm

// StateID identifies a lane state
type StateID int

const (
	StateNone     StateID = iota
	StateIdle             // No transition in flight, operations accepted
	StateInFlight         // A transition is in flight, operations dropped
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInFlight:
		return "TransitionInFlight"
	default:
		return "None"
	}
}

// Trigger is an input to a lane
type Trigger int

const (
	TriggerBegin  Trigger = iota + 1 // A transition was requested
	TriggerSettle                    // The transition (or all of its parts) completed
)

func (t Trigger) String() string {
	switch t {
	case TriggerBegin:
		return "Begin"
	case TriggerSettle:
		return "Settle"
	default:
		return "Unknown"
	}
}

// Rule defines a link between states
type Rule struct {
	From StateID
	On   Trigger
	To   StateID
}

// RegionState is the runtime state of one independent lane
type RegionState struct {
	Name          string
	ActiveStateID StateID
	Transitions   int // Accepted transitions since spawn or reset
	Dropped       int // Triggers rejected by the rule table
}

// ActionFunc executes a side effect on entering a state
type ActionFunc func(region string, from, to StateID)

// DefaultRules is the two-state busy lane
// Begin while in flight has no rule and is therefore dropped
func DefaultRules() []Rule {
	return []Rule{
		{From: StateIdle, On: TriggerBegin, To: StateInFlight},
		{From: StateInFlight, On: TriggerSettle, To: StateIdle},
	}
}
