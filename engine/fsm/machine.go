package fsm

import "fmt"

// Machine runs independent regions over a shared rule table
// Each region is one busy lane; regions never observe each other
type Machine struct {
	rules   map[StateID]map[Trigger]StateID
	regions map[string]*RegionState
	onEnter map[StateID][]ActionFunc
}

// NewMachine creates a machine with the given rules, DefaultRules if none
func NewMachine(rules ...Rule) *Machine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	m := &Machine{
		rules:   make(map[StateID]map[Trigger]StateID),
		regions: make(map[string]*RegionState),
		onEnter: make(map[StateID][]ActionFunc),
	}
	for _, r := range rules {
		if m.rules[r.From] == nil {
			m.rules[r.From] = make(map[Trigger]StateID)
		}
		m.rules[r.From][r.On] = r.To
	}
	return m
}

// RegisterAction adds a side-effect run whenever any region enters state
func (m *Machine) RegisterAction(state StateID, fn ActionFunc) {
	m.onEnter[state] = append(m.onEnter[state], fn)
}

// SpawnRegion creates a new lane in the initial state
func (m *Machine) SpawnRegion(name string, initial StateID) error {
	if _, exists := m.regions[name]; exists {
		return fmt.Errorf("region '%s' already exists", name)
	}
	if initial == StateNone {
		return fmt.Errorf("region '%s': initial state required", name)
	}
	m.regions[name] = &RegionState{Name: name, ActiveStateID: initial}
	return nil
}

// HandleEvent applies trigger to the named region
// Returns true if a rule matched and the region changed state
func (m *Machine) HandleEvent(region string, trigger Trigger) bool {
	r, ok := m.regions[region]
	if !ok {
		return false
	}

	target, ok := m.rules[r.ActiveStateID][trigger]
	if !ok {
		r.Dropped++
		return false
	}

	from := r.ActiveStateID
	r.ActiveStateID = target
	r.Transitions++

	for _, fn := range m.onEnter[target] {
		fn(region, from, target)
	}
	return true
}

// Busy reports whether the region has a transition in flight
func (m *Machine) Busy(region string) bool {
	return m.RegionStateID(region) == StateInFlight
}

// RegionStateID returns the active StateID for a named region
// Returns StateNone if region doesn't exist
func (m *Machine) RegionStateID(region string) StateID {
	if r, ok := m.regions[region]; ok {
		return r.ActiveStateID
	}
	return StateNone
}

// Region returns a copy of the region's runtime state
func (m *Machine) Region(region string) (RegionState, bool) {
	r, ok := m.regions[region]
	if !ok {
		return RegionState{}, false
	}
	return *r, true
}

// HasRegion checks if a region exists
func (m *Machine) HasRegion(region string) bool {
	_, ok := m.regions[region]
	return ok
}

// Reset returns every region to Idle and clears counters, no actions run
func (m *Machine) Reset() {
	for _, r := range m.regions {
		r.ActiveStateID = StateIdle
		r.Transitions = 0
		r.Dropped = 0
	}
}
