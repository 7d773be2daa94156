package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundAccept SoundType = iota // Playfield card taken into the stack
	SoundReject                  // Activation refused by the match rule
	SoundSwap                    // Stack card swapped with the top
	SoundUndo                    // Last move reverted
	SoundTypeCount
)

// String returns the sound name for diagnostics
func (s SoundType) String() string {
	switch s {
	case SoundAccept:
		return "accept"
	case SoundReject:
		return "reject"
	case SoundSwap:
		return "swap"
	case SoundUndo:
		return "undo"
	default:
		return "unknown"
	}
}
