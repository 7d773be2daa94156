package parameter

import "time"

// Design space the level layouts are authored in
const (
	DesignWidth  = 1080
	DesignHeight = 2080
)

// Move geometry and timing
const (
	// StackOffset is how far beyond the current top an accepted card lands along X
	StackOffset = 150.0

	// TransitionDuration is the tween length for accept, swap and undo moves
	TransitionDuration = 250 * time.Millisecond

	// SwapParts is the number of sub-transitions a swap waits for
	SwapParts = 2
)

// Card value ranges
const (
	FaceCount = 13
	SuitCount = 4
)
