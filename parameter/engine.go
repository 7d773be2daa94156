package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventLoopIterations is the cycles a flush attempts to consume events for immediate settling
	EventLoopIterations = 16
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Busy lanes, one FSM region each
const (
	// LaneStackTransfer guards playfield to stack transfers
	LaneStackTransfer = "stack.transfer"

	// LaneStackSwap guards reserve-internal swaps
	LaneStackSwap = "stack.swap"
)
