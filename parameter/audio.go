package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond
)

// Accept Sound
const (
	AcceptSoundDuration = 120 * time.Millisecond
	AcceptSoundFreq     = 880.0
)

// Reject Sound
const (
	RejectSoundDuration = 150 * time.Millisecond
	RejectSoundFreq     = 120.0
)

// Swap Sound
const (
	SwapSoundDuration = 60 * time.Millisecond
	SwapSoundFreq     = 1320.0
)

// Undo Sound, a falling sweep
const (
	UndoSoundDuration  = 180 * time.Millisecond
	UndoSoundFreqStart = 660.0
	UndoSoundFreqEnd   = 330.0
)

// SoundVolume is the linear gain applied to every generated cue
const SoundVolume = 0.2

// Envelope shared by every cue
const (
	SoundAttack  = 5 * time.Millisecond
	SoundRelease = 40 * time.Millisecond
)
