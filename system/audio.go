package system

import (
	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/event"
)

// SoundPlayer plays a sound cue; implemented by audio.SoundManager
type SoundPlayer interface {
	Play(st core.SoundType)
}

// AudioSystem turns move events into sound cues
// Decouples coordinators from direct audio access
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio system; player may be nil when audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCardAccepted,
		event.EventCardRejected,
		event.EventStackSwapped,
		event.EventUndoApplied,
		event.EventSoundRequest,
	}
}

// HandleEvent maps an event to its cue
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventCardAccepted:
		s.player.Play(core.SoundAccept)
	case event.EventCardRejected:
		s.player.Play(core.SoundReject)
	case event.EventStackSwapped:
		s.player.Play(core.SoundSwap)
	case event.EventUndoApplied:
		s.player.Play(core.SoundUndo)
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(payload.SoundType)
		}
	}
}
