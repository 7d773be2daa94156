package event

var typeToName = map[EventType]string{
	EventNone:            "None",
	EventCardActivated:   "CardActivated",
	EventUndoRequest:     "UndoRequest",
	EventCardAccepted:    "CardAccepted",
	EventCardRejected:    "CardRejected",
	EventTransferSettled: "TransferSettled",
	EventStackSwapped:    "StackSwapped",
	EventSwapSettled:     "SwapSettled",
	EventUndoApplied:     "UndoApplied",
	EventUndoSettled:     "UndoSettled",
	EventSoundRequest:    "SoundRequest",
	EventLevelReady:      "LevelReady",
}

// GetEventType returns the EventType for a registered name
func GetEventType(name string) (EventType, bool) {
	for et, n := range typeToName {
		if n == name {
			return et, true
		}
	}
	return EventNone, false
}

// Types returns every routable event type, EventNone excluded
func Types() []EventType {
	types := make([]EventType, 0, eventTypeCount-1)
	for et := EventNone + 1; et < eventTypeCount; et++ {
		types = append(types, et)
	}
	return types
}
