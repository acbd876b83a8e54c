package events

//go:generate mockgen -destination=mock/mock_listener.go -package=mockevents -source=interfaces.go

// Listener receives events it subscribed to
type Listener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// Bus delivers events to listeners
type Bus interface {
	Subscribe(eventType EventType, listener Listener)
	Unsubscribe(eventType EventType, listener Listener)
	Emit(event *GameEvent) error
	Clear()
	ListenerCount(eventType EventType) int
}
