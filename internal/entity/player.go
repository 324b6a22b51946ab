package entity

// Player is a participant of a local session. The engine only consumes the mark.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}
