package level

// Status is the state of a level.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is returned by every Tick. Next is only meaningful when the level
// is Won and HasNext is true; a final level won has HasNext false.
type Outcome struct {
	Status  Status
	Next    ID
	HasNext bool
}

// Terminal reports whether the level has ended.
func (o Outcome) Terminal() bool {
	return o.Status != Playing
}
