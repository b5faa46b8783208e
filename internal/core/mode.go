package core

// Mode is the top-level game mode. The controller owns transitions; other
// components only branch on it.
type Mode uint8

const (
	ModeStart Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "Start"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
