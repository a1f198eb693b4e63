package player

import "strings"

type PlayerAction byte

const (
	PlayerActionHit PlayerAction = iota
	PlayerActionStand
	PlayerActionDoubleDown
	PlayerActionSplit
	PlayerActionSurrender
)

// String returns the wire keyword of the action.
func (pa PlayerAction) String() string {
	switch pa {
	case PlayerActionHit:
		return "hit"
	case PlayerActionStand:
		return "stand"
	case PlayerActionDoubleDown:
		return "doubleDown"
	case PlayerActionSplit:
		return "split"
	case PlayerActionSurrender:
		return "surrender"
	default:
		return "INVALID"
	}
}

// ParsePlayerAction matches an operator keyword case-insensitively.
func ParsePlayerAction(keyword string) (PlayerAction, bool) {
	switch strings.ToLower(keyword) {
	case "hit":
		return PlayerActionHit, true
	case "stand":
		return PlayerActionStand, true
	case "doubledown":
		return PlayerActionDoubleDown, true
	case "split":
		return PlayerActionSplit, true
	case "surrender":
		return PlayerActionSurrender, true
	default:
		return 0, false
	}
}
