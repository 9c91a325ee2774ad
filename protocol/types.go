package protocol

// Side represents the order side (Buy/Sell).
type Side int8

const (
	SideBuy  Side = 1
	SideSell Side = 2
)

// String returns the wire indicator for the side ("B" or "S").
func (s Side) String() string {
	switch s {
	case SideBuy:
		return "B"
	case SideSell:
		return "S"
	}
	return "U"
}

// Opposite returns the counter side.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Action represents the message kind carried by one input line.
type Action uint8

const (
	ActionUnknown Action = 0
	ActionNew     Action = 1
	ActionCancel  Action = 2
	ActionModify  Action = 3
	ActionTrade   Action = 4
)

// String returns the wire action code ("N", "R", "M" or "X").
func (a Action) String() string {
	switch a {
	case ActionNew:
		return "N"
	case ActionCancel:
		return "R"
	case ActionModify:
		return "M"
	case ActionTrade:
		return "X"
	}
	return "U"
}
