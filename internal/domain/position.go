package domain

import "strings"

// Position is one of the five fixed roster slots.
type Position string

const (
	PositionTop     Position = "TOP"
	PositionJungle  Position = "JUNGLE"
	PositionMid     Position = "MID"
	PositionADC     Position = "ADC"
	PositionSupport Position = "SUPPORT"
)

// Positions lists all slots in draw order.
var Positions = []Position{
	PositionTop,
	PositionJungle,
	PositionMid,
	PositionADC,
	PositionSupport,
}

// ParsePosition parses a case-insensitive position string.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToUpper(s)) {
	case PositionTop:
		return PositionTop, nil
	case PositionJungle:
		return PositionJungle, nil
	case PositionMid:
		return PositionMid, nil
	case PositionADC:
		return PositionADC, nil
	case PositionSupport:
		return PositionSupport, nil
	}
	return "", ErrInvalidInput
}
