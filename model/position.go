package model

import (
	"strconv"
	"strings"
)

// Position is the FPL element_type id.
type Position int

const (
	POS_UNKNOWN Position = 0
	POS_GKP     Position = 1
	POS_DEF     Position = 2
	POS_MID     Position = 3
	POS_FWD     Position = 4
)

// Positions lists the known positions in the order the game shows them.
var Positions = []Position{POS_GKP, POS_DEF, POS_MID, POS_FWD}

// ParsePosition accepts the numeric id, the short code or the full label.
func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "1", "gkp", "gk", "goalkeeper", "goalkeepers":
		return POS_GKP
	case "2", "def", "defender", "defenders":
		return POS_DEF
	case "3", "mid", "midfielder", "midfielders":
		return POS_MID
	case "4", "fwd", "fw", "forward", "forwards":
		return POS_FWD
	default:
		return POS_UNKNOWN
	}
}

func (p Position) String() string {
	switch p {
	case POS_GKP:
		return "Goalkeeper"
	case POS_DEF:
		return "Defender"
	case POS_MID:
		return "Midfielder"
	case POS_FWD:
		return "Forward"
	default:
		return "Unknown"
	}
}

func (p Position) Short() string {
	switch p {
	case POS_GKP:
		return "GKP"
	case POS_DEF:
		return "DEF"
	case POS_MID:
		return "MID"
	case POS_FWD:
		return "FWD"
	default:
		return "UNK"
	}
}

// Param is the value used for the position in query strings. Unknown
// positions map to the empty string so that links drop the filter.
func (p Position) Param() string {
	if p == POS_UNKNOWN {
		return ""
	}
	return strconv.Itoa(int(p))
}

// ElementType is the position metadata served in bootstrap-static.
type ElementType struct {
	ID                Position `json:"id"`
	SingularName      string   `json:"singular_name"`
	SingularNameShort string   `json:"singular_name_short"`
	PluralName        string   `json:"plural_name"`
}
