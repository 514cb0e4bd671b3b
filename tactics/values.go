package tactics

import (
	"errors"

	chess "github.com/garlicgarrison/go-chess"
)

var ErrInvalidValues = errors.New("piece values must be positive and below the king sentinel")

/*
	KingValue is a sentinel strictly above any real piece value. It exists
	only so a king can win comparisons; it is never reported as a capturable
	material value.
*/
const KingValue = 1000

type Values struct {
	Pawn   int `yaml:"pawn"`
	Knight int `yaml:"knight"`
	Bishop int `yaml:"bishop"`
	Rook   int `yaml:"rook"`
	Queen  int `yaml:"queen"`
}

func DefaultValues() Values {
	return Values{
		Pawn:   1,
		Knight: 3,
		Bishop: 3,
		Rook:   5,
		Queen:  9,
	}
}

func (v Values) Validate() error {
	for _, n := range []int{v.Pawn, v.Knight, v.Bishop, v.Rook, v.Queen} {
		if n <= 0 || n >= KingValue {
			return ErrInvalidValues
		}
	}

	return nil
}

func (v Values) Of(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return v.Pawn
	case chess.Knight:
		return v.Knight
	case chess.Bishop:
		return v.Bishop
	case chess.Rook:
		return v.Rook
	case chess.Queen:
		return v.Queen
	case chess.King:
		return KingValue
	default:
		return 0
	}
}
