package board

import (
	"strconv"
	"strings"
)

// StartFEN is the starting position in Forsyth-Edwards Notation.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	return ParseFEN(StartFEN)
}

// ParseFEN builds a position from the six FEN fields. Parsing is
// best-effort: malformed or missing sub-fields default to empty/zero
// and unrecognised placement characters are skipped, so any input
// yields a position.
func ParseFEN(fen string) *Position {
	parts := strings.Fields(fen)

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}

	if len(parts) > 0 {
		parsePiecePlacement(pos, parts[0])
	}

	if len(parts) > 1 && parts[1] == "b" {
		pos.SideToMove = Black
	}

	if len(parts) > 2 {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				pos.CastlingRights |= WhiteKingSideCastle
			case 'Q':
				pos.CastlingRights |= WhiteQueenSideCastle
			case 'k':
				pos.CastlingRights |= BlackKingSideCastle
			case 'q':
				pos.CastlingRights |= BlackQueenSideCastle
			}
		}
	}

	if len(parts) > 3 && parts[3] != "-" {
		if sq, err := ParseSquare(parts[3]); err == nil {
			pos.EnPassant = sq
		}
	}

	if len(parts) > 4 {
		if hmc, err := strconv.Atoi(parts[4]); err == nil && hmc >= 0 {
			pos.HalfMoveClock = hmc
		}
	}

	if len(parts) > 5 {
		if fmn, err := strconv.Atoi(parts[5]); err == nil && fmn > 0 {
			pos.FullMoveNumber = fmn
		}
	}

	pos.updateOccupied()

	return pos
}

// parsePiecePlacement fills the piece bitboards from the first FEN
// field, rank 8 down to rank 1, files a to h.
func parsePiecePlacement(pos *Position, placement string) {
	rank, file := 7, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
			if rank < 0 {
				return
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := PieceFromChar(c)
			if piece == NoPiece || file > 7 {
				continue
			}
			pos.setPiece(piece, NewSquare(file, rank))
			file++
		}
	}
}

// ToFEN serializes the position back to Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
