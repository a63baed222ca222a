package board

import "fmt"

// MakeMove applies a move produced by the generator for this position.
// A move with no piece on its from-square is a generator or search bug
// and panics. Exactly one undo record is pushed.
func (p *Position) MakeMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()

	piece := p.PieceAt(from)
	if piece == NoPiece || piece.Color() != us {
		panic(fmt.Sprintf("MakeMove %s: no %s piece on %s", m, us, from))
	}
	pt := piece.Type()

	// Capture removal happens before the undo record so the record can
	// name the captured kind.
	captured := NoPiece
	if m.IsEnPassant() {
		capturedSq := to - 8
		if us == Black {
			capturedSq = to + 8
		}
		captured = p.removePiece(capturedSq)
	} else if p.Occupied[them]&SquareBB(to) != 0 {
		captured = p.removePiece(to)
	}

	p.undo = append(p.undo, Undo{
		Move:           m,
		Captured:       captured,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
	})

	p.EnPassant = NoSquare

	switch {
	case m.IsCastling():
		p.Pieces[us][King] ^= SquareBB(from) | SquareBB(to)
		rookFrom, rookTo := castlingRookSquares(from, to)
		p.Pieces[us][Rook] ^= SquareBB(rookFrom) | SquareBB(rookTo)
	case m.IsEnPassant():
		p.Pieces[us][Pawn] ^= SquareBB(from) | SquareBB(to)
	default:
		p.Pieces[us][pt] ^= SquareBB(from) | SquareBB(to)
		if m.IsPromotion() {
			p.Pieces[us][Pawn] &^= SquareBB(to)
			p.Pieces[us][m.Promotion()] |= SquareBB(to)
		}
	}

	// Castling rights. A king move drops both of its side's rights; any
	// move touching a rook home square drops that square's right, which
	// covers rook moves, rook captures, and captures onto the corner.
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	// A double push exposes the skipped square to en passant.
	if pt == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		p.EnPassant = Square((int(from) + int(to)) / 2)
	}

	p.updateOccupied()

	p.SideToMove = them

	// Reset takes priority over increment.
	if pt == Pawn || captured != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}
}

// UnmakeMove reverses the most recent MakeMove. Calling it with an
// empty undo stack panics. Afterwards the position is bitwise equal to
// what it was before the matched make.
func (p *Position) UnmakeMove() {
	if len(p.undo) == 0 {
		panic("UnmakeMove: empty undo stack")
	}
	u := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]

	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove
	m := u.Move
	from := m.From()
	to := m.To()

	switch {
	case m.IsCastling():
		p.Pieces[us][King] ^= SquareBB(from) | SquareBB(to)
		rookFrom, rookTo := castlingRookSquares(from, to)
		p.Pieces[us][Rook] ^= SquareBB(rookFrom) | SquareBB(rookTo)
	case m.IsEnPassant():
		p.Pieces[us][Pawn] ^= SquareBB(from) | SquareBB(to)
		capturedSq := to - 8
		if us == Black {
			capturedSq = to + 8
		}
		p.setPiece(u.Captured, capturedSq)
	case m.IsPromotion():
		p.Pieces[us][m.Promotion()] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(from)
		p.setPiece(u.Captured, to)
	default:
		pt := p.PieceAt(to).Type()
		p.Pieces[us][pt] ^= SquareBB(from) | SquareBB(to)
		p.setPiece(u.Captured, to)
	}

	p.CastlingRights = u.CastlingRights
	p.EnPassant = u.EnPassant
	p.HalfMoveClock = u.HalfMoveClock

	p.updateOccupied()

	if us == Black {
		p.FullMoveNumber--
	}
}

// castlingRookSquares maps the king's castling step to the rook's hop:
// h-file to f-file kingside, a-file to d-file queenside, on the king's
// rank.
func castlingRookSquares(kingFrom, kingTo Square) (rookFrom, rookTo Square) {
	if kingTo > kingFrom {
		return NewSquare(7, kingFrom.Rank()), NewSquare(5, kingFrom.Rank())
	}
	return NewSquare(0, kingFrom.Rank()), NewSquare(3, kingFrom.Rank())
}
