package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"8/8/8/8/8/8/8/4K2k b - - 42 99",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			if got := ParseFEN(fen).ToFEN(); got != fen {
				t.Errorf("round trip mismatch:\n got %s\nwant %s", got, fen)
			}
		})
	}
}

func TestParseFENStartingPosition(t *testing.T) {
	pos := NewPosition()

	if pos.SideToMove != White {
		t.Error("side to move is not white")
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("castling rights = %s, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant = %s, want none", pos.EnPassant)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}
	if pos.UndoDepth() != 0 {
		t.Errorf("undo stack height = %d, want 0", pos.UndoDepth())
	}
	if pos.AllOccupied.PopCount() != 32 {
		t.Errorf("%d pieces on the board, want 32", pos.AllOccupied.PopCount())
	}
	if pos.PieceAt(E1) != WhiteKing || pos.PieceAt(E8) != BlackKing {
		t.Error("kings not on their home squares")
	}
	if pos.PieceAt(D1) != WhiteQueen || pos.PieceAt(D8) != BlackQueen {
		t.Error("queens not on their home squares")
	}
}

// TestParseFENDefaults: missing trailing fields default to empty/zero
// instead of rejecting the input.
func TestParseFENDefaults(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K3")

	if pos.SideToMove != White {
		t.Error("missing side field did not default to white")
	}
	if pos.CastlingRights != NoCastling {
		t.Error("missing castling field did not default to none")
	}
	if pos.EnPassant != NoSquare {
		t.Error("missing en passant field did not default to none")
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("clocks = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestParseFENMalformedFields(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K3 b zz x9 nope -3")

	if pos.SideToMove != Black {
		t.Error("side to move not parsed")
	}
	if pos.CastlingRights != NoCastling {
		t.Error("garbage castling field did not default to none")
	}
	if pos.EnPassant != NoSquare {
		t.Error("garbage en passant field did not default to none")
	}
	if pos.HalfMoveClock != 0 {
		t.Error("garbage half-move clock did not default to 0")
	}
}

func TestParseFENSkipsUnknownPieceChars(t *testing.T) {
	pos := ParseFEN("k6x/8/8/8/8/8/8/K7 w - - 0 1")

	if pos.AllOccupied.PopCount() != 2 {
		t.Errorf("%d pieces placed, want 2", pos.AllOccupied.PopCount())
	}
	if pos.PieceAt(A8) != BlackKing || pos.PieceAt(A1) != WhiteKing {
		t.Error("kings misplaced")
	}
}

func TestHashStub(t *testing.T) {
	if h := NewPosition().Hash(); h != 0 {
		t.Errorf("hash stub returned %d, want the constant 0", h)
	}
}

func TestParseFENEnPassantDash(t *testing.T) {
	pos := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if pos.EnPassant != NoSquare {
		t.Errorf("en passant = %s, want none for \"-\"", pos.EnPassant)
	}
}
