package board

import "testing"

func TestStartingPositionMoveCount(t *testing.T) {
	pos := NewPosition()
	if n := pos.GenerateLegalMoves().Len(); n != 20 {
		t.Errorf("starting position has %d legal moves, want 20", n)
	}
}

// TestKingMovesRestrictedByQueen: with only kings and a black queen on
// d8, white may move its king only to squares the queen does not
// attack.
func TestKingMovesRestrictedByQueen(t *testing.T) {
	pos := ParseFEN("3qk3/8/8/8/8/8/8/4K3 w - - 0 1")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if from := moves.Get(i).From(); from != E1 {
			t.Errorf("non-king move generated from %s", from)
		}
	}

	// d1 and d2 are covered by the queen's file.
	if moves.Contains(NewMove(E1, D1)) {
		t.Error("e1d1 generated despite queen on d-file")
	}
	if moves.Contains(NewMove(E1, D2)) {
		t.Error("e1d2 generated despite queen on d-file")
	}
	if !moves.Contains(NewMove(E1, F1)) {
		t.Error("e1f1 missing")
	}
	if !moves.Contains(NewMove(E1, E2)) {
		t.Error("e1e2 missing")
	}
	if moves.Len() != 3 {
		t.Errorf("got %d moves, want 3 (e2, f1, f2)", moves.Len())
	}
}

// TestCastlingThroughAttack: kingside castling must not be generated
// when the king would traverse an attacked square.
func TestCastlingThroughAttack(t *testing.T) {
	pos := ParseFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsCastling() {
			t.Errorf("castling %v generated with f1 under attack", moves.Get(i))
		}
	}

	// Control: without the rook on f8, castling is available.
	pos = ParseFEN("7k/8/8/8/8/8/8/4K2R w K - 0 1")
	if !pos.GenerateLegalMoves().Contains(NewCastling(E1, G1)) {
		t.Error("e1g1 castling missing in unobstructed position")
	}
}

func TestCastlingBlocked(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K1NR w K - 0 1")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsCastling() {
			t.Error("castling generated with g1 occupied")
		}
	}
}

func TestCastlingWhileInCheck(t *testing.T) {
	pos := ParseFEN("4r2k/8/8/8/8/8/8/4K2R w K - 0 1")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsCastling() {
			t.Error("castling generated while in check")
		}
	}
}

func TestCastlingWithoutRight(t *testing.T) {
	pos := ParseFEN("7k/8/8/8/8/8/8/4K2R w - - 0 1")

	if pos.GenerateLegalMoves().Contains(NewCastling(E1, G1)) {
		t.Error("castling generated without the right bit")
	}
}

// TestPromotionMoves: a pawn on the seventh with a free eighth rank
// yields exactly four moves, one per promotion kind.
func TestPromotionMoves(t *testing.T) {
	pos := ParseFEN("8/P7/8/8/8/8/8/K6k w - - 0 1")

	moves := pos.GenerateLegalMoves()
	var promos []Move
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).From() == A7 {
			promos = append(promos, moves.Get(i))
		}
	}

	if len(promos) != 4 {
		t.Fatalf("got %d moves from a7, want 4", len(promos))
	}

	seen := map[PieceType]bool{}
	for _, m := range promos {
		if !m.IsPromotion() || m.To() != A8 {
			t.Errorf("unexpected move %v from a7", m)
		}
		seen[m.Promotion()] = true
	}
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !seen[pt] {
			t.Errorf("promotion to %s missing", pt)
		}
	}
}

// TestEnPassant follows the full lifecycle: target set by the double
// push, capture generated with the flag, captured pawn removed from
// behind the destination.
func TestEnPassant(t *testing.T) {
	pos := NewPosition()
	for _, m := range []Move{
		NewMove(E2, E4),
		NewMove(A7, A6),
		NewMove(E4, E5),
		NewMove(D7, D5),
	} {
		pos.MakeMove(m)
	}

	if pos.EnPassant != D6 {
		t.Fatalf("en passant target = %s, want d6", pos.EnPassant)
	}

	ep := NewEnPassant(E5, D6)
	if !pos.GenerateLegalMoves().Contains(ep) {
		t.Fatal("e5d6 en passant not generated")
	}

	pos.MakeMove(ep)
	if pos.PieceAt(D5) != NoPiece {
		t.Error("captured pawn still on d5")
	}
	if pos.PieceAt(D6) != WhitePawn {
		t.Error("capturing pawn not on d6")
	}
	if pos.Pieces[Black][Pawn].PopCount() != 7 {
		t.Errorf("black has %d pawns, want 7", pos.Pieces[Black][Pawn].PopCount())
	}
}

func TestEnPassantExpires(t *testing.T) {
	pos := NewPosition()
	for _, m := range []Move{
		NewMove(E2, E4),
		NewMove(A7, A6),
		NewMove(E4, E5),
		NewMove(D7, D5),
		NewMove(G1, F3), // declines the capture
		NewMove(A6, A5),
	} {
		pos.MakeMove(m)
	}

	if pos.EnPassant != NoSquare {
		t.Errorf("en passant target = %s, want none", pos.EnPassant)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsEnPassant() {
			t.Error("stale en passant capture generated")
		}
	}
}

// TestPinnedPiece: a rook pinned on the e-file may only move along it.
func TestPinnedPiece(t *testing.T) {
	pos := ParseFEN("4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 && m.To().File() != 4 {
			t.Errorf("pinned rook moved off the e-file: %v", m)
		}
	}
}

func TestCheckmateDetection(t *testing.T) {
	pos := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	if !pos.IsCheckmate() {
		t.Error("back rank mate not detected")
	}
	if pos.IsStalemate() {
		t.Error("mate misreported as stalemate")
	}
}

func TestStalemateDetection(t *testing.T) {
	pos := ParseFEN("7k/5Q2/8/8/8/8/8/K7 b - - 0 1")

	if !pos.IsStalemate() {
		t.Error("stalemate not detected")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate misreported as mate")
	}
}

func TestKingCanCaptureChecker(t *testing.T) {
	pos := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	if pos.IsCheckmate() {
		t.Error("position reported as mate although the king can capture the rook")
	}
	if !pos.GenerateLegalMoves().Contains(NewMove(H8, G8)) {
		t.Error("king capture of the checking rook missing")
	}
}
