// Package uci implements the line-based host protocol.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tjamescouch/agentchat-chess/internal/board"
	"github.com/tjamescouch/agentchat-chess/internal/engine"
	"github.com/tjamescouch/agentchat-chess/internal/storage"
)

// UCI drives the engine from a line-based command stream. Host input
// errors are skipped silently; the protocol is best-effort and the
// host recovers.
type UCI struct {
	engine   *engine.Engine
	position *board.Position

	defaultDepth int
	echoBoard    bool
}

// New creates a protocol handler. prefs may be nil, in which case the
// defaults apply.
func New(eng *engine.Engine, prefs *storage.Preferences) *UCI {
	u := &UCI{
		engine:       eng,
		position:     board.NewPosition(),
		defaultDepth: 6,
	}
	if prefs != nil {
		if prefs.DefaultDepth > 0 {
			u.defaultDepth = prefs.DefaultDepth
		}
		u.echoBoard = prefs.EchoBoard
	}
	return u
}

// Run reads commands from stdin until "quit" or end of input.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			fmt.Println("id name AgentChess")
			fmt.Println("id author AgentChess Team")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.position = board.NewPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "perft":
			u.handlePerft(args)
		case "d":
			fmt.Println(u.position.String())
		case "quit":
			return
		}
	}
}

// handlePosition replaces the current position and applies the listed
// moves in order. Unparseable moves are skipped.
//
// Accepted forms:
//   - position startpos [moves e2e4 e7e5 ...]
//   - position fen <six fields> [moves e2e4 ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesIdx := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesIdx = i
			break
		}
	}
	moveStart := movesIdx + 1

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
	case "fen":
		u.position = board.ParseFEN(strings.Join(args[1:movesIdx], " "))
	default:
		return
	}

	if moveStart < len(args) {
		for _, moveStr := range args[moveStart:] {
			move := u.parseMove(moveStr)
			if move == board.NoMove {
				continue
			}
			u.position.MakeMove(move)
		}
	}

	if u.echoBoard {
		fmt.Println(u.position.String())
	}
}

// parseMove decodes long algebraic move text against the current
// position. Matching against the generated legal moves sets the
// castling and en passant flags the make routine depends on. Returns
// NoMove for anything that does not name a legal move.
func (u *UCI) parseMove(moveStr string) board.Move {
	if len(moveStr) < 4 {
		return board.NoMove
	}

	from, err := board.ParseSquare(moveStr[0:2])
	if err != nil {
		return board.NoMove
	}
	to, err := board.ParseSquare(moveStr[2:4])
	if err != nil {
		return board.NoMove
	}

	var promo board.PieceType = board.NoPieceType
	if len(moveStr) >= 5 {
		switch moveStr[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		}
	}

	moves := u.position.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			if m.Promotion() == promo {
				return m
			}
		} else if promo == board.NoPieceType {
			return m
		}
	}

	return board.NoMove
}

// handleGo searches to the requested depth and reports the best move.
func (u *UCI) handleGo(args []string) {
	depth := u.defaultDepth
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil && d > 0 {
				depth = d
			}
			i++
		}
	}

	if !u.position.HasLegalMoves() {
		if u.position.IsInCheck(u.position.SideToMove) {
			fmt.Println("info string checkmate")
		} else {
			fmt.Println("info string stalemate")
		}
		fmt.Println("bestmove 0000")
		return
	}

	move, score := u.engine.Search(u.position, depth)
	fmt.Printf("info depth %d score cp %d\n", depth, score)
	fmt.Printf("bestmove %s\n", move)
}

// handlePerft runs a perft count at the requested depth.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d >= 0 {
			depth = d
		}
	}

	nodes := u.engine.Perft(u.position, depth)
	fmt.Printf("Nodes searched: %d\n", nodes)
}
