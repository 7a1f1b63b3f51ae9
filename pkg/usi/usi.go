// Package usi implements a minimal USI (Universal Shogi Interface) session
// loop: position setup and move application, fronting a placeholder mover
// rather than a search engine. See http://shogidokoro.starfree.jp/usi.html.
package usi

import (
	"context"
	"strconv"
	"strings"

	"github.com/herohde/shogi/pkg/board"
	"github.com/herohde/shogi/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// ProtocolName is the line a GUI sends to select the USI protocol.
const ProtocolName = "usi"

// Driver runs a USI session against an Engine, consuming lines from in and
// producing response lines on the returned channel until "quit" or in is
// closed.
type Driver struct {
	closed chan struct{}
}

// NewDriver starts the session loop in the background.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 16)
	d := &Driver{closed: make(chan struct{})}

	go func() {
		defer close(out)
		defer close(d.closed)

		for line := range in {
			if !d.dispatch(ctx, e, strings.TrimSpace(line), out) {
				return
			}
		}
	}()
	return d, out
}

// Closed is signaled once the session loop has exited.
func (d *Driver) Closed() <-chan struct{} {
	return d.closed
}

// dispatch handles one input line, returning false iff the session should end.
func (d *Driver) dispatch(ctx context.Context, e *engine.Engine, line string, out chan<- string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case ProtocolName:
		out <- "id name " + e.Name()
		out <- "id author " + e.Author()
		out <- "usiok"

	case "isready":
		out <- "readyok"

	case "usinewgame":
		if err := e.Reset(ctx, board.StartingSFEN); err != nil {
			logw.Errorf(ctx, "usinewgame reset failed: %v", err)
		}

	case "position":
		if err := handlePosition(ctx, e, fields[1:]); err != nil {
			logw.Errorf(ctx, "position failed: %v", err)
		}

	case "go":
		m, ok := e.BestMove(ctx, parseGoOptions(fields[1:]))
		if !ok {
			out <- "bestmove resign"
			break
		}
		out <- "bestmove " + m.USI()

	case "stop":
		// No active search to interrupt; a GUI issuing stop before go
		// simply gets nothing to halt.

	case "quit":
		return false
	}
	return true
}

// parseGoOptions implements the subset of "go"'s arguments the placeholder
// mover can meaningfully accept: "depth N". Unrecognized or malformed tokens
// are ignored rather than rejected, matching GUIs that send fields (e.g.
// "btime", "byoyomi") this engine has no use for.
func parseGoOptions(args []string) engine.GoOptions {
	var opt engine.GoOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil && d >= 0 {
				opt.DepthLimit = lang.Some(uint(d))
			}
			i++
		}
	}
	return opt
}

// handlePosition implements "position [startpos|sfen <sfen>] [moves m1 m2 ...]".
func handlePosition(ctx context.Context, e *engine.Engine, args []string) error {
	if len(args) == 0 {
		return nil
	}

	movesIdx := len(args)
	for i, a := range args {
		if a == "moves" {
			movesIdx = i
			break
		}
	}

	var sfen string
	switch args[0] {
	case "startpos":
		sfen = board.StartingSFEN
	case "sfen":
		sfen = strings.Join(args[1:movesIdx], " ")
	default:
		sfen = strings.Join(args[:movesIdx], " ")
	}
	if err := e.Reset(ctx, sfen); err != nil {
		return err
	}

	if movesIdx < len(args) {
		for _, mv := range args[movesIdx+1:] {
			if err := e.Push(ctx, mv); err != nil {
				return err
			}
		}
	}
	return nil
}
