// Package engine wraps a board.Board with the bookkeeping a USI session
// needs: a name/author identity, thread-safe position mutation, and a
// placeholder mover. It deliberately has no search or evaluation -- those
// are out of scope for this library.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/shogi/pkg/board"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Engine encapsulates a single game in progress.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	seed int64

	b  *board.Board
	mu sync.Mutex
}

// GoOptions hold the session parameters for a single "go" command. The
// placeholder mover has no search to bound, so DepthLimit is accepted and
// logged but otherwise unused.
type GoOptions struct {
	// DepthLimit, if set, would cap a search to the given ply depth.
	DepthLimit lang.Optional[uint]
}

func (o GoOptions) String() string {
	if v, ok := o.DepthLimit.V(); ok {
		return fmt.Sprintf("[depth=%v]", v)
	}
	return "[]"
}

// Option is an engine creation option.
type Option func(*Engine)

// WithZobrist configures the engine to use the given random seed for its
// Zobrist table instead of the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	_ = e.Reset(ctx, board.StartingSFEN)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// SFEN returns the current position in SFEN format.
func (e *Engine) SFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.SFEN()
}

// Reset resets the engine to the position described by the given SFEN.
func (e *Engine) Reset(ctx context.Context, sfen string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := board.DecodeSFEN(e.zt, sfen)
	if err != nil {
		return err
	}
	e.b = b

	logw.Infof(ctx, "New position: %v", e.b.SFEN())
	return nil
}

// Push applies a USI move string, usually an opponent move relayed by the
// GUI. The move must be legal in the current position.
func (e *Engine) Push(ctx context.Context, usi string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := board.ParseUSIMove(usi)
	if err != nil {
		return err
	}
	if !e.b.IsLegal(m) {
		return fmt.Errorf("%w: illegal move: %v", board.ErrInvalidMove, m)
	}
	if err := e.b.Push(m); err != nil {
		return err
	}

	logw.Infof(ctx, "Push %v: %v", m, e.b.SFEN())
	return nil
}

// BestMove reports the first legal move found in the current position. It is
// a placeholder mover, not a search: the library's scope stops at position
// representation and move generation, not play strength. opt is accepted and
// logged for session-parameter plumbing, but a depth limit has nothing to
// bound here.
func (e *Engine) BestMove(ctx context.Context, opt GoOptions) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var found board.Move
	ok := false
	e.b.GenerateLegal(func(m board.Move) bool {
		found = m
		ok = true
		return false
	})
	if !ok {
		logw.Infof(ctx, "BestMove %v: no legal move, resigning", opt)
		return board.Move{}, false
	}

	logw.Infof(ctx, "BestMove %v: %v", opt, found)
	return found, true
}
