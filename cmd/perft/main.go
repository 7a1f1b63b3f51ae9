// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/shogi/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 3, "Search depth")
	position = flag.String("sfen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = board.StartingSFEN
	}

	zt := board.NewZobristTable(0)
	b, err := board.DecodeSFEN(zt, *position)
	if err != nil {
		logw.Exitf(ctx, "Invalid sfen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func perft(b *board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	var moves []board.Move
	b.GenerateLegal(func(m board.Move) bool {
		moves = append(moves, m)
		return true
	})

	for _, m := range moves {
		if err := b.Push(m); err != nil {
			logw.Exitf(context.Background(), "push %v failed: %v", m, err)
		}
		count := perft(b, depth-1, false)
		if err := b.Pop(); err != nil {
			logw.Exitf(context.Background(), "pop %v failed: %v", m, err)
		}

		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
