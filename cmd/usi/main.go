package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/shogi/pkg/engine"
	"github.com/herohde/shogi/pkg/usi"
	"github.com/seekerror/logw"
)

var seed = flag.Int64("seed", 0, "Zobrist table seed")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: usi [options]

usi is a minimal USI shogi engine with a placeholder mover.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "shogi", "herohde", engine.WithZobrist(*seed))

	in := engine.ReadStdinLines(ctx)
	first, ok := <-in
	if !ok || first != usi.ProtocolName {
		logw.Exitf(ctx, "Protocol not supported")
	}

	// Re-inject the protocol line so the driver's id/usiok handshake fires.
	relay := make(chan string, 1)
	relay <- first
	go func() {
		defer close(relay)
		for line := range in {
			relay <- line
		}
	}()

	driver, out := usi.NewDriver(ctx, e, relay)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
