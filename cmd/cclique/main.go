// Command cclique enumerates weighted cliques over a seed stream.
//
// Usage:
//
//	cclique startwork endwork
//
// startwork ≥ 1 and endwork ≥ startwork select the window of seed
// indices this process handles; endwork −1 means no upper bound. The
// protocol stream (flags, graph, weights, seeds — see package seedio)
// is read from stdin; the solution array goes to stdout and a summary
// line plus any diagnostics to stderr.
//
// Exit status: 0 on success, 2 on a usage error, 1 on any input or
// runtime error.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/wclique/seedio"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cclique startwork endwork")
	fmt.Fprintln(os.Stderr, "  startwork >= 1; endwork >= startwork, or -1 for no upper bound")
	os.Exit(2)
}

func main() {
	if len(os.Args) != 3 {
		usage()
	}
	start, err := strconv.Atoi(os.Args[1])
	if err != nil {
		usage()
	}
	end, err := strconv.Atoi(os.Args[2])
	if err != nil {
		usage()
	}
	if start < 1 || (end != seedio.Unbounded && end < start) {
		usage()
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	res, err := seedio.Run(in, out, seedio.WithWindow(start, end))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cclique: %v\n", err)
		os.Exit(1)
	}
	if err = out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "cclique: flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "seeds read=%d run=%d calls=%d solutions=%d\n",
		res.SeedsRead, res.SeedsRun, res.Stats.Calls, res.Stats.Solutions)
}
