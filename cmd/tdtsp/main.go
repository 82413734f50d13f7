/*
tdtsp solves the exact Hamiltonian cycle (traveling salesman) problem by
dynamic programming over a supplied tree decomposition.

usage: tdtsp [ -width <n> | -deadline <duration> | -debug | -h ] <file>

flags:

	-width int
	      reject any bag wider than this many vertices (default 12)
	-deadline duration
	      abort and exit 3 once this much wall-clock time has elapsed (default: no deadline)
	-debug
	      print every bag's memo table to stderr after solving
	-h    prints this message and exits

exit codes:

	0  success, tour printed to stdout
	1  the input file could not be parsed
	2  the graph or decomposition was structurally invalid
	3  no Hamiltonian cycle exists, or the deadline was exceeded
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Mattias1/graph-tools/tsptree"
	"github.com/Mattias1/graph-tools/tspfile"
)

const ErrMessage = "tdtsp"

const (
	exitOK = iota
	exitParseError
	exitInvalidInput
	exitNoTour
)

type args struct {
	width    int
	deadline time.Duration
	debug    bool
	file     string
}

func parseArgs() args {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr,
			"usage: tdtsp [ -width <n> | -deadline <duration> | -debug | -h ] <file>\n",
			"\n",
			"flags:\n\n",
		)
		flag.PrintDefaults()
	}
	width := flag.Int("width", tsptree.DefaultOptions().WidthThreshold, "reject any bag wider than this many vertices")
	deadline := flag.Duration("deadline", 0, "abort once this much wall-clock time has elapsed (0 = no deadline)")
	debug := flag.Bool("debug", false, "print every bag's memo table to stderr after solving")
	help := flag.Bool("h", false, "prints this message and exits")
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(exitOK)
	}
	if flag.NArg() != 1 {
		parserError("exactly one positional argument required: <file>")
	}

	return args{width: *width, deadline: *deadline, debug: *debug, file: flag.Arg(0)}
}

func parserError(message string) {
	fmt.Fprintln(os.Stderr, message)
	flag.Usage()
	os.Exit(exitParseError)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	args := parseArgs()

	f, err := os.Open(args.file)
	if err != nil {
		log.Printf("%s: %s", ErrMessage, err)
		os.Exit(exitParseError)
	}
	defer f.Close()

	pf, err := tspfile.Read(f, tspfile.DefaultOptions())
	if err != nil {
		log.Printf("%s: %s", ErrMessage, err)
		os.Exit(exitParseError)
	}
	for _, w := range pf.Warnings {
		log.Printf("%s: line %d: %s", ErrMessage, w.Line, w.Reason)
	}
	if !pf.HasDecomp {
		log.Printf("%s: input has no BAG_COORD_SECTION", ErrMessage)
		os.Exit(exitInvalidInput)
	}

	opts := tsptree.DefaultOptions()
	opts.WidthThreshold = args.width
	opts.Deadline = args.deadline
	opts.Debug = args.debug

	res, err := tsptree.Solve(pf.Graph, pf.Decomp, opts)
	switch err {
	case nil:
	case tsptree.ErrInvalidDecomposition, tsptree.ErrWidthExceeded:
		log.Printf("%s: %s", ErrMessage, err)
		os.Exit(exitInvalidInput)
	case tsptree.ErrNoTour, tsptree.ErrCancelled:
		log.Printf("%s: %s", ErrMessage, err)
		os.Exit(exitNoTour)
	default:
		log.Printf("%s: %s", ErrMessage, err)
		os.Exit(exitInvalidInput)
	}

	if order, ok := tsptree.CanonicalizeOrder(res.Edges); ok {
		fmt.Printf("cost %d\n", res.Cost)
		for _, v := range order {
			fmt.Println(v)
		}
	} else {
		fmt.Printf("cost %d\n", res.Cost)
		for _, e := range res.Edges {
			fmt.Printf("%d %d\n", e[0], e[1])
		}
	}

	if args.debug {
		for bagID, table := range res.Tables {
			log.Printf("bag %d: %d states", bagID, len(table))
			for state, cost := range table {
				log.Printf("  %s -> %d", state, cost)
			}
		}
	}
}
