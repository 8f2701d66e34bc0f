// Officehours runs one sleeping-TA simulation: N students share a hallway
// with a fixed number of chairs while a single TA helps them one at a time.
// Every state transition is reported as one line on stdout; -trace
// additionally records the run in the form read by trace2html.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tasim/officehours/internal/sim"
)

func main() {
	students := flag.Int("students", 0, "number of students (required, > 0)")
	chairs := flag.Int("chairs", 3, "number of hallway chairs")
	requests := flag.Int("requests", sim.DefaultHelpRequests, "help requests per student")
	unit := flag.Duration("unit", time.Second, "length of one simulated time unit")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	traceFile := flag.String("trace", "", "write a machine-readable trace to this file")
	flag.Parse()

	if err := run(*students, *chairs, *requests, *unit, *seed, *traceFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(students, chairs, requests int, unit time.Duration, seed int64, traceFile string) (err error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := sim.Config{
		Students:     students,
		Chairs:       chairs,
		HelpRequests: requests,
		Unit:         unit,
		Seed:         seed,
		Log:          os.Stdout,
	}

	if traceFile != "" {
		f, cerr := os.Create(traceFile)
		if cerr != nil {
			return fmt.Errorf("error creating trace file: %w", cerr)
		}
		defer func() { err = errors.Join(err, f.Close()) }()
		cfg.Observe = func(e sim.Event) { fmt.Fprintln(f, e.Record()) }
	}

	stats, err := sim.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("run complete: %d students finished, TA helped %d times\n", stats.Finished, stats.Served)
	return nil
}
