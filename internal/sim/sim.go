// Package sim implements the sleeping-TA office-hours simulation: many
// student tasks compete for a bounded number of hallway chairs, a single TA
// serves seated students one at a time, and a termination handshake lets the
// TA exit only after every student has truly finished.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"
)

// Configuration errors reported by Run before any task is started.
var (
	ErrNoStudents     = errors.New("population must be at least one student")
	ErrNegativeChairs = errors.New("chair count must not be negative")
	ErrNoRequests     = errors.New("help requests per student must be at least one")
)

// DefaultHelpRequests is how many times each student asks for help.
const DefaultHelpRequests = 3

// Config describes one simulation run.
type Config struct {
	Students     int           // number of student tasks, > 0
	Chairs       int           // hallway capacity, >= 0
	HelpRequests int           // attempts per student; 0 means DefaultHelpRequests
	Unit         time.Duration // length of one simulated time unit; 0 disables delays
	Seed         int64         // seed for the per-student work durations
	Log          io.Writer     // receives one line per event; nil discards them
	Observe      func(Event)   // optional hook, called for every event in emission order
}

func (c *Config) validate() error {
	if c.Students < 1 {
		return ErrNoStudents
	}
	if c.Chairs < 0 {
		return ErrNegativeChairs
	}
	if c.HelpRequests < 0 {
		return ErrNoRequests
	}
	return nil
}

// Stats summarizes a completed run.
type Stats struct {
	Finished int // students that completed all their help requests
	Served   int // help sessions the TA performed
	Occupied int // chairs still occupied at the end; always zero
}

// Run performs one simulation and blocks until both the TA and every
// student have terminated.
func Run(cfg Config) (Stats, error) {
	if err := cfg.validate(); err != nil {
		return Stats{}, err
	}
	requests := cfg.HelpRequests
	if requests == 0 {
		requests = DefaultHelpRequests
	}

	room := NewRoom(cfg.Students, cfg.Chairs)
	sig := NewSignal(cfg.Chairs + 1)
	em := &emitter{log: cfg.Log, observe: cfg.Observe}

	taDone := make(chan struct{})
	t := &ta{unit: cfg.Unit, room: room, sig: sig, em: em}
	go func() {
		defer close(taDone)
		t.run()
	}()

	var wg sync.WaitGroup
	for id := 1; id <= cfg.Students; id++ {
		s := &student{
			id:       id,
			requests: requests,
			unit:     cfg.Unit,
			room:     room,
			sig:      sig,
			rng:      rand.New(rand.NewSource(cfg.Seed + int64(id))),
			em:       em,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.run()
		}()
	}
	wg.Wait()

	// Every student has been joined. Flip the flag once more (a no-op when
	// the last MarkFinished already did) and wake the TA in case it is
	// blocked with nothing pending.
	room.ForceDone()
	sig.Notify()
	<-taDone

	return Stats{
		Finished: room.Finished(),
		Served:   room.Served(),
		Occupied: room.Occupied(),
	}, nil
}

// emitter serializes the event stream: lines from concurrent tasks must not
// interleave mid-line, and Observe must see events one at a time.
type emitter struct {
	mu      sync.Mutex
	log     io.Writer
	observe func(Event)
}

func (em *emitter) emit(e Event) {
	em.mu.Lock()
	defer em.mu.Unlock()
	if em.log != nil {
		fmt.Fprintln(em.log, e)
	}
	if em.observe != nil {
		em.observe(e)
	}
}

func pause(unit time.Duration, units int) {
	if unit > 0 {
		time.Sleep(time.Duration(units) * unit)
	}
}
