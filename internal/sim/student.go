package sim

import (
	"math/rand"
	"time"
)

// student is one producer task. It alternates between programming and
// seeking help, up to a fixed number of attempts. A rejected attempt counts
// against the budget just like a seated one, so a student that never finds
// a free chair still finishes after its last attempt.
type student struct {
	id       int
	requests int
	unit     time.Duration
	room     *Room
	sig      *Signal
	rng      *rand.Rand
	em       *emitter
}

func (s *student) run() {
	for i := 0; i < s.requests; i++ {
		units := s.rng.Intn(3) + 1
		s.em.emit(Event{Kind: StudentProgramming, Student: s.id, Units: units})
		pause(s.unit, units)

		if waiting, ok := s.room.TryAdmit(); ok {
			s.em.emit(Event{Kind: StudentSeated, Student: s.id, Waiting: waiting})
			s.sig.Notify()
			pause(s.unit, 1)
		} else {
			s.em.emit(Event{Kind: StudentRejected, Student: s.id, Waiting: waiting})
			pause(s.unit, 1)
		}
	}
	finished, _ := s.room.MarkFinished()
	s.em.emit(Event{Kind: StudentFinished, Student: s.id, Finished: finished})
}
