package sim

import "time"

// ta is the single consumer task. It sleeps on the signal and, on every
// wakeup, decides in one locked check whether to help a student, doze off
// again, or go home. Help time is simulated outside the lock, so students
// keep seating themselves while the TA is busy.
type ta struct {
	unit time.Duration
	room *Room
	sig  *Signal
	em   *emitter
}

func (t *ta) run() {
	for {
		t.em.emit(Event{Kind: TASleeping})
		t.sig.AwaitOne()

		switch w, waiting := t.room.Wake(); w {
		case WakeDone:
			t.em.emit(Event{Kind: TADone})
			return
		case WakeHelp:
			t.em.emit(Event{Kind: TAHelping, Waiting: waiting})
			pause(t.unit, 1)
		case WakeIdle:
			// A wakeup with an empty hallway is legitimate: the shutdown
			// notify, or a helped student not yet marked finished.
			t.em.emit(Event{Kind: TAIdle})
			pause(t.unit, 1)
		}
	}
}
