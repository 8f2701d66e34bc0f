package sim

import "sync"

// Wake is the TA's decision after a wakeup.
type Wake int

const (
	// WakeHelp means a student was waiting and one chair has been freed.
	WakeHelp Wake = iota
	// WakeIdle means nothing to do yet; go back to sleep.
	WakeIdle
	// WakeDone means every student has finished and nobody is waiting.
	WakeDone
)

// Room is the shared waiting-room state: a fixed number of hallway chairs,
// the count of students currently seated, and the progress of the run as a
// whole. mu guards every mutable field; critical sections are short and
// never span a sleep or a semaphore wait.
type Room struct {
	capacity   int
	population int

	mu       sync.Mutex
	occupied int
	finished int
	served   int
	done     bool
}

// NewRoom returns an empty room. Run validates its configuration before
// building a room, so bad arguments here mean caller misuse.
func NewRoom(population, capacity int) *Room {
	if population < 1 {
		panic("room population must be at least 1")
	}
	if capacity < 0 {
		panic("room capacity must not be negative")
	}
	return &Room{capacity: capacity, population: population}
}

// TryAdmit seats a student if a chair is free. It returns the occupancy
// observed under the lock and whether the student was seated; on rejection
// the state is unchanged.
func (r *Room) TryAdmit() (waiting int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.occupied < r.capacity {
		r.occupied++
		return r.occupied, true
	}
	return r.occupied, false
}

// Wake evaluates the room after the TA wakes up, in a single critical
// section: if the run is over and the hallway is empty the TA can go home;
// otherwise a waiting student, if any, gives up a chair to be helped. The
// second result is the occupancy left behind by a WakeHelp.
func (r *Room) Wake() (Wake, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.done && r.occupied == 0:
		return WakeDone, 0
	case r.occupied > 0:
		r.occupied--
		r.served++
		return WakeHelp, r.occupied
	default:
		return WakeIdle, 0
	}
}

// MarkFinished records that one student has completed all of its help
// requests, whether or not any of them were seated. The student completing
// the set flips the done flag.
func (r *Room) MarkFinished() (finished int, done bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished == r.population {
		panic("more students finished than exist")
	}
	r.finished++
	if r.finished == r.population {
		r.done = true
	}
	return r.finished, r.done
}

// ForceDone flips the done flag unconditionally. The coordinator calls it
// after joining every student, just before the shutdown notify.
func (r *Room) ForceDone() {
	r.mu.Lock()
	r.done = true
	r.mu.Unlock()
}

// Done reports whether every student has finished.
func (r *Room) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Occupied reports how many students are seated right now.
func (r *Room) Occupied() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupied
}

// Finished reports how many students have completed all their requests.
func (r *Room) Finished() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finished
}

// Served reports how many help sessions the TA has performed.
func (r *Room) Served() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.served
}
