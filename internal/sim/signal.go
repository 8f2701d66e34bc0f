package sim

import "github.com/ChrisGora/semaphore"

// Signal is the counting wake primitive between students and the TA: one
// post per seated student, plus one unpaired post at shutdown. The TA must
// treat every wakeup as "re-check the room", never as proof that a student
// is waiting.
//
// Pending posts never exceed occupied+1 — each ordinary Notify follows an
// admission, consumption only shrinks the count, and only the shutdown
// Notify is unpaired — so a semaphore sized capacity+1 never blocks a
// producer.
type Signal struct {
	sem semaphore.Semaphore
}

// NewSignal returns a signal able to hold max pending notifications.
func NewSignal(max int) *Signal {
	return &Signal{sem: semaphore.Init(max, 0)}
}

// Notify registers one wakeup. Producer side; does not block.
func (s *Signal) Notify() { s.sem.Post() }

// AwaitOne blocks until a notification is pending and consumes exactly one.
// Consumer side; the only blocking call in the engine.
func (s *Signal) AwaitOne() { s.sem.Wait() }
