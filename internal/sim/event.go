package sim

import "fmt"

// Kind identifies one task state transition.
type Kind int

const (
	StudentProgramming Kind = iota
	StudentSeated
	StudentRejected
	StudentFinished
	TASleeping
	TAHelping
	TAIdle
	TADone
)

var kindNames = [...]string{
	StudentProgramming: "programming",
	StudentSeated:      "seated",
	StudentRejected:    "rejected",
	StudentFinished:    "finished",
	TASleeping:         "sleeping",
	TAHelping:          "helping",
	TAIdle:             "idle",
	TADone:             "done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a name produced by Kind.String back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Event is one state transition of a student or the TA. Student is zero for
// TA events. Waiting is the hallway occupancy observed under the room lock
// by transitions that touch it. Units is the programming time, in time
// units, for StudentProgramming events.
type Event struct {
	Kind     Kind
	Student  int
	Waiting  int
	Finished int
	Units    int
}

// String renders the human-readable status line for the event.
func (e Event) String() string {
	switch e.Kind {
	case StudentProgramming:
		return fmt.Sprintf("Student %d: programming for %d units", e.Student, e.Units)
	case StudentSeated:
		return fmt.Sprintf("Student %d: sitting in the hallway, students waiting = %d", e.Student, e.Waiting)
	case StudentRejected:
		return fmt.Sprintf("Student %d: hallway full, will try again later", e.Student)
	case StudentFinished:
		return fmt.Sprintf("Student %d: done for the day, finished count = %d", e.Student, e.Finished)
	case TASleeping:
		return "TA: waiting for a student (sleeping)"
	case TAHelping:
		return fmt.Sprintf("TA: helping a student, students still waiting = %d", e.Waiting)
	case TAIdle:
		return "TA: woke up but no students are waiting"
	case TADone:
		return "TA: all students are done, going home"
	}
	return fmt.Sprintf("unknown event %d", int(e.Kind))
}

// Record renders the tab-separated trace form read by cmd/trace2html.
func (e Event) Record() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d", e.Kind, e.Student, e.Waiting, e.Finished, e.Units)
}
