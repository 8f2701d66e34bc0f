package sim

import "testing"

func TestNewRoomPanics(t *testing.T) {
	tests := []struct {
		name       string
		population int
		capacity   int
	}{
		{"zero population", 0, 3},
		{"negative population", -1, 3},
		{"negative capacity", 5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRoom(%d, %d) did not panic", tt.population, tt.capacity)
				}
			}()
			NewRoom(tt.population, tt.capacity)
		})
	}
}

func TestTryAdmitBoundary(t *testing.T) {
	r := NewRoom(5, 2)

	if waiting, ok := r.TryAdmit(); !ok || waiting != 1 {
		t.Errorf("first TryAdmit = (%d, %t), want (1, true)", waiting, ok)
	}
	if waiting, ok := r.TryAdmit(); !ok || waiting != 2 {
		t.Errorf("second TryAdmit = (%d, %t), want (2, true)", waiting, ok)
	}
	if waiting, ok := r.TryAdmit(); ok || waiting != 2 {
		t.Errorf("third TryAdmit = (%d, %t), want (2, false)", waiting, ok)
	}
	if got := r.Occupied(); got != 2 {
		t.Errorf("Occupied = %d, want 2", got)
	}
}

func TestTryAdmitZeroCapacity(t *testing.T) {
	r := NewRoom(3, 0)
	for i := 0; i < 5; i++ {
		if waiting, ok := r.TryAdmit(); ok || waiting != 0 {
			t.Fatalf("TryAdmit #%d = (%d, %t), want (0, false)", i+1, waiting, ok)
		}
	}
}

func TestWake(t *testing.T) {
	r := NewRoom(2, 2)

	// Empty hallway, run not over: a wakeup with nothing to do.
	if w, _ := r.Wake(); w != WakeIdle {
		t.Errorf("Wake on empty running room = %v, want WakeIdle", w)
	}

	r.TryAdmit()
	r.TryAdmit()
	if w, waiting := r.Wake(); w != WakeHelp || waiting != 1 {
		t.Errorf("Wake with 2 seated = (%v, %d), want (WakeHelp, 1)", w, waiting)
	}

	// Done but one student still seated: helping wins over going home.
	r.ForceDone()
	if w, waiting := r.Wake(); w != WakeHelp || waiting != 0 {
		t.Errorf("Wake done with 1 seated = (%v, %d), want (WakeHelp, 0)", w, waiting)
	}

	if w, _ := r.Wake(); w != WakeDone {
		t.Errorf("Wake done with empty hallway = %v, want WakeDone", w)
	}
	if got := r.Served(); got != 2 {
		t.Errorf("Served = %d, want 2", got)
	}
}

func TestMarkFinished(t *testing.T) {
	r := NewRoom(3, 1)

	want := []struct {
		finished int
		done     bool
	}{{1, false}, {2, false}, {3, true}}
	for i, w := range want {
		finished, done := r.MarkFinished()
		if finished != w.finished || done != w.done {
			t.Errorf("MarkFinished #%d = (%d, %t), want (%d, %t)", i+1, finished, done, w.finished, w.done)
		}
	}
	if !r.Done() {
		t.Error("Done = false after all students finished")
	}

	defer func() {
		if recover() == nil {
			t.Error("MarkFinished past the population did not panic")
		}
	}()
	r.MarkFinished()
}

func TestForceDone(t *testing.T) {
	r := NewRoom(4, 2)
	if r.Done() {
		t.Fatal("new room reports done")
	}
	r.ForceDone()
	if !r.Done() {
		t.Error("Done = false after ForceDone")
	}
}
