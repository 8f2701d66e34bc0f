package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/tasim/officehours/internal/sim"
)

func TestScanTraceErrors(t *testing.T) {
	tests := []struct {
		file    string
		wantErr string
	}{
		{"testdata/short_record.trace", "want 5 fields"},
		{"testdata/bad_kind.trace", "unknown event kind"},
		{"testdata/bad_number.trace", "bad number"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := scanTrace(tt.file)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestScanTrace(t *testing.T) {
	tr, err := scanTrace("testdata/valid.trace")
	if err != nil {
		t.Fatal(err)
	}

	if tr.name != "valid.trace" {
		t.Errorf("name = %q, want %q", tr.name, "valid.trace")
	}

	wantEvents := []sim.Event{
		{Kind: sim.TASleeping},
		{Kind: sim.StudentProgramming, Student: 1, Units: 2},
		{Kind: sim.StudentSeated, Student: 1, Waiting: 1},
		{Kind: sim.TAHelping, Waiting: 0},
		{Kind: sim.StudentFinished, Student: 1, Finished: 1},
		{Kind: sim.TADone},
	}

	if !slices.Equal(tr.events, wantEvents) {
		t.Errorf("events = %v, want %v", tr.events, wantEvents)
	}
}

func TestReportMarkdown(t *testing.T) {
	tr := &trace{
		name: "run.trace",
		events: []sim.Event{
			{Kind: sim.StudentSeated, Student: 2, Waiting: 1},
			{Kind: sim.TAHelping},
		},
	}
	got := reportMarkdown("Report", []*trace{tr})

	for _, want := range []string{
		"# Report",
		"## run.trace",
		"2 events: 1 seated, 1 helping",
		"| 1 | student 2 | seated | 1 | 0 |",
		"| 2 | TA | helping | 0 | 0 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
}
