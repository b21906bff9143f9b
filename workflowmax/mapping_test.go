package workflowmax

import (
	"encoding/xml"
	"errors"
	"testing"
)

func TestParseTimeEntry_NilNode(t *testing.T) {
	t.Parallel()

	if _, err := parseTimeEntry(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParseTimeEntry_MapsNestedReferences(t *testing.T) {
	t.Parallel()

	raw := `<Time>
  <ID>12345</ID>
  <Job><ID>JOB00003</ID><Name>Afterhours mobile</Name></Job>
  <Task><ID>6487447</ID><Name>Development</Name></Task>
  <Staff><ID>55918</ID><Name>Jane Doe</Name></Staff>
  <Date>20121218</Date>
  <Minutes> 60 </Minutes>
  <Billable>true</Billable>
  <Note>Test note's</Note>
</Time>`

	var node timeNode
	if err := xml.Unmarshal([]byte(raw), &node); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	entry, err := parseTimeEntry(&node)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := TimeEntry{
		ID: "12345", JobID: "JOB00003", JobName: "Afterhours mobile",
		TaskID: "6487447", TaskName: "Development", StaffID: "55918", StaffName: "Jane Doe",
		Date: "20121218", Minutes: 60, Billable: true, Notes: "Test note's",
	}
	if entry != want {
		t.Fatalf("unexpected entry:\n got %+v\nwant %+v", entry, want)
	}
}

func TestParseTimeEntry_InvalidMinutes(t *testing.T) {
	t.Parallel()

	_, err := parseTimeEntry(&timeNode{ID: "1", Minutes: "sixty", Billable: "false"})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "Minutes" {
		t.Fatalf("expected FieldError for Minutes, got %v", err)
	}
}

func TestParseJob_FiltersCompletedTasks(t *testing.T) {
	t.Parallel()

	node := &jobNode{
		ID:     "JOB00003",
		Budget: "1500.75",
		Tasks: []taskNode{
			{ID: "1", EstimatedMinutes: "60", ActualMinutes: "0", Completed: "false", Billable: "true"},
			{ID: "2", EstimatedMinutes: "60", ActualMinutes: "60", Completed: "true", Billable: "true"},
			{ID: "3", EstimatedMinutes: "30", ActualMinutes: "10", Completed: "false", Billable: "false"},
		},
	}

	trackable, err := parseJob(node, true)
	if err != nil {
		t.Fatalf("parse trackable: %v", err)
	}
	if len(trackable.Tasks) != 2 || trackable.Tasks[0].ID != "1" || trackable.Tasks[1].ID != "3" {
		t.Fatalf("unexpected trackable tasks: %+v", trackable.Tasks)
	}
	if trackable.Budget != 1500.75 {
		t.Fatalf("unexpected budget %v", trackable.Budget)
	}

	all, err := parseJob(node, false)
	if err != nil {
		t.Fatalf("parse all: %v", err)
	}
	if len(all.Tasks) != 3 || all.Tasks[1].ID != "2" || !all.Tasks[1].Completed {
		t.Fatalf("unexpected tasks: %+v", all.Tasks)
	}
}

func TestParseJob_PropagatesFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		node  *jobNode
		field string
	}{
		{name: "budget", node: &jobNode{Budget: "n/a"}, field: "Budget"},
		{name: "empty budget", node: &jobNode{Budget: ""}, field: "Budget"},
		{
			name:  "estimated minutes",
			node:  &jobNode{Budget: "0", Tasks: []taskNode{{EstimatedMinutes: "1.5", ActualMinutes: "0", Completed: "false", Billable: "false"}}},
			field: "EstimatedMinutes",
		},
		{
			name:  "completed flag",
			node:  &jobNode{Budget: "0", Tasks: []taskNode{{EstimatedMinutes: "1", ActualMinutes: "0", Completed: "maybe", Billable: "false"}}},
			field: "Completed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseJob(tt.node, false)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) || fieldErr.Field != tt.field {
				t.Fatalf("expected FieldError for %s, got %v", tt.field, err)
			}
		})
	}
}

func TestParseJob_NilNode(t *testing.T) {
	t.Parallel()

	if _, err := parseJob(nil, true); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestTimesheetPayloadTagOrder(t *testing.T) {
	t.Parallel()

	payload, err := xml.Marshal(addTimesheetRequest{
		Job: "J1", Task: "T1", Staff: "S1", Date: "20121218", Minutes: 15, Note: "a < b & c",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "<Timesheet><Job>J1</Job><Task>T1</Task><Staff>S1</Staff><Date>20121218</Date><Minutes>15</Minutes><Note>a &lt; b &amp; c</Note></Timesheet>"
	if string(payload) != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", payload, want)
	}
}
