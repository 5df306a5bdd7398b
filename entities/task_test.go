package entities

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]TaskStatus{
		"Pending":     StatusToDo,
		"pending":     StatusToDo,
		"To Do":       StatusToDo,
		"to do":       StatusToDo,
		"":            StatusToDo,
		"  Done  ":    StatusDone,
		"in progress": StatusInProgress,
		"CANCELLED":   StatusCancelled,
	}
	for input, want := range cases {
		if got := NormalizeStatus(input); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeStatusIdempotent(t *testing.T) {
	inputs := []string{"Pending", "To Do", "Done", "Cancelled", "In Progress", "something else"}
	for _, input := range inputs {
		once := NormalizeStatus(input)
		twice := NormalizeStatus(string(once))
		if once != twice {
			t.Errorf("normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeStatusUnknownPassesThrough(t *testing.T) {
	if got := NormalizeStatus("Archived"); got != TaskStatus("Archived") {
		t.Errorf("unknown status mangled: %q", got)
	}
}

func TestStatusScanDefaultsNull(t *testing.T) {
	var s TaskStatus
	if err := s.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if s != StatusToDo {
		t.Errorf("nil status = %q, want To Do", s)
	}
	if err := s.Scan("Pending"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if s != StatusToDo {
		t.Errorf("Pending scanned to %q", s)
	}
}

func TestStatusValueNormalizes(t *testing.T) {
	v, err := TaskStatus("pending").Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "To Do" {
		t.Errorf("stored value = %v, want To Do", v)
	}
}

func TestNormalizePriority(t *testing.T) {
	if got := NormalizePriority(""); got != PriorityMedium {
		t.Errorf("blank priority = %q, want Medium", got)
	}
	if got := NormalizePriority("high"); got != PriorityHigh {
		t.Errorf("high = %q", got)
	}
	var p TaskPriority
	if err := p.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if p != PriorityMedium {
		t.Errorf("nil priority = %q, want Medium", p)
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusDone.Terminal() || !StatusCancelled.Terminal() {
		t.Error("Done and Cancelled should be terminal")
	}
	if StatusToDo.Terminal() || StatusInProgress.Terminal() {
		t.Error("To Do and In Progress should not be terminal")
	}
}
