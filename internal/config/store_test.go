package config

import (
	"errors"
	"testing"
)

// TestDefaultSettings verifies the startup values
func TestDefaultSettings(t *testing.T) {
	s := Default()
	if s.CountOnClick != 2 || s.MoveSpeed != 1 || s.Size != 10 ||
		s.MaxDistance != 100 || !s.GenerateAutomatically || s.DecreaseSize != 0.01 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

// TestFieldSnap verifies step rounding and range clamping
func TestFieldSnap(t *testing.T) {
	tests := []struct {
		field string
		in    float64
		want  float64
	}{
		{"countOnClick", 3.4, 3},
		{"countOnClick", 0, 1},
		{"countOnClick", 42, 10},
		{"maxDistance", 150.6, 151},
		{"decreaseSize", 0.034, 0.03},
		{"decreaseSize", 0.1, 0.1},
		{"decreaseSize", 1, 0.1},
		{"size", -5, 1},
	}
	for _, tt := range tests {
		f, err := Lookup(tt.field)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.field, err)
		}
		if got := f.Snap(tt.in); got != tt.want {
			t.Errorf("%s.Snap(%v) = %v, want %v", tt.field, tt.in, got, tt.want)
		}
	}
}

// TestLookupUnknown verifies the sentinel error for unknown fields
func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("gravity"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	s := NewStore(Default())
	if err := s.SetNumber("gravity", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField from SetNumber, got %v", err)
	}
}

// TestStoreNotifiesOnChange verifies subscribers see old and new values
func TestStoreNotifiesOnChange(t *testing.T) {
	s := NewStore(Default())

	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	if err := s.SetNumber("decreaseSize", 0.1); err != nil {
		t.Fatalf("SetNumber: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 change, got %d", len(got))
	}
	if got[0].Field != "decreaseSize" || got[0].Old.DecreaseSize != 0.01 || got[0].New.DecreaseSize != 0.1 {
		t.Errorf("unexpected change: %+v", got[0])
	}
	if s.Current().DecreaseSize != 0.1 {
		t.Errorf("Current().DecreaseSize = %v, want 0.1", s.Current().DecreaseSize)
	}

	// Same value again is not a change
	if err := s.SetNumber("decreaseSize", 0.1); err != nil {
		t.Fatalf("SetNumber: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected no notification for unchanged value, got %d changes", len(got))
	}
}

// TestStoreToggle verifies checkbox fields flip
func TestStoreToggle(t *testing.T) {
	s := NewStore(Default())
	if err := s.Toggle("generateAutomatically"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if s.Current().GenerateAutomatically {
		t.Error("expected GenerateAutomatically false after toggle")
	}
	if err := s.Toggle("generateAutomatically"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !s.Current().GenerateAutomatically {
		t.Error("expected GenerateAutomatically true after second toggle")
	}
}

// TestStoreUnsubscribe verifies removed subscribers stop receiving changes
func TestStoreUnsubscribe(t *testing.T) {
	s := NewStore(Default())

	var a, b int
	unsubA := s.Subscribe(func(Change) { a++ })
	s.Subscribe(func(Change) { b++ })

	_ = s.SetNumber("size", 5)
	unsubA()
	_ = s.SetNumber("size", 6)

	if a != 1 {
		t.Errorf("unsubscribed callback ran %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining callback ran %d times, want 2", b)
	}
}

// TestStoreUnsubscribeDuringNotify verifies a callback may remove itself
func TestStoreUnsubscribeDuringNotify(t *testing.T) {
	s := NewStore(Default())

	var calls int
	var unsub func()
	unsub = s.Subscribe(func(Change) {
		calls++
		unsub()
	})
	s.Subscribe(func(Change) { calls++ })

	_ = s.SetNumber("size", 5)
	_ = s.SetNumber("size", 6)

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestCurrentIsCopy verifies callers cannot mutate the store through Current
func TestCurrentIsCopy(t *testing.T) {
	s := NewStore(Default())
	c := s.Current()
	c.Size = 99
	if s.Current().Size != 10 {
		t.Errorf("store mutated through copy: Size = %v", s.Current().Size)
	}
}
