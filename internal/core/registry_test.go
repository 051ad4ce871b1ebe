package core

import (
	"errors"
	"testing"
)

func TestNewRegistry_AssignsSequentialIds(t *testing.T) {
	registry, err := NewRegistry([]ProcessAttrs{
		{ArrivalTime: 0, BurstTime: 5, Priority: 1, PowerHint: 3},
		{ArrivalTime: 1, BurstTime: 3, Priority: 2, PowerHint: 1},
		{ArrivalTime: 2, BurstTime: 2, Priority: 1, PowerHint: 2},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if registry.Len() != 3 {
		t.Fatalf("Len = %d, want 3", registry.Len())
	}
	for i, p := range registry.Processes() {
		if p.Id != i+1 {
			t.Errorf("process %d has id %d, want %d", i, p.Id, i+1)
		}
	}
}

func TestNewRegistry_ProcessesReturnsCopy(t *testing.T) {
	registry, err := NewRegistry([]ProcessAttrs{
		{ArrivalTime: 0, BurstTime: 1, Priority: 0, PowerHint: 1},
	})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	got := registry.Processes()
	got[0].BurstTime = 99
	if registry.Processes()[0].BurstTime != 1 {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestNewRegistry_RejectsInvalidAttributes(t *testing.T) {
	cases := []struct {
		name  string
		attrs ProcessAttrs
		field string
	}{
		{"zero burst", ProcessAttrs{ArrivalTime: 0, BurstTime: 0, PowerHint: 1}, "burst_time"},
		{"negative burst", ProcessAttrs{ArrivalTime: 0, BurstTime: -3, PowerHint: 1}, "burst_time"},
		{"negative arrival", ProcessAttrs{ArrivalTime: -1, BurstTime: 1, PowerHint: 1}, "arrival_time"},
		{"power hint too low", ProcessAttrs{ArrivalTime: 0, BurstTime: 1, PowerHint: 0}, "power_hint"},
		{"power hint too high", ProcessAttrs{ArrivalTime: 0, BurstTime: 1, PowerHint: 4}, "power_hint"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry([]ProcessAttrs{tc.attrs})
			var attrErr *AttributeError
			if !errors.As(err, &attrErr) {
				t.Fatalf("err = %v, want AttributeError", err)
			}
			if attrErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", attrErr.Field, tc.field)
			}
			if attrErr.ProcessId != 1 {
				t.Errorf("ProcessId = %d, want 1", attrErr.ProcessId)
			}
		})
	}
}

func TestNewRegistry_FirstOffendingProcessWins(t *testing.T) {
	_, err := NewRegistry([]ProcessAttrs{
		{ArrivalTime: 0, BurstTime: 1, PowerHint: 1},
		{ArrivalTime: 0, BurstTime: -1, PowerHint: 1},
		{ArrivalTime: 0, BurstTime: 1, PowerHint: 9},
	})
	var attrErr *AttributeError
	if !errors.As(err, &attrErr) {
		t.Fatalf("err = %v, want AttributeError", err)
	}
	if attrErr.ProcessId != 2 {
		t.Errorf("ProcessId = %d, want 2 (first offending process)", attrErr.ProcessId)
	}
}
