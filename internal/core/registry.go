package core

// ProcessAttrs is the raw attribute tuple of one input row, before ids
// are assigned.
type ProcessAttrs struct {
	ArrivalTime int
	BurstTime   int
	Priority    int
	PowerHint   int
}

// Registry holds the validated, immutable process set for one run.
type Registry struct {
	processes []Process
}

// NewRegistry assigns sequential 1-based ids in input order and validates
// every attribute tuple. It fails on the first offending process.
func NewRegistry(attrs []ProcessAttrs) (*Registry, error) {
	processes := make([]Process, 0, len(attrs))
	for i, a := range attrs {
		id := i + 1
		if a.ArrivalTime < 0 {
			return nil, &AttributeError{ProcessId: id, Field: "arrival_time", Value: a.ArrivalTime}
		}
		if a.BurstTime <= 0 {
			return nil, &AttributeError{ProcessId: id, Field: "burst_time", Value: a.BurstTime}
		}
		if a.PowerHint < PowerHintLow || a.PowerHint > PowerHintHigh {
			return nil, &AttributeError{ProcessId: id, Field: "power_hint", Value: a.PowerHint}
		}
		processes = append(processes, Process{
			Id:          id,
			ArrivalTime: a.ArrivalTime,
			BurstTime:   a.BurstTime,
			Priority:    a.Priority,
			PowerHint:   a.PowerHint,
		})
	}
	return &Registry{processes: processes}, nil
}

// Processes returns a copy of the process set, in id order.
func (r *Registry) Processes() []Process {
	out := make([]Process, len(r.processes))
	copy(out, r.processes)
	return out
}

func (r *Registry) Len() int {
	return len(r.processes)
}
