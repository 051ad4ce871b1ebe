package core

import "fmt"

// AttributeError reports a process attribute outside its accepted range.
// The whole run is rejected on the first offending process; attributes
// are never clamped.
type AttributeError struct {
	ProcessId int
	Field     string
	Value     int
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("process %d: invalid %s %d", e.ProcessId, e.Field, e.Value)
}

// InvariantError signals a defect in the timeline builder detected by the
// metrics stage (turnaround below burst, negative waiting time). It is
// never a user error.
type InvariantError struct {
	ProcessId int
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated for process %d: %s", e.ProcessId, e.Detail)
}
