package core

// PowerHintLow..PowerHintHigh is the accepted power class range.
const (
	PowerHintLow  = 1
	PowerHintHigh = 3
)

// Process is one entry of the input set. Priority is carried for display
// only; the power-aware policy never reads it.
type Process struct {
	Id          int
	ArrivalTime int
	BurstTime   int
	Priority    int
	PowerHint   int
}

// Score is the ranking key of the power-aware policy. Lower runs earlier.
func (p Process) Score() int {
	return p.BurstTime * p.PowerHint
}

// Energy is the energy charged to the process once it has run.
func (p Process) Energy() int {
	return p.BurstTime * p.PowerHint
}

// RankedProcess is a process with its score fixed by the ranking stage.
type RankedProcess struct {
	Process
	Score int
}

// ScheduleSlot is one segment of the Gantt timeline. ProcessId 0 marks an
// idle gap.
type ScheduleSlot struct {
	ProcessId int
	StartTime int
	EndTime   int
}

func (s ScheduleSlot) Idle() bool {
	return s.ProcessId == 0
}
