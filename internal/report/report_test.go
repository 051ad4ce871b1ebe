package report

import (
	"bytes"
	"strings"
	"testing"

	"powersched/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm: "power_aware",
		Gantt: []responses.SlotResponse{
			{Idle: true, StartTime: 0, EndTime: 5},
			{ProcessId: 1, StartTime: 5, EndTime: 8},
		},
		TotalEnergy: 3,
		Details: []responses.ProcessResponse{
			{
				ProcessId: 1, ArrivalTime: 5, BurstTime: 3, Priority: 1, PowerHint: 1,
				CompletionTime: 8, TurnAroundTime: 3, WaitingTime: 0, Energy: 3,
			},
		},
	}
}

func TestGanttLine_RendersIdleGaps(t *testing.T) {
	got := GanttLine(sampleResponse())
	want := "[idle:0-5] [P1:5-8]"
	if got != want {
		t.Errorf("GanttLine = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, sampleResponse())
	out := buf.String()

	lines := strings.SplitN(out, "\n", 2)
	if lines[0] != "[idle:0-5] [P1:5-8]" {
		t.Errorf("first line = %q, want the Gantt chart", lines[0])
	}
	for _, column := range []string{"PID", "AT", "BT", "PR", "PH", "CT", "TAT", "WT"} {
		if !strings.Contains(out, column) {
			t.Errorf("output is missing table column %q", column)
		}
	}
	if !strings.Contains(out, "Total Energy Used = 3") {
		t.Errorf("output is missing the total energy line:\n%s", out)
	}
}
