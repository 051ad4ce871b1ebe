package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"powersched/internal/responses"
)

// Write renders the schedule as text: the Gantt line, the per-process
// table in id order, and the total energy line. Idle gaps are rendered
// in the Gantt line, never omitted.
func Write(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintln(w, GanttLine(response))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "PR", "PH", "CT", "TAT", "WT"})
	for _, d := range response.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.PowerHint),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Total Energy Used = %d\n", response.TotalEnergy)
}

// GanttLine formats the timeline as bracketed tokens separated by
// spaces, e.g. "[idle:0-5] [P1:5-8]".
func GanttLine(response responses.ScheduleResponse) string {
	tokens := make([]string, 0, len(response.Gantt))
	for _, slot := range response.Gantt {
		if slot.Idle {
			tokens = append(tokens, fmt.Sprintf("[idle:%d-%d]", slot.StartTime, slot.EndTime))
		} else {
			tokens = append(tokens, fmt.Sprintf("[P%d:%d-%d]", slot.ProcessId, slot.StartTime, slot.EndTime))
		}
	}
	return strings.Join(tokens, " ")
}
