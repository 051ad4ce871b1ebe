package schedulers

import (
	"powersched/internal/core"
	"powersched/internal/responses"
	"powersched/internal/util"
)

// generateResponse derives per-process and CPU metrics from a finished
// timeline. It double-checks the timeline builder: a turnaround below
// burst or a negative waiting time is reported as an InvariantError,
// never silently folded into the metrics.
func generateResponse(algorithm string, processes []core.Process, slots []core.ScheduleSlot) (responses.ScheduleResponse, error) {
	completion := make(map[int]int, len(processes))
	gantt := make([]responses.SlotResponse, 0, len(slots))
	idleTime := 0
	processSlots := 0

	for _, slot := range slots {
		if slot.Idle() {
			idleTime += slot.EndTime - slot.StartTime
			gantt = append(gantt, responses.SlotResponse{
				Idle:      true,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
			continue
		}
		completion[slot.ProcessId] = slot.EndTime
		processSlots++
		gantt = append(gantt, responses.SlotResponse{
			ProcessId: slot.ProcessId,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	details := make([]responses.ProcessResponse, 0, len(processes))
	totalEnergy := 0
	for _, p := range processes {
		completionTime := completion[p.Id]
		turnAroundTime := completionTime - p.ArrivalTime
		waitingTime := turnAroundTime - p.BurstTime
		if turnAroundTime < p.BurstTime {
			return responses.ScheduleResponse{}, &core.InvariantError{
				ProcessId: p.Id,
				Detail:    "turnaround time below burst time",
			}
		}
		if waitingTime < 0 {
			return responses.ScheduleResponse{}, &core.InvariantError{
				ProcessId: p.Id,
				Detail:    "negative waiting time",
			}
		}

		energy := p.Energy()
		totalEnergy += energy
		details = append(details, responses.ProcessResponse{
			ProcessId:      p.Id,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			PowerHint:      p.PowerHint,
			CompletionTime: completionTime,
			TurnAroundTime: turnAroundTime,
			WaitingTime:    waitingTime,
			Energy:         energy,
		})
	}

	totalTime := 0
	if len(slots) > 0 {
		totalTime = slots[len(slots)-1].EndTime
	}
	contextSwitches := 0
	if processSlots > 1 {
		contextSwitches = processSlots - 1
	}

	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(details)

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(processes)) / float64(totalTime)
	}

	response := responses.ScheduleResponse{
		Algorithm:             algorithm,
		Gantt:                 gantt,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		ContextSwitches:       contextSwitches,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		TotalEnergy:           totalEnergy,
		Details:               details,
	}
	return response, nil
}
