package schedulers

import "powersched/internal/core"

// BuildTimeline walks the candidate order on a single logical CPU.
// At each step the earliest candidate whose arrival time has passed is
// dispatched for its full burst; when nobody has arrived yet the clock
// jumps to the next arrival and the gap is recorded as an idle slot.
// The clock starts at 0, so a late first arrival produces a leading
// idle slot.
func BuildTimeline(candidates []core.Process) []core.ScheduleSlot {
	slots := make([]core.ScheduleSlot, 0, len(candidates))
	dispatched := make([]bool, len(candidates))
	currentTime := 0

	for remaining := len(candidates); remaining > 0; {
		pick := -1
		for i := range candidates {
			if !dispatched[i] && candidates[i].ArrivalTime <= currentTime {
				pick = i
				break
			}
		}

		if pick < 0 {
			nextArrival := -1
			for i := range candidates {
				if !dispatched[i] && (nextArrival < 0 || candidates[i].ArrivalTime < nextArrival) {
					nextArrival = candidates[i].ArrivalTime
				}
			}
			slots = append(slots, core.ScheduleSlot{StartTime: currentTime, EndTime: nextArrival})
			currentTime = nextArrival
			continue
		}

		p := candidates[pick]
		slots = append(slots, core.ScheduleSlot{
			ProcessId: p.Id,
			StartTime: currentTime,
			EndTime:   currentTime + p.BurstTime,
		})
		currentTime += p.BurstTime
		dispatched[pick] = true
		remaining--
	}

	return slots
}
