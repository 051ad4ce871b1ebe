package requests

import "powersched/internal/core"

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
	PowerHint   int `json:"power_hint"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// Attrs converts the request rows to registry input, in request order.
// Ids are assigned by the registry, not taken from the request.
func (r *ScheduleRequests) Attrs() []core.ProcessAttrs {
	attrs := make([]core.ProcessAttrs, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		attrs = append(attrs, core.ProcessAttrs{
			ArrivalTime: j.ArrivalTime,
			BurstTime:   j.BurstTime,
			Priority:    j.Priority,
			PowerHint:   j.PowerHint,
		})
	}
	return attrs
}
