package schedulers

import (
	"fmt"

	"powersched/internal/requests"
	"powersched/internal/responses"
)

const (
	AlgorithmPowerAware          = "power_aware"
	AlgorithmFirstComeFirstServe = "fcfs"
	AlgorithmShortestJobFirst    = "sjf"
	AlgorithmPriority            = "priority"
)

// Run dispatches to the algorithm by name.
func Run(algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	switch algorithm {
	case AlgorithmPowerAware:
		return SchedulePowerAware(request)
	case AlgorithmFirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case AlgorithmShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case AlgorithmPriority:
		return SchedulePriority(request)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("unknown algorithm %q", algorithm)
}

// Algorithms lists every algorithm Run accepts, in reporting order.
func Algorithms() []string {
	return []string{
		AlgorithmPowerAware,
		AlgorithmFirstComeFirstServe,
		AlgorithmShortestJobFirst,
		AlgorithmPriority,
	}
}
