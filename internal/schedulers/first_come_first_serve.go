package schedulers

import (
	"log"
	"sort"

	"powersched/internal/core"
	"powersched/internal/requests"
	"powersched/internal/responses"
)

// ScheduleFirstComeFirstServe dispatches in arrival order; ties keep
// input order.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	registry, err := core.NewRegistry(request.Attrs())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	candidates := registry.Processes()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ArrivalTime < candidates[j].ArrivalTime
	})

	slots := BuildTimeline(candidates)
	return generateResponse(AlgorithmFirstComeFirstServe, registry.Processes(), slots)
}
