package schedulers

import (
	"log"
	"sort"

	"powersched/internal/core"
	"powersched/internal/requests"
	"powersched/internal/responses"
)

// ScheduleShortestJobFirst is the non-preemptive variant: burst time is
// the selection priority among arrived processes.
func ScheduleShortestJobFirst(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	registry, err := core.NewRegistry(request.Attrs())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	candidates := registry.Processes()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BurstTime < candidates[j].BurstTime
	})

	slots := BuildTimeline(candidates)
	return generateResponse(AlgorithmShortestJobFirst, registry.Processes(), slots)
}
