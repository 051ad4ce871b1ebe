package schedulers

import (
	"log"
	"sort"

	"powersched/internal/core"
	"powersched/internal/requests"
	"powersched/internal/responses"
)

// SchedulePriority dispatches by priority value, lower value first. This
// is the only algorithm that reads the priority field; the power-aware
// policy treats it as display-only.
func SchedulePriority(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	registry, err := core.NewRegistry(request.Attrs())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	candidates := registry.Processes()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority < candidates[j].Priority
	})

	slots := BuildTimeline(candidates)
	return generateResponse(AlgorithmPriority, registry.Processes(), slots)
}
