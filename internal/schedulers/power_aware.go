package schedulers

import (
	"log"
	"sort"

	"powersched/internal/core"
	"powersched/internal/requests"
	"powersched/internal/responses"
)

// Rank computes score = burst * power hint for every process and orders
// by ascending score. The sort is stable, so equal scores keep input
// order; that input-order tie-break also decides the case of equal
// arrival time and equal score.
func Rank(processes []core.Process) []core.RankedProcess {
	ranked := make([]core.RankedProcess, len(processes))
	for i, p := range processes {
		ranked[i] = core.RankedProcess{Process: p, Score: p.Score()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// SchedulePowerAware runs the power-aware policy: rank once by score,
// then dispatch non-preemptively with ranked order as the selection
// priority among arrived processes.
func SchedulePowerAware(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	log.Println("running power-aware algorithm ...")
	registry, err := core.NewRegistry(request.Attrs())
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	ranked := Rank(registry.Processes())
	candidates := make([]core.Process, len(ranked))
	for i, r := range ranked {
		candidates[i] = r.Process
	}

	slots := BuildTimeline(candidates)
	return generateResponse(AlgorithmPowerAware, registry.Processes(), slots)
}
