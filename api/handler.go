package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"powersched/config"
	"powersched/internal/core"
	"powersched/internal/requests"
	"powersched/internal/responses"
	"powersched/internal/schedulers"
)

type SchedulerHandler interface {
	PowerAware(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) PowerAware(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPowerAware)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.AlgorithmPriority)
}

// AllAlgorithms runs every algorithm over the same process set and keys
// the responses by algorithm name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	results := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		response, err := schedulers.Run(algorithm, &request)
		if err != nil {
			return scheduleError(ctx, err)
		}
		results[algorithm] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.Run(algorithm, &request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	var attrErr *core.AttributeError
	if errors.As(err, &attrErr) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": attrErr.Error(),
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "can not proccess request",
	})
}
