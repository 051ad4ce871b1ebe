package cli

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"powersched/api"
	"powersched/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()
			app := NewApp(cfg)
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

// NewApp builds the fiber app with all routes registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/power-aware", handler.PowerAware)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}
