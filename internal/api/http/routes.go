package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/wethr/internal/feedback"
	"github.com/i474232898/wethr/internal/store"
	"github.com/i474232898/wethr/internal/weather"
)

var validate = validator.New()

// Pipeline runs one weather update.
type Pipeline interface {
	Run(ctx context.Context, location string) (weather.Update, error)
}

// History is the read side of the history store.
type History interface {
	HistoryFor(location string) map[string]weather.Reading
	Lookup(location, timestamp string) (weather.Reading, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, pipeline Pipeline, history History, box *feedback.Box) {
	v1 := app.Group("/api/v1")

	v1.Post("/weather/updates", func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
		defer cancel()

		update, err := pipeline.Run(ctx, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, weather.ErrInvalidLocation):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			case errors.Is(err, weather.ErrCollect):
				return fiber.NewError(fiber.StatusServiceUnavailable, "failed to collect weather data")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "failed to produce weather update")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(update)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entries := history.HistoryFor(q.Location)
		if len(entries) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "no weather history for requested location")
		}

		out := make([]historyEntry, 0, len(entries))
		for _, ts := range store.Timestamps(entries) {
			out = append(out, historyEntry{Timestamp: ts, Reading: entries[ts]})
		}

		return c.JSON(fiber.Map{
			"location": q.Location,
			"entries":  out,
		})
	})

	v1.Get("/weather/history/:timestamp", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ts := c.Params("timestamp")
		r, err := history.Lookup(q.Location, ts)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested timestamp")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(historyEntry{Timestamp: ts, Reading: r})
	})

	v1.Post("/feedback", func(c *fiber.Ctx) error {
		var req feedbackRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := box.Submit(req.Location, req.Report)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(report)
	})

	v1.Get("/feedback", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		reports := box.ForLocation(q.Location)
		if reports == nil {
			reports = []feedback.Report{}
		}
		return c.JSON(reports)
	})
}

type updateRequest struct {
	Location string `json:"location" validate:"required"`
}

type feedbackRequest struct {
	Location string `json:"location" validate:"required"`
	Report   string `json:"report" validate:"required,max=1000"`
}

type historyEntry struct {
	Timestamp string          `json:"timestamp"`
	Reading   weather.Reading `json:"reading"`
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	q := locationQuery{Location: c.Query("location")}

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
