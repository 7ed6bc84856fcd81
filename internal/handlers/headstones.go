package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/ChaseHampton/headstones/internal/catalog"
	"github.com/ChaseHampton/headstones/internal/db"
	"github.com/ChaseHampton/headstones/internal/record"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeadstoneStore is the part of db.Store the review API needs.
type HeadstoneStore interface {
	RecordCount() int
	ReadRecord(ctx context.Context, index int) (*record.Headstone, error)
	WriteRecord(ctx context.Context, index int, h *record.Headstone) error
	GravesiteNumber(ctx context.Context, index int) (string, error)
	Reference() *record.Reference
}

// Register mounts the review API on app.
func Register(app *fiber.App, store HeadstoneStore, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	api := app.Group("/api")
	api.Get("/headstones", CountHandler(store))
	api.Get("/headstones/:index", ReadHandler(store, logger))
	api.Put("/headstones/:index", WriteHandler(store, logger))
	api.Get("/headstones/:index/gravesite", GravesiteHandler(store, logger))
	api.Get("/reference", ReferenceHandler(store))
	api.Get("/catalog/jurisdictions", JurisdictionsHandler())
	api.Get("/catalog/emblems", EmblemsHandler())
}

func CountHandler(store HeadstoneStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"count": store.RecordCount()})
	}
}

func ReadHandler(store HeadstoneStore, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid headstone index"})
		}

		h, err := store.ReadRecord(c.UserContext(), index)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(h)
	}
}

func WriteHandler(store HeadstoneStore, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid headstone index"})
		}

		h := record.NewHeadstone()
		if err := c.BodyParser(h); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid headstone body"})
		}

		if err := store.WriteRecord(c.UserContext(), index, h); err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(h)
	}
}

func GravesiteHandler(store HeadstoneStore, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid headstone index"})
		}

		gravesite, err := store.GravesiteNumber(c.UserContext(), index)
		if err != nil {
			return writeError(c, logger, err)
		}
		return c.JSON(fiber.Map{"gravesiteNumber": gravesite})
	}
}

func ReferenceHandler(store HeadstoneStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Reference())
	}
}

func JurisdictionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.Jurisdictions())
	}
}

func EmblemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.Emblems())
	}
}

func writeError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	var bind *db.BindError
	switch {
	case errors.As(err, &bind):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"columns": bind.Columns(),
		})
	case errors.Is(err, db.ErrIndexOutOfRange), errors.Is(err, db.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
