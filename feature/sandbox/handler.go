package sandbox

import (
	"encoding/json"
	"errors"
	"strconv"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultPageSize = 50

// Handler serves the collections of every kind.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{service: service, logger: l}
}

// RegisterRoutes mounts list, create, get and patch routes per collection,
// e.g. /dcim/regions/ and /dcim/regions/:id/.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/status", h.HandleStatus)
	for _, kind := range catalog.Kinds() {
		group := app.Group("/" + kind.Collection())
		group.Get("/", h.HandleList(kind))
		group.Post("/", h.HandleCreate(kind))
		group.Get("/:id", h.HandleGet(kind))
		group.Patch("/:id", h.HandlePatch(kind))
	}
}

// HandleStatus reports the sandbox as reachable.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"sandbox": true, "kinds": len(catalog.Kinds())})
}

// HandleList answers exact-match collection queries.
func (h *Handler) HandleList(kind catalog.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := map[string]string{}
		limit, offset := defaultPageSize, 0
		for key, value := range c.Queries() {
			switch key {
			case "limit":
				if n, err := strconv.Atoi(value); err == nil && n > 0 {
					limit = n
				}
			case "offset":
				if n, err := strconv.Atoi(value); err == nil && n >= 0 {
					offset = n
				}
			case "brief", "format":
			default:
				filters[key] = value
			}
		}

		objects, err := h.service.List(c.Context(), kind, filters)
		if err != nil {
			return h.fail(c, err)
		}

		count := len(objects)
		start := min(offset, count)
		end := min(start+limit, count)
		return c.JSON(fiber.Map{
			"count":    count,
			"next":     nil,
			"previous": nil,
			"results":  objects[start:end],
		})
	}
}

// HandleCreate stores a new object.
func (h *Handler) HandleCreate(kind catalog.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := parseBody(c)
		if err != nil {
			return err
		}
		obj, err := h.service.Create(c.Context(), kind, payload)
		if err != nil {
			return h.fail(c, err)
		}
		logger.WithRayID(h.logger, c).Info("Object created",
			zap.String("kind", string(kind)),
			zap.Any("id", obj["id"]),
		)
		return c.Status(fiber.StatusCreated).JSON(obj)
	}
}

// HandleGet returns one object.
func (h *Handler) HandleGet(kind catalog.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		obj, err := h.service.Get(c.Context(), kind, id)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(obj)
	}
}

// HandlePatch applies a partial update.
func (h *Handler) HandlePatch(kind catalog.Kind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}
		payload, err := parseBody(c)
		if err != nil {
			return err
		}
		obj, err := h.service.Update(c.Context(), kind, id, payload)
		if err != nil {
			return h.fail(c, err)
		}
		logger.WithRayID(h.logger, c).Info("Object updated",
			zap.String("kind", string(kind)),
			zap.Uint("id", id),
		)
		return c.JSON(obj)
	}
}

// fail maps service errors to API answers.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found."})
	default:
		logger.WithRayID(h.logger, c).Error("Sandbox request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "Not found.")
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil || payload == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "JSON parse error")
	}
	return payload, nil
}
