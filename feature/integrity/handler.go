package integrity

import (
	"errors"

	"follow-checker/core/logger"
	"follow-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/cache", h.HandleCacheCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Cache).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": statusOf(err), "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if cacheReport, err := h.service.CheckCache(); err != nil {
		report["cache"] = map[string]interface{}{"status": statusOf(err), "error": err.Error()}
	} else {
		report["cache"] = cacheReport
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the exports and results folders exist in the storage bucket. With fix=true the bucket and missing folders are created.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage Not Configured"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if utils.ToBool(c.Query("fix")) {
		l.Info("Attempting to fix storage structure")
		fixed, err := h.service.RepairStructure(c.UserContext())
		if err != nil {
			l.Error("Structure fix failed", zap.Error(err))
			return c.Status(httpStatus(err)).JSON(fiber.Map{
				"error":   "Failed to fix structure",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  fixed,
		})
	}

	missing, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(httpStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleCacheCheck checks the result cache schema.
// @Summary Check Cache Schema
// @Description Checks if the result cache table matches the expected columns.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.CacheReport "Cache Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Database Not Configured"
// @Router /integrity/cache [get]
func (h *Handler) HandleCacheCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting cache schema check")

	report, err := h.service.CheckCache()
	if err != nil {
		l.Error("Cache schema check failed", zap.Error(err))
		return c.Status(httpStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

func httpStatus(err error) int {
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrDatabaseUnavailable) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func statusOf(err error) string {
	if httpStatus(err) == fiber.StatusServiceUnavailable {
		return "unavailable"
	}
	return "error"
}
