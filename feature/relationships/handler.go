package relationships

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"follow-checker/core/extract"
	"follow-checker/core/logger"
	"follow-checker/core/present"
	"follow-checker/core/resultcache"
	"follow-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for relationship comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the relationships routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/relationships")
	group.Post("/compare", h.HandleCompare)
	group.Get("/last", h.HandleLastResult)
	group.Get("/last/export", h.HandleExport)
	group.Post("/last/publish", h.HandlePublish)
	group.Delete("/last", h.HandleClear)
}

// MissingFilesMessage is returned when an upload is missing or unreadable.
const MissingFilesMessage = "Please select both followers and following files"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Role  string `json:"role,omitempty"`
}

// LastResultResponse is the body of GET /relationships/last.
type LastResultResponse struct {
	NotFollowingBack []string `json:"not_following_back"`
	NotFollowedBack  []string `json:"not_followed_back,omitempty"`
	Count            int      `json:"count"`
	UpdatedAt        string   `json:"updated_at"`
}

// HandleCompare compares two uploaded exports.
// @Summary Compare Relationship Exports
// @Description Upload the followers and following JSON exports and get the accounts that do not follow back. Both legacy (bare array) and wrapped (relationships_*) exports are accepted.
// @Tags relationships
// @Accept multipart/form-data
// @Produce json
// @Param followers formData file true "Followers export (followers_1.json)"
// @Param following formData file true "Following export (following.json)"
// @Param both formData boolean false "Also list followers you do not follow back"
// @Success 200 {object} relationships.Report "Comparison Report"
// @Failure 400 {object} relationships.ErrorResponse "Missing File"
// @Failure 422 {object} relationships.ErrorResponse "Unusable Export"
// @Failure 500 {object} relationships.ErrorResponse "Internal Server Error"
// @Router /relationships/compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	followers, err := formFile(c, "followers")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MissingFilesMessage})
	}
	following, err := formFile(c, "following")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: MissingFilesMessage})
	}

	report, err := h.service.Compare(c.UserContext(), CompareRequest{
		Followers: followers,
		Following: following,
		Both:      utils.ToBool(c.FormValue("both")),
	})
	if err != nil {
		l.Warn("Comparison failed", zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(report)
}

// HandleLastResult returns the cached result.
// @Summary Get Last Result
// @Description Returns the last comparison result, optionally filtered and sorted.
// @Tags relationships
// @Produce json
// @Param q query string false "Case-insensitive search"
// @Param sort query string false "asc, desc or none"
// @Success 200 {object} relationships.LastResultResponse "Last Result"
// @Failure 404 {object} relationships.ErrorResponse "No Cached Result"
// @Router /relationships/last [get]
func (h *Handler) HandleLastResult(c *fiber.Ctx) error {
	q, err := query(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	accounts, entry, err := h.service.View(c.UserContext(), DirectionNotFollowingBack, q)
	if err != nil {
		return writeError(c, err)
	}

	resp := LastResultResponse{
		NotFollowingBack: accounts,
		Count:            len(accounts),
		UpdatedAt:        entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if entry.Both {
		resp.NotFollowedBack = present.View(entry.NotFollowedBack, q)
	}
	return c.JSON(resp)
}

// HandleExport returns one direction of the cached result as a text file.
// @Summary Export Last Result
// @Description Downloads one direction of the last result as newline-separated text.
// @Tags relationships
// @Produce plain
// @Param direction query string false "not_following_back (default) or not_followed_back"
// @Param q query string false "Case-insensitive search"
// @Param sort query string false "asc, desc or none"
// @Success 200 {string} string "Export"
// @Failure 404 {object} relationships.ErrorResponse "No Cached Result"
// @Router /relationships/last/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	dir, q, err := directionQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	text, err := h.service.ExportText(c.UserContext(), dir, q)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, dir.FileName()))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// HandlePublish uploads one direction of the cached result to the bucket.
// @Summary Publish Last Result
// @Description Uploads the text export of the last result to the results folder of the bucket.
// @Tags relationships
// @Produce json
// @Param direction query string false "not_following_back (default) or not_followed_back"
// @Success 200 {object} map[string]string "Object Name"
// @Failure 404 {object} relationships.ErrorResponse "No Cached Result"
// @Failure 503 {object} relationships.ErrorResponse "Storage Not Configured"
// @Router /relationships/last/publish [post]
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	dir, q, err := directionQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	object, err := h.service.Publish(c.UserContext(), dir, q)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Publish failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"object": object})
}

// HandleClear empties the cache slot.
// @Summary Clear Last Result
// @Tags relationships
// @Success 204 "Cleared"
// @Router /relationships/last [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	if err := h.service.ClearLastResult(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func formFile(c *fiber.Ctx, field string) (BytesSource, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return BytesSource{}, err
	}
	data, err := readUpload(fh)
	if err != nil {
		return BytesSource{}, fmt.Errorf("failed to read %q upload: %w", field, err)
	}
	return BytesSource{Label: fh.Filename, Data: data}, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func query(c *fiber.Ctx) (present.Query, error) {
	order, err := present.ParseOrder(c.Query("sort"))
	if err != nil {
		return present.Query{}, err
	}
	return present.Query{Search: c.Query("q"), Order: order}, nil
}

func directionQuery(c *fiber.Ctx) (Direction, present.Query, error) {
	dir, err := ParseDirection(c.Query("direction"))
	if err != nil {
		return "", present.Query{}, err
	}
	q, err := query(c)
	return dir, q, err
}

// writeError maps service errors to HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	var xe *extract.ExtractionError
	switch {
	case errors.As(err, &xe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: xe.Reason, Role: string(xe.Role)})
	case errors.Is(err, resultcache.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrDirectionUnavailable):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}
