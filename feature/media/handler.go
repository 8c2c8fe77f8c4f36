package media

import (
	"strconv"

	"menu-builder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for media.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Post("/:kind", h.HandleUpload)
	group.Get("/:kind/:name", h.HandleGet)
	group.Delete("/:kind/:name", h.HandleDelete)
}

// HandleUpload stores one image and returns its key.
// @Summary Upload Media
// @Description Uploads a restaurant logo or dish image. The returned key goes into the draft's logoKey or imageKey field.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Media kind ('logos' or 'dishes')"
// @Param file formData file true "Image file"
// @Success 200 {object} Object "Stored object"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/media/{kind} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	kind := c.Params("kind")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer file.Close()

	obj, err := h.service.Upload(c.Context(), kind, fileHeader.Header.Get(fiber.HeaderContentType), fileHeader.Size, file)
	if err != nil {
		l.Error("Media upload failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(obj)
}

// HandleGet streams a stored image.
// @Summary Get Media
// @Description Streams a stored logo or dish image by key.
// @Tags media
// @Produce octet-stream
// @Param kind path string true "Media kind"
// @Param name path string true "Object name"
// @Success 200 {file} binary "Image content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/media/{kind}/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("kind") + "/" + c.Params("name")

	reader, obj, err := h.service.Get(c.Context(), key)
	if err != nil {
		l.Warn("Media read failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "media not found"})
	}

	c.Set(fiber.HeaderContentType, obj.ContentType)
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	return c.SendStream(reader, int(obj.Size))
}

// HandleDelete removes a stored image.
// @Summary Delete Media
// @Description Removes a stored logo or dish image by key.
// @Tags media
// @Produce json
// @Param kind path string true "Media kind"
// @Param name path string true "Object name"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /api/media/{kind}/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("kind") + "/" + c.Params("name")

	if err := h.service.Delete(c.Context(), key); err != nil {
		l.Error("Media delete failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
