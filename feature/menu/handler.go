package menu

import (
	"menu-builder/core/logger"
	"menu-builder/core/middleware/auth"
	"menu-builder/feature/menu/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for menu operations.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the menu routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/menu/save", h.HandleSave)
	app.Get("/restaurants/:id/menu", h.HandleGetMenu)
	app.Put("/restaurants/:id/categories/order", h.HandleReorderCategories)
	app.Put("/restaurants/:rid/categories/:id/dishes/order", h.HandleReorderDishes)
}

// orderRequest is the body of the standalone reorder operations.
type orderRequest struct {
	OrderedIDs []uint `json:"orderedIds"`
}

// HandleSave persists a full menu draft in one transaction.
// @Summary Save Menu Draft
// @Description Reconciles the client draft (creates, updates, deletes, ordering) against storage and returns the canonical tree.
// @Tags menu
// @Accept json
// @Produce json
// @Param draft body reconcile.SaveRequest true "Draft tree and change sets"
// @Success 200 {object} reconcile.SaveResult "Reconciled tree"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Conflict"
// @Router /api/menu/save [post]
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	userID, ok := auth.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	var req reconcile.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed draft: " + err.Error()})
	}

	result, err := h.service.Save(c.Context(), userID, req)
	if err != nil {
		l.Error("Draft save failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(result)
}

// HandleGetMenu returns the restaurant tree in display order.
// @Summary Get Menu
// @Description Returns the full Restaurant/Category/Dish tree ordered by the order column.
// @Tags menu
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant "Menu tree"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/restaurants/{id}/menu [get]
func (h *Handler) HandleGetMenu(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	userID, ok := auth.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}
	restaurantID, err := c.ParamsInt("id")
	if err != nil || restaurantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid restaurant id"})
	}

	tree, err := h.service.Menu(c.Context(), userID, uint(restaurantID))
	if err != nil {
		l.Error("Menu read failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(tree)
}

// HandleReorderCategories rewrites category display order for one restaurant.
// @Summary Reorder Categories
// @Description Rewrites the order column so display order matches the submitted id list. Usable without a full save.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param order body orderRequest true "Ordered category ids"
// @Success 200 {object} models.Restaurant "Menu tree"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/restaurants/{id}/categories/order [put]
func (h *Handler) HandleReorderCategories(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	userID, ok := auth.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}
	restaurantID, err := c.ParamsInt("id")
	if err != nil || restaurantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid restaurant id"})
	}

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed order list"})
	}

	tree, err := h.service.ReorderCategories(c.Context(), userID, uint(restaurantID), req.OrderedIDs)
	if err != nil {
		l.Error("Category reorder failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(tree)
}

// HandleReorderDishes rewrites dish display order for one category.
// @Summary Reorder Dishes
// @Description Rewrites the order column for one category's dishes.
// @Tags menu
// @Accept json
// @Produce json
// @Param rid path int true "Restaurant ID"
// @Param id path int true "Category ID"
// @Param order body orderRequest true "Ordered dish ids"
// @Success 200 {object} models.Restaurant "Menu tree"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/restaurants/{rid}/categories/{id}/dishes/order [put]
func (h *Handler) HandleReorderDishes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	userID, ok := auth.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}
	restaurantID, err := c.ParamsInt("rid")
	if err != nil || restaurantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid restaurant id"})
	}
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}

	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed order list"})
	}

	tree, err := h.service.ReorderDishes(c.Context(), userID, uint(restaurantID), uint(categoryID), req.OrderedIDs)
	if err != nil {
		l.Error("Dish reorder failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(tree)
}

// respondError maps reconciliation error kinds to HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch reconcile.KindOf(err) {
	case reconcile.KindValidation:
		status = fiber.StatusBadRequest
	case reconcile.KindConflict:
		status = fiber.StatusConflict
	case reconcile.KindNotFound:
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  string(reconcile.KindOf(err)),
	})
}
