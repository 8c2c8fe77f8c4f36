package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-builder/core/middleware/auth"
	"menu-builder/feature/menu/models"
	"menu-builder/feature/menu/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestApp mounts the handler behind a middleware that injects the caller
// identity directly, standing in for the JWT middleware.
func newTestApp(t *testing.T, userID uint) (*fiber.App, *gorm.DB) {
	t.Helper()
	svc, db := newTestService(t)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID > 0 {
			c.Locals(auth.UserIDKey, userID)
		}
		return c.Next()
	})
	NewHandler(svc, nil).RegisterRoutes(app.Group("/api"))
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHandleSave(t *testing.T) {
	app, _ := newTestApp(t, 1)

	body := map[string]any{
		"restaurant": map[string]any{
			"id":   "tmp_r1",
			"name": "The Golden Spoon",
			"categories": []map[string]any{
				{
					"id":   "tmp_c1",
					"name": "Starters",
					"dishes": []map[string]any{
						{"id": "tmp_d1", "title": "Soup", "price": "4.50"},
					},
				},
			},
		},
		"changes": map[string]any{
			"changedCategories": []string{"tmp_c1"},
			"changedDishes":     []string{"tmp_d1"},
		},
	}

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/menu/save", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var result reconcile.SaveResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.NotNil(t, result.Restaurant)
	assert.NotZero(t, result.Restaurant.ID)
	require.Len(t, result.Restaurant.Categories, 1)
	assert.NotZero(t, result.Restaurant.Categories[0].ID, "temporary ids must come back durable")
	require.Len(t, result.Restaurant.Categories[0].Dishes, 1)
	assert.Equal(t, "4.50", result.Restaurant.Categories[0].Dishes[0].Price)
}

func TestHandleSave_Unauthenticated(t *testing.T) {
	app, _ := newTestApp(t, 0)
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/menu/save", map[string]any{
		"restaurant": map[string]any{"name": "X"},
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHandleSave_ValidationError(t *testing.T) {
	app, _ := newTestApp(t, 1)
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/menu/save", map[string]any{
		"restaurant": map[string]any{"name": ""},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "validation", body["kind"])
}

func TestHandleSave_RenameConflict(t *testing.T) {
	app, db := newTestApp(t, 1)
	rid, cid := seedMenu(t, db)
	require.NoError(t, db.Create(&models.Category{RestaurantID: rid, Name: "Drinks", Order: 1}).Error)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/menu/save", map[string]any{
		"restaurant": map[string]any{
			"id":   rid,
			"name": "Burger",
			"categories": []map[string]any{
				{"id": cid, "name": "Drinks"},
			},
		},
		"changes": map[string]any{
			"changedCategories": []uint{cid},
		},
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode, string(raw))

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "conflict", body["kind"])
}

func TestHandleGetMenu(t *testing.T) {
	app, db := newTestApp(t, 1)
	rid, _ := seedMenu(t, db)

	resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/restaurants/%d/menu", rid), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tree models.Restaurant
	require.NoError(t, json.Unmarshal(raw, &tree))
	assert.Equal(t, "Burger", tree.Name)
	require.Len(t, tree.Categories, 1)
	assert.Equal(t, "Burgers", tree.Categories[0].Name)

	t.Run("Foreign restaurant", func(t *testing.T) {
		foreign, fdb := newTestApp(t, 2)
		frid, _ := seedMenu(t, fdb) // owned by user 1
		resp, _ := doJSON(t, foreign, fiber.MethodGet, fmt.Sprintf("/api/restaurants/%d/menu", frid), nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bad id", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/restaurants/abc/menu", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleReorderCategories(t *testing.T) {
	app, db := newTestApp(t, 1)
	rid, c1 := seedMenu(t, db)
	c2 := models.Category{RestaurantID: rid, Name: "Drinks", Order: 1}
	require.NoError(t, db.Create(&c2).Error)

	resp, raw := doJSON(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/restaurants/%d/categories/order", rid),
		map[string]any{"orderedIds": []uint{c2.ID, c1}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	var tree models.Restaurant
	require.NoError(t, json.Unmarshal(raw, &tree))
	require.Len(t, tree.Categories, 2)
	assert.Equal(t, c2.ID, tree.Categories[0].ID)
	assert.Equal(t, c1, tree.Categories[1].ID)
}

func TestHandleReorderDishes(t *testing.T) {
	app, db := newTestApp(t, 1)
	rid, cid := seedMenu(t, db)
	d2 := models.Dish{CategoryID: cid, Title: "Hamburger", Price: "10.99", Order: 1}
	require.NoError(t, db.Create(&d2).Error)

	resp, raw := doJSON(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/restaurants/%d/categories/%d/dishes/order", rid, cid),
		map[string]any{"orderedIds": []uint{d2.ID}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	t.Run("Unknown category", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPut,
			fmt.Sprintf("/api/restaurants/%d/categories/999/dishes/order", rid),
			map[string]any{"orderedIds": []uint{d2.ID}})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
