package inventory_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupTestApp(t *testing.T) (*fiber.App, *inventory.Service) {
	svc := newTestService(t)
	app := fiber.New()
	feature := inventory.NewFeature(svc)
	assert.NoError(t, feature.Load(app))
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp.StatusCode, respBody
}

func TestHandleListProducts(t *testing.T) {
	app, svc := setupTestApp(t)
	_, err := svc.AddProduct(t.Context(), "P1", "Widget", 9.99, 10)
	assert.NoError(t, err)

	status, body := doJSON(t, app, "GET", "/products", nil)
	assert.Equal(t, fiber.StatusOK, status)

	var products []models.Product
	assert.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "P1", products[0].ID)
}

func TestHandleListAlerts(t *testing.T) {
	app, svc := setupTestApp(t)
	ctx := t.Context()
	_, err := svc.AddProduct(ctx, "A", "Alpha", 1, 2)
	assert.NoError(t, err)
	_, err = svc.AddProduct(ctx, "B", "Beta", 1, 8)
	assert.NoError(t, err)
	_, err = svc.AddProduct(ctx, "C", "Gamma", 1, 5)
	assert.NoError(t, err)

	t.Run("DefaultThreshold", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/products/alerts", nil)
		assert.Equal(t, fiber.StatusOK, status)

		var products []models.Product
		assert.NoError(t, json.Unmarshal(body, &products))
		assert.Len(t, products, 2)
	})

	t.Run("ExplicitThreshold", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/products/alerts?threshold=2", nil)
		assert.Equal(t, fiber.StatusOK, status)

		var products []models.Product
		assert.NoError(t, json.Unmarshal(body, &products))
		assert.Len(t, products, 1)
		assert.Equal(t, "A", products[0].ID)
	})

	t.Run("NonNumericThresholdFallsBack", func(t *testing.T) {
		status, body := doJSON(t, app, "GET", "/products/alerts?threshold=abc", nil)
		assert.Equal(t, fiber.StatusOK, status)

		var products []models.Product
		assert.NoError(t, json.Unmarshal(body, &products))
		assert.Len(t, products, 2)
	})
}

func TestHandleAddProduct(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, _ := setupTestApp(t)
		status, body := doJSON(t, app, "POST", "/products", inventory.AddProductRequest{
			ID: "P1", Name: "Widget", Price: 9.99, Stock: 10,
		})
		assert.Equal(t, fiber.StatusCreated, status)

		var p models.Product
		assert.NoError(t, json.Unmarshal(body, &p))
		assert.Equal(t, "P1", p.ID)
	})

	t.Run("ValidationError", func(t *testing.T) {
		app, _ := setupTestApp(t)
		status, _ := doJSON(t, app, "POST", "/products", inventory.AddProductRequest{
			ID: "P1", Name: "Widget", Price: -1, Stock: 10,
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("DuplicateConflict", func(t *testing.T) {
		app, svc := setupTestApp(t)
		_, err := svc.AddProduct(t.Context(), "P1", "Widget", 1, 1)
		assert.NoError(t, err)

		status, _ := doJSON(t, app, "POST", "/products", inventory.AddProductRequest{
			ID: "P1", Name: "Widget", Price: 1, Stock: 1,
		})
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestHandleSale(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		app, svc := setupTestApp(t)
		_, err := svc.AddProduct(t.Context(), "P1", "Widget", 9.99, 10)
		assert.NoError(t, err)

		status, body := doJSON(t, app, "POST", "/sales", inventory.SaleRequest{
			ProductID: "P1", Quantity: 3,
		})
		assert.Equal(t, fiber.StatusOK, status)

		var resp inventory.SaleResponse
		assert.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, 7, resp.Stock)
		assert.NotEmpty(t, resp.ReceiptPath)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		app, _ := setupTestApp(t)
		status, _ := doJSON(t, app, "POST", "/sales", inventory.SaleRequest{
			ProductID: "missing", Quantity: 1,
		})
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		app, svc := setupTestApp(t)
		_, err := svc.AddProduct(t.Context(), "P1", "Widget", 9.99, 2)
		assert.NoError(t, err)

		status, _ := doJSON(t, app, "POST", "/sales", inventory.SaleRequest{
			ProductID: "P1", Quantity: 5,
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		app, svc := setupTestApp(t)
		_, err := svc.AddProduct(t.Context(), "P1", "Widget", 9.99, 2)
		assert.NoError(t, err)

		status, _ := doJSON(t, app, "POST", "/sales", inventory.SaleRequest{
			ProductID: "P1", Quantity: 0,
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestLoader(t *testing.T) {
	svc := newTestService(t)
	feature := inventory.NewFeature(svc)

	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
