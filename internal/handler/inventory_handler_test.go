package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-stock-admin/internal/model"
	"go-stock-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	products []model.Product
	err      error
}

func (f *fakeSource) FetchProducts() ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type fakeGateway struct {
	err   error
	calls int
}

func (f *fakeGateway) UpdateStock(productID string, colorIndex, stock int) error {
	f.calls++
	return f.err
}

type nopNotifier struct{}

func (nopNotifier) Notify(level model.NoticeLevel, message string) {}

func testProducts() []model.Product {
	return []model.Product{
		{
			ID: "p1", Name: "Air Runner", Category: "sneakers", CategoryName: "Sneakers", Price: 12900,
			Colors: []model.ColorVariant{
				{Name: "Black", InStock: true, Stock: 3},
				{Name: "Brown", InStock: true, Stock: 15},
			},
		},
		{
			ID: "p2", Name: "Trail Boot", Category: "boots", CategoryName: "Boots", Price: 18900,
			Colors: []model.ColorVariant{
				{Name: "Tan", InStock: true, Stock: 40},
			},
		},
	}
}

type testApp struct {
	app     *fiber.App
	source  *fakeSource
	gateway *fakeGateway
	editor  service.EditorService
}

func newTestApp() *testApp {
	source := &fakeSource{products: testProducts()}
	gateway := &fakeGateway{}
	snapshots := service.NewSnapshotService(source, time.Hour, nil)
	editor := service.NewEditorService(snapshots, gateway, nil, nopNotifier{})

	invHandler := NewInventoryHandler(snapshots, editor, 10)
	editHandler := NewEditHandler(editor)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/inventory/products", invHandler.GetProducts)
	api.Get("/inventory/stats", invHandler.GetStats)
	api.Post("/inventory/refresh", invHandler.Refresh)
	api.Post("/inventory/edits/begin", editHandler.BeginEdit)
	api.Put("/inventory/edits/", editHandler.UpdateDraft)
	api.Post("/inventory/edits/commit", editHandler.Commit)
	api.Post("/inventory/edits/cancel", editHandler.Cancel)
	api.Post("/inventory/edits/bulk", editHandler.BulkCommit)

	return &testApp{app: app, source: source, gateway: gateway, editor: editor}
}

func (ta *testApp) do(t *testing.T, method, target string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestGetProductsFiltersAndAggregates(t *testing.T) {
	ta := newTestApp()

	resp, body := ta.do(t, "GET", "/api/v1/inventory/products?category=sneakers&threshold=10", nil)
	assert.Equal(t, 200, resp.StatusCode)

	products := body["products"].([]interface{})
	require.Len(t, products, 1, "category filter narrows the rows")
	row := products[0].(map[string]interface{})
	assert.Equal(t, "p1", row["id"])
	assert.Equal(t, string(model.StockStatusLow), row["status"])
	assert.Equal(t, "badge-warning", row["style_class"])

	// Stats cover the full snapshot, not the filtered subset.
	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["total_products"])
	assert.EqualValues(t, 58, stats["total_items"])
}

func TestGetProductsSnapshotFailure(t *testing.T) {
	ta := newTestApp()
	ta.source.err = errors.New("upstream down")

	resp, body := ta.do(t, "GET", "/api/v1/inventory/products", nil)
	assert.Equal(t, 502, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestEditLifecycleOverHTTP(t *testing.T) {
	ta := newTestApp()
	key := map[string]interface{}{"product_id": "p1", "color_index": 0}

	resp, body := ta.do(t, "POST", "/api/v1/inventory/edits/begin", key)
	assert.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, 3, body["draft"], "draft pre-filled with current stock")

	resp, body = ta.do(t, "PUT", "/api/v1/inventory/edits/", map[string]interface{}{
		"product_id": "p1", "color_index": 0, "value": "abc",
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, 0, body["draft"], "non-numeric input coerces to 0")

	resp, _ = ta.do(t, "POST", "/api/v1/inventory/edits/commit", key)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, ta.gateway.calls)

	_, ok := ta.editor.Draft(model.EditKey{ProductID: "p1", ColorIndex: 0})
	assert.False(t, ok)
}

func TestCommitWithoutDraftIs404(t *testing.T) {
	ta := newTestApp()

	resp, body := ta.do(t, "POST", "/api/v1/inventory/edits/commit", map[string]interface{}{
		"product_id": "p1", "color_index": 0,
	})
	assert.Equal(t, 404, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, 0, ta.gateway.calls)
}

func TestBeginEditUnknownProductIs404(t *testing.T) {
	ta := newTestApp()

	resp, _ := ta.do(t, "POST", "/api/v1/inventory/edits/begin", map[string]interface{}{
		"product_id": "ghost", "color_index": 0,
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestBeginEditMissingProductIDIs400(t *testing.T) {
	ta := newTestApp()

	resp, _ := ta.do(t, "POST", "/api/v1/inventory/edits/begin", map[string]interface{}{
		"color_index": 0,
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestBulkCommitOverHTTP(t *testing.T) {
	ta := newTestApp()

	resp, body := ta.do(t, "POST", "/api/v1/inventory/edits/bulk", map[string]interface{}{
		"updates": []map[string]interface{}{
			{"product_id": "p1", "color_index": 0, "value": "20"},
			{"product_id": "p1", "color_index": 1, "value": "30"},
		},
	})
	assert.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, 2, body["succeeded"])
	assert.EqualValues(t, 0, body["failed"])
	assert.Equal(t, 2, ta.gateway.calls)
}

func TestRefreshReportsUpstreamFailure(t *testing.T) {
	ta := newTestApp()

	resp, body := ta.do(t, "POST", "/api/v1/inventory/refresh", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, 2, body["total_products"])

	ta.source.err = errors.New("upstream down")
	resp, _ = ta.do(t, "POST", "/api/v1/inventory/refresh", nil)
	assert.Equal(t, 502, resp.StatusCode)
}
