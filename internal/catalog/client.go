// Package catalog is the client for the storefront catalog API, which owns
// the canonical product and stock data.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"go-stock-admin/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Client consumes the storefront REST API. It treats the stock update call
// as an opaque remote operation with two outcomes and does not interpret
// error payloads beyond surfacing them.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient builds a client for the given base URL, e.g. "http://api:5000".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// FetchProducts loads the full product snapshot with color and stock detail.
func (c *Client) FetchProducts() ([]model.Product, error) {
	agent := fiber.Get(c.baseURL + "/products")
	agent.Timeout(c.timeout)

	var products []model.Product
	code, body, errs := agent.Struct(&products)
	if len(errs) > 0 {
		return nil, fmt.Errorf("fetch products: %w", errs[0])
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("fetch products: upstream returned %d: %s", code, truncate(body))
	}
	return products, nil
}

type stockPatch struct {
	ProductID  string `json:"productId"`
	ColorIndex int    `json:"colorIndex"`
	Stock      int    `json:"stock"`
}

// UpdateStock persists one color's stock count upstream.
func (c *Client) UpdateStock(productID string, colorIndex, stock int) error {
	agent := fiber.Patch(c.baseURL + "/products/stock")
	agent.Timeout(c.timeout)
	agent.JSON(stockPatch{ProductID: productID, ColorIndex: colorIndex, Stock: stock})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("update stock: %w", errs[0])
	}
	if code < 200 || code >= 300 {
		return fmt.Errorf("update stock: upstream returned %d: %s", code, truncate(body))
	}
	return nil
}

func truncate(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
