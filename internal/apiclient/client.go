package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"grocerpos/internal/domain"
)

// Client consumes the catalog API. Failures are classified so the screens can
// show a notice instead of silently losing the action: transport failures wrap
// domain.ErrNetwork, 400/422 wrap domain.ErrValidation with the server message,
// 404 wraps domain.ErrNotFound.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct submits all editable fields; the server assigns the id.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) error {
	body := map[string]interface{}{
		"name":  p.Name,
		"image": p.Image,
		"price": p.Price,
		"stock": p.Stock,
	}
	return c.do(ctx, http.MethodPost, "/api/products", body, nil)
}

// UpdateProduct submits the full record including the id.
func (c *Client) UpdateProduct(ctx context.Context, p domain.Product) error {
	return c.do(ctx, http.MethodPut, "/api/products", p, nil)
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products", map[string]string{"id": id}, nil)
}

// ReduceStock decrements stock for the sold lines and waits for the server to
// acknowledge before returning.
func (c *Client) ReduceStock(ctx context.Context, items []domain.CartLine) error {
	return c.do(ctx, http.MethodPost, "/api/reducestock", map[string]interface{}{"items": items}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("api client: %s %s transport error=%v", method, path, err)
		return fmt.Errorf("%s %s: %w: %v", method, path, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
		return nil
	}

	msg := serverMessage(resp.Body)
	c.logger.Printf("api client: %s %s status=%d message=%q", method, path, resp.StatusCode, msg)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%s %s: %w: %s", method, path, domain.ErrValidation, msg)
	default:
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, msg)
	}
}

func serverMessage(body io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	return envelope.Message
}
