// internal/adapters/erp/client.go
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/nordhus/wms-sync/internal/core/domain"
	"github.com/nordhus/wms-sync/internal/core/ports"
)

// Config holds ERP connection settings
type Config struct {
	BaseURL           string
	APIToken          string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client is the HTTP adapter for the ERP order API. All requests share one
// rate limiter so a large pass cannot flood the ERP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Statically assert that *Client implements the ERPClient port.
var _ ports.ERPClient = (*Client)(nil)

// NewClient creates a new ERP client
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.APIToken,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger.With(slog.String("adapter", "erp")),
	}
}

// Wire types

type orderDTO struct {
	Number       string         `json:"number"`
	Status       string         `json:"status"`
	CustomerCode string         `json:"customer_code,omitempty"`
	OrderDate    time.Time      `json:"order_date"`
	Lines        []orderLineDTO `json:"lines"`
}

type orderLineDTO struct {
	LineNumber    int    `json:"line_number"`
	ItemCode      string `json:"item_code"`
	Description   string `json:"description,omitempty"`
	OrderedQty    int    `json:"ordered_qty"`
	MovedQty      int    `json:"moved_qty"`
	UnitPrice     string `json:"unit_price"`
	SerialOrBatch string `json:"serial_or_batch,omitempty"`
}

type itemDTO struct {
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Price       string    `json:"price"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type statusUpdateDTO struct {
	Status string `json:"status"`
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func (d orderDTO) toDomain(kind domain.OrderKind) (*domain.Order, error) {
	order := &domain.Order{
		Number:       d.Number,
		Kind:         kind,
		Status:       domain.OrderStatus(d.Status),
		CustomerCode: d.CustomerCode,
		OrderDate:    d.OrderDate,
		Lines:        make([]domain.OrderLine, 0, len(d.Lines)),
	}
	for _, l := range d.Lines {
		price, err := parsePrice(l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("order %s line %d has invalid unit price %q: %w", d.Number, l.LineNumber, l.UnitPrice, err)
		}
		order.Lines = append(order.Lines, domain.OrderLine{
			LineNumber:    l.LineNumber,
			ItemCode:      l.ItemCode,
			Description:   l.Description,
			OrderedQty:    l.OrderedQty,
			MovedQty:      l.MovedQty,
			UnitPrice:     price,
			SerialOrBatch: l.SerialOrBatch,
		})
	}
	return order, nil
}

func orderToDTO(order *domain.Order) orderDTO {
	dto := orderDTO{
		Number:       order.Number,
		Status:       string(order.Status),
		CustomerCode: order.CustomerCode,
		OrderDate:    order.OrderDate,
		Lines:        make([]orderLineDTO, 0, len(order.Lines)),
	}
	for _, l := range order.Lines {
		dto.Lines = append(dto.Lines, orderLineDTO{
			LineNumber:    l.LineNumber,
			ItemCode:      l.ItemCode,
			Description:   l.Description,
			OrderedQty:    l.OrderedQty,
			MovedQty:      l.MovedQty,
			UnitPrice:     l.UnitPrice.String(),
			SerialOrBatch: l.SerialOrBatch,
		})
	}
	return dto
}

func kindPath(kind domain.OrderKind) string {
	if kind == domain.KindTransfer {
		return "transfers"
	}
	return "deliveries"
}

// FetchOrder retrieves one order document from the ERP.
func (c *Client) FetchOrder(ctx context.Context, kind domain.OrderKind, number string) (*domain.Order, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s", c.baseURL, kindPath(kind), url.PathEscape(number))

	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &dto, number); err != nil {
		return nil, err
	}
	return dto.toDomain(kind)
}

// FetchOpenOrders retrieves all orders of the given kind still waiting to be
// handed to the warehouse.
func (c *Client) FetchOpenOrders(ctx context.Context, kind domain.OrderKind) ([]domain.Order, error) {
	endpoint := fmt.Sprintf("%s/api/v1/%s?status=%s", c.baseURL, kindPath(kind), domain.StatusOpen)

	var dtos []orderDTO
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &dtos, ""); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		order, err := dto.toDomain(kind)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// PushOrderUpdate writes the full mutated order back, lines and status.
func (c *Client) PushOrderUpdate(ctx context.Context, order *domain.Order) error {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s", c.baseURL, kindPath(order.Kind), url.PathEscape(order.Number))
	return c.do(ctx, http.MethodPut, endpoint, orderToDTO(order), nil, order.Number)
}

// PushStatusOnly moves just the status field, leaving line data untouched.
func (c *Client) PushStatusOnly(ctx context.Context, kind domain.OrderKind, number string, status domain.OrderStatus) error {
	endpoint := fmt.Sprintf("%s/api/v1/%s/%s/status", c.baseURL, kindPath(kind), url.PathEscape(number))
	return c.do(ctx, http.MethodPatch, endpoint, statusUpdateDTO{Status: string(status)}, nil, number)
}

// FetchItemsSince retrieves catalog items changed after the given timestamp.
// A zero timestamp fetches the full catalog.
func (c *Client) FetchItemsSince(ctx context.Context, since time.Time) ([]domain.Item, error) {
	endpoint := fmt.Sprintf("%s/api/v1/items", c.baseURL)
	if !since.IsZero() {
		endpoint += "?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
	}

	var dtos []itemDTO
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &dtos, ""); err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(dtos))
	for _, dto := range dtos {
		price, err := parsePrice(dto.Price)
		if err != nil {
			return nil, fmt.Errorf("item %s has invalid price %q: %w", dto.Code, dto.Price, err)
		}
		items = append(items, domain.Item{
			Code:        dto.Code,
			Description: dto.Description,
			Barcode:     dto.Barcode,
			Unit:        dto.Unit,
			Price:       price,
			UpdatedAt:   dto.UpdatedAt,
		})
	}
	return items, nil
}

// do executes one authenticated request and maps the response status onto the
// domain error taxonomy: 404 is an unknown order, 409 a finalized document,
// connection errors and 5xx responses are transport failures.
func (c *Client) do(ctx context.Context, method, endpoint string, in, out any, orderNumber string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.TransportError{Op: method + " " + endpoint, Err: err}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	c.logger.DebugContext(ctx, "erp request",
		slog.String("method", method),
		slog.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Op: method + " " + endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: method + " " + endpoint, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, endpoint, domain.ErrUnknownOrder)
	case resp.StatusCode == http.StatusConflict:
		return &domain.CommitError{OrderNumber: orderNumber, Reason: strings.TrimSpace(string(data))}
	case resp.StatusCode >= 500:
		return &domain.TransportError{
			Op:  method + " " + endpoint,
			Err: fmt.Errorf("erp returned status %d", resp.StatusCode),
		}
	case resp.StatusCode >= 400:
		return fmt.Errorf("erp rejected request: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode erp response: %w", err)
		}
	}
	return nil
}
